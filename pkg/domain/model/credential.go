package model

import (
	"strings"

	"github.com/mailops-lab/mailquota/pkg/domain/types"
)

// Credential represents one username/password record from the password
// database. It is immutable once loaded.
type Credential struct {
	Title    string          // Entry display title
	Username string          // Mailbox login name
	Password string          // Mailbox password
	Group    types.GroupName // Owning group name
}

// Complete reports whether the entry carries both a username and a
// password. Incomplete entries are excluded from the report.
func (c *Credential) Complete() bool {
	return c.Username != "" && c.Password != ""
}

// MatchesDomain reports whether the username ends with the given domain
// suffix. An empty suffix matches every entry.
func (c *Credential) MatchesDomain(suffix string) bool {
	if suffix == "" {
		return true
	}
	return strings.HasSuffix(c.Username, suffix)
}
