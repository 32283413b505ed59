package interfaces

import (
	"context"

	"github.com/mailops-lab/mailquota/pkg/domain/model"
	"github.com/mailops-lab/mailquota/pkg/domain/types"
)

// CredentialStore defines the interface for reading credential entries
// from a password database
type CredentialStore interface {
	// ListEntries returns the entries of the named group in database
	// order. It returns model.ErrGroupNotFound when the group does not
	// exist.
	ListEntries(ctx context.Context, group types.GroupName) ([]*model.Credential, error)

	// Close releases the underlying database resources
	Close() error
}

// QuotaFetcher defines the interface for querying the storage quota of
// one mailbox
type QuotaFetcher interface {
	// Fetch authenticates with the given credentials and returns the
	// mailbox quota. It returns model.ErrQuotaNotFound when the server
	// reports no usable quota for the configured root.
	Fetch(ctx context.Context, username, password string) (*model.Quota, error)
}
