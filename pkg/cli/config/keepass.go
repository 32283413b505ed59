package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/domain/interfaces"
	"github.com/mailops-lab/mailquota/pkg/repository"
	"github.com/mailops-lab/mailquota/pkg/utils/prompt"
	"github.com/urfave/cli/v3"
)

// promptSentinel asks for the database password interactively when given
// as the flag value.
const promptSentinel = "-"

// KeePass holds password database configuration
type KeePass struct {
	Database   string
	Group      string
	Password   string
	KeyFile    string
	MailDomain string
}

// Flags returns CLI flags for password database configuration
func (k *KeePass) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "database",
			Aliases:     []string{"d"},
			Usage:       "KeePass database file path",
			Category:    "KeePass database",
			Required:    true,
			Sources:     cli.EnvVars("MAILQUOTA_DATABASE"),
			Destination: &k.Database,
		},
		&cli.StringFlag{
			Name:        "group",
			Aliases:     []string{"g"},
			Usage:       "KeePass group holding the mailbox credentials",
			Category:    "KeePass database",
			Required:    true,
			Sources:     cli.EnvVars("MAILQUOTA_GROUP"),
			Destination: &k.Group,
		},
		&cli.StringFlag{
			Name:        "password",
			Aliases:     []string{"P"},
			Usage:       "KeePass database password (use - to prompt)",
			Category:    "KeePass database",
			Sources:     cli.EnvVars("MAILQUOTA_DB_PASSWORD"),
			Destination: &k.Password,
		},
		&cli.StringFlag{
			Name:        "key",
			Aliases:     []string{"k"},
			Usage:       "KeePass key file path",
			Category:    "KeePass database",
			Sources:     cli.EnvVars("MAILQUOTA_KEY_FILE"),
			Destination: &k.KeyFile,
		},
		&cli.StringFlag{
			Name:        "mail-domain",
			Usage:       "Only report usernames ending with this domain suffix",
			Category:    "KeePass database",
			Sources:     cli.EnvVars("MAILQUOTA_MAIL_DOMAIN"),
			Destination: &k.MailDomain,
		},
	}
}

// Validate validates the password database configuration
func (k *KeePass) Validate() error {
	if k.Database == "" {
		return goerr.New("database file path is required")
	}
	if k.Group == "" {
		return goerr.New("group name is required")
	}
	if k.Password == "" && k.KeyFile == "" {
		return goerr.New("database password or key file is required")
	}
	return nil
}

// Configure opens the database and returns the credential store. The
// password is resolved first: a literal value, an interactive prompt for
// the sentinel, or the environment through the flag source.
func (k *KeePass) Configure(ctx context.Context) (interfaces.CredentialStore, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	password := k.Password
	if password == promptSentinel {
		secret, err := prompt.ReadSecret("Please insert database password: ")
		if err != nil {
			return nil, err
		}
		password = secret
	}

	var keyData []byte
	if k.KeyFile != "" {
		data, err := os.ReadFile(k.KeyFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read key file", goerr.V("path", k.KeyFile))
		}
		keyData = data
	}

	store, err := repository.NewKeePass(ctx, k.Database, password, keyData)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open credential database",
			goerr.V("path", k.Database))
	}

	return store, nil
}

// LogValue returns structured log value. The password is never logged.
func (k KeePass) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("database", k.Database),
		slog.String("group", k.Group),
		slog.Bool("hasPassword", k.Password != ""),
		slog.String("keyFile", k.KeyFile),
		slog.String("mailDomain", k.MailDomain),
	)
}
