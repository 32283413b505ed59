package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/service/imap"
	"github.com/urfave/cli/v3"
)

// IMAP holds mail server configuration
type IMAP struct {
	Server string
	Port   int64
	SSL    bool
	Root   string
}

// Flags returns CLI flags for mail server configuration
func (i *IMAP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "server",
			Aliases:     []string{"s"},
			Usage:       "Mail server address",
			Category:    "Mail server",
			Required:    true,
			Sources:     cli.EnvVars("MAILQUOTA_SERVER"),
			Destination: &i.Server,
		},
		&cli.Int64Flag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "Mail server port",
			Category:    "Mail server",
			Required:    true,
			Sources:     cli.EnvVars("MAILQUOTA_PORT"),
			Destination: &i.Port,
		},
		&cli.BoolFlag{
			Name:        "ssl",
			Aliases:     []string{"S"},
			Usage:       "Use SSL for the mail server connection",
			Category:    "Mail server",
			Sources:     cli.EnvVars("MAILQUOTA_SSL"),
			Destination: &i.SSL,
		},
		&cli.StringFlag{
			Name:        "root",
			Aliases:     []string{"R"},
			Usage:       "Mailbox root to request the quota for",
			Category:    "Mail server",
			Value:       "INBOX",
			Sources:     cli.EnvVars("MAILQUOTA_ROOT"),
			Destination: &i.Root,
		},
	}
}

// Validate validates the mail server configuration
func (i *IMAP) Validate() error {
	if i.Server == "" {
		return goerr.New("mail server address is required")
	}
	if i.Port <= 0 || i.Port > 65535 {
		return goerr.New("mail server port is out of range", goerr.V("port", i.Port))
	}
	if i.Root == "" {
		return goerr.New("mailbox root is required")
	}
	return nil
}

// Configure creates the quota fetcher for the configured server
func (i *IMAP) Configure() (*imap.Fetcher, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return imap.NewFetcher(i.Server, i.Port, i.SSL, i.Root), nil
}

// LogValue returns structured log value
func (i IMAP) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("server", i.Server),
		slog.Int64("port", i.Port),
		slog.Bool("ssl", i.SSL),
		slog.String("root", i.Root),
	)
}
