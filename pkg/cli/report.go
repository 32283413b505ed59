package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/cli/config"
	"github.com/mailops-lab/mailquota/pkg/domain/types"
	"github.com/mailops-lab/mailquota/pkg/service/render"
	"github.com/mailops-lab/mailquota/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var (
		imapCfg    config.IMAP
		keepassCfg config.KeePass
		outputCfg  config.Output
	)

	flags := joinFlags(
		imapCfg.Flags(),
		keepassCfg.Flags(),
		outputCfg.Flags(),
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Query the quota of every mailbox in a credential group and print a usage report",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := outputCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Building mailbox quota report",
				slog.Any("imap", imapCfg),
				slog.Any("keepass", keepassCfg),
				slog.Any("output", outputCfg),
			)

			fetcher, err := imapCfg.Configure()
			if err != nil {
				return err
			}

			store, err := keepassCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			uc := usecase.NewReport(store, fetcher,
				usecase.WithProgress(outputCfg.Progress()))
			rows, err := uc.Build(ctx, types.GroupName(keepassCfg.Group), keepassCfg.MailDomain)
			if err != nil {
				return err
			}

			renderer, err := render.New(outputCfg.OutputFormat())
			if err != nil {
				return err
			}

			// The destination is opened only after the report is fully
			// built, so a failed run never touches an existing file.
			out, err := outputCfg.Open()
			if err != nil {
				return err
			}
			defer out.Close()

			if err := renderer.Render(out, rows); err != nil {
				return goerr.Wrap(err, "failed to render report")
			}

			logger.Info("Report complete", slog.Int("mailboxes", len(rows)))
			return nil
		},
	}
}
