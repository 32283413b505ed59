package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/domain/interfaces"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
	"github.com/mailops-lab/mailquota/pkg/domain/types"
)

// Report builds the per-mailbox usage report: it filters the credential
// entries of one group and queries the quota of each mailbox in turn.
type Report struct {
	store    interfaces.CredentialStore
	fetcher  interfaces.QuotaFetcher
	progress io.Writer
}

// ReportOption configures a Report use case
type ReportOption func(*Report)

// WithProgress redirects the per-entry progress feedback. Pass io.Discard
// to suppress it.
func WithProgress(w io.Writer) ReportOption {
	return func(r *Report) {
		r.progress = w
	}
}

// NewReport creates a new Report use case. Progress feedback goes to
// stderr unless redirected.
func NewReport(store interfaces.CredentialStore, fetcher interfaces.QuotaFetcher, opts ...ReportOption) *Report {
	r := &Report{
		store:    store,
		fetcher:  fetcher,
		progress: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Build fetches the quota of every usable entry in the group and returns
// the report rows in fetch order. Entries without both a username and a
// password are skipped, as are usernames outside mailDomain when it is
// set. A mailbox whose server reports no usable quota is skipped with a
// warning; connection and authentication failures abort the run.
func (uc *Report) Build(ctx context.Context, group types.GroupName, mailDomain string) ([]*model.ReportRow, error) {
	logger := ctxlog.From(ctx)

	entries, err := uc.store.ListEntries(ctx, group)
	if err != nil {
		return nil, err
	}

	selected := make([]*model.Credential, 0, len(entries))
	for _, entry := range entries {
		if entry.Complete() && entry.MatchesDomain(mailDomain) {
			selected = append(selected, entry)
		}
	}
	logger.Debug("selected credential entries",
		"group", group.String(),
		"total", len(entries),
		"selected", len(selected),
	)

	rows := make([]*model.ReportRow, 0, len(selected))
	for i, entry := range selected {
		quota, err := uc.fetcher.Fetch(ctx, entry.Username, entry.Password)
		if err != nil && !errors.Is(err, model.ErrQuotaNotFound) {
			return nil, goerr.Wrap(err, "failed to fetch mailbox quota",
				goerr.V("title", entry.Title),
				goerr.V("username", entry.Username),
			)
		}

		fmt.Fprintf(uc.progress, "%3d/%d %-50s\n", i+1, len(selected), entry.Title)

		if err != nil {
			logger.Warn("server reported no quota, skipping entry",
				"title", entry.Title,
				"username", entry.Username,
			)
			continue
		}

		row, err := model.NewReportRow(entry, *quota)
		if err != nil {
			logger.Warn("unusable quota, skipping entry",
				"title", entry.Title,
				"username", entry.Username,
				"error", err.Error(),
			)
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}
