package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// WarningPercent is the usage percentage at which a row is flagged in the
// report. The threshold is inclusive and applies to the unrounded value.
const WarningPercent = 80.0

// Quota holds the used and total storage figures for one mailbox, in the
// server's reporting unit (kilobytes for common IMAP servers; the values
// are passed through without unit validation).
type Quota struct {
	Used  uint64
	Total uint64
}

// ReportRow represents the per-mailbox aggregated usage figures used for
// final output.
type ReportRow struct {
	Title    string
	Username string
	UsedKB   uint64
	TotalKB  uint64
	Percent  float64
}

// NewReportRow builds a report row from a credential entry and its quota.
// A zero total quota is rejected so that the percentage is always defined.
func NewReportRow(cred *Credential, quota Quota) (*ReportRow, error) {
	if cred == nil {
		return nil, goerr.New("credential is nil")
	}
	if quota.Total == 0 {
		return nil, goerr.New("quota total is zero",
			goerr.V("title", cred.Title),
			goerr.V("username", cred.Username),
		)
	}

	return &ReportRow{
		Title:    cred.Title,
		Username: cred.Username,
		UsedKB:   quota.Used / 1000,
		TotalKB:  quota.Total / 1000,
		Percent:  float64(quota.Used) / float64(quota.Total) * 100,
	}, nil
}

// Warning reports whether the row exceeds the usage warning threshold.
func (r *ReportRow) Warning() bool {
	return r.Percent >= WarningPercent
}
