package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
)

func TestNewReportRow(t *testing.T) {
	cred := &model.Credential{
		Title:    "Sales mailbox",
		Username: "sales@example.com",
		Password: "secret",
	}

	t.Run("converts quota to kilobyte columns", func(t *testing.T) {
		row, err := model.NewReportRow(cred, model.Quota{Used: 800000, Total: 1000000})
		gt.NoError(t, err)
		gt.Equal(t, row.Title, "Sales mailbox")
		gt.Equal(t, row.Username, "sales@example.com")
		gt.Equal(t, row.UsedKB, uint64(800))
		gt.Equal(t, row.TotalKB, uint64(1000))
		gt.Equal(t, row.Percent, 80.0)
		gt.B(t, row.Warning()).True()
	})

	t.Run("truncates kilobytes toward zero", func(t *testing.T) {
		row, err := model.NewReportRow(cred, model.Quota{Used: 1999, Total: 2999})
		gt.NoError(t, err)
		gt.Equal(t, row.UsedKB, uint64(1))
		gt.Equal(t, row.TotalKB, uint64(2))
	})

	t.Run("fails with zero total", func(t *testing.T) {
		_, err := model.NewReportRow(cred, model.Quota{Used: 10, Total: 0})
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("quota total is zero")
	})

	t.Run("fails with nil credential", func(t *testing.T) {
		_, err := model.NewReportRow(nil, model.Quota{Used: 1, Total: 2})
		gt.Error(t, err)
	})
}

func TestReportRowWarning(t *testing.T) {
	t.Run("threshold is inclusive at 80", func(t *testing.T) {
		row := &model.ReportRow{Percent: 80.0}
		gt.B(t, row.Warning()).True()
	})

	t.Run("applies to the unrounded value", func(t *testing.T) {
		// 79999/100000 renders as 80.00 but must not be flagged
		row, err := model.NewReportRow(&model.Credential{
			Title:    "Edge",
			Username: "edge@example.com",
			Password: "secret",
		}, model.Quota{Used: 79999, Total: 100000})
		gt.NoError(t, err)
		gt.B(t, row.Percent > 79.99 && row.Percent < 80).True()
		gt.B(t, row.Warning()).False()
	})

	t.Run("below threshold", func(t *testing.T) {
		row := &model.ReportRow{Percent: 10.0}
		gt.B(t, row.Warning()).False()
	})
}

func TestCredentialComplete(t *testing.T) {
	t.Run("complete entry", func(t *testing.T) {
		c := &model.Credential{Username: "user@example.com", Password: "secret"}
		gt.B(t, c.Complete()).True()
	})

	t.Run("missing password", func(t *testing.T) {
		c := &model.Credential{Username: "user@example.com"}
		gt.B(t, c.Complete()).False()
	})

	t.Run("missing username", func(t *testing.T) {
		c := &model.Credential{Password: "secret"}
		gt.B(t, c.Complete()).False()
	})
}

func TestCredentialMatchesDomain(t *testing.T) {
	c := &model.Credential{Username: "user@example.com", Password: "secret"}

	t.Run("empty suffix matches everything", func(t *testing.T) {
		gt.B(t, c.MatchesDomain("")).True()
	})

	t.Run("matching suffix", func(t *testing.T) {
		gt.B(t, c.MatchesDomain("@example.com")).True()
	})

	t.Run("other domain", func(t *testing.T) {
		gt.B(t, c.MatchesDomain("@example.org")).False()
	})
}
