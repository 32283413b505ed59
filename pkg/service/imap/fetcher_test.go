package imap_test

import (
	"errors"
	"testing"

	quota "github.com/emersion/go-imap-quota"
	"github.com/m-mizutani/gt"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
	"github.com/mailops-lab/mailquota/pkg/service/imap"
)

func TestParseQuota(t *testing.T) {
	t.Run("user quota with storage resource", func(t *testing.T) {
		statuses := []*quota.Status{
			{
				Name: "User quota",
				Resources: map[string][2]uint32{
					quota.ResourceStorage: {800000, 1000000},
				},
			},
		}

		q, err := imap.ParseQuota(statuses)
		gt.NoError(t, err)
		gt.Equal(t, q.Used, uint64(800000))
		gt.Equal(t, q.Total, uint64(1000000))
	})

	t.Run("other quota roots are ignored", func(t *testing.T) {
		statuses := []*quota.Status{
			{
				Name: "Shared quota",
				Resources: map[string][2]uint32{
					quota.ResourceStorage: {1, 2},
				},
			},
		}

		_, err := imap.ParseQuota(statuses)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, model.ErrQuotaNotFound)).True()
	})

	t.Run("user quota without storage resource", func(t *testing.T) {
		statuses := []*quota.Status{
			{
				Name: "User quota",
				Resources: map[string][2]uint32{
					quota.ResourceMessage: {10, 500},
				},
			},
		}

		_, err := imap.ParseQuota(statuses)
		gt.B(t, errors.Is(err, model.ErrQuotaNotFound)).True()
	})

	t.Run("picks user quota among several roots", func(t *testing.T) {
		statuses := []*quota.Status{
			{
				Name: "Mailbox quota",
				Resources: map[string][2]uint32{
					quota.ResourceStorage: {1, 2},
				},
			},
			{
				Name: "User quota",
				Resources: map[string][2]uint32{
					quota.ResourceStorage: {42, 100},
				},
			},
		}

		q, err := imap.ParseQuota(statuses)
		gt.NoError(t, err)
		gt.Equal(t, q.Used, uint64(42))
		gt.Equal(t, q.Total, uint64(100))
	})

	t.Run("empty response", func(t *testing.T) {
		_, err := imap.ParseQuota(nil)
		gt.B(t, errors.Is(err, model.ErrQuotaNotFound)).True()
	})
}
