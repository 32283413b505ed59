package imap

import (
	"context"
	"net"
	"strconv"

	quota "github.com/emersion/go-imap-quota"
	"github.com/emersion/go-imap/client"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
)

// userQuotaRoot is the quota root name reported by common IMAP servers
// for the per-user storage quota.
const userQuotaRoot = "User quota"

// Fetcher queries the storage quota of one mailbox at a time. Each Fetch
// call opens a fresh connection and closes it before returning.
type Fetcher struct {
	addr   string
	useTLS bool
	root   string
}

// NewFetcher creates a quota fetcher for the given mail server. root is
// the mailbox path the quota is requested for, usually INBOX.
func NewFetcher(server string, port int64, useTLS bool, root string) *Fetcher {
	return &Fetcher{
		addr:   net.JoinHostPort(server, strconv.FormatInt(port, 10)),
		useTLS: useTLS,
		root:   root,
	}
}

// Fetch logs in with the given credentials and requests the quota for the
// configured root via GETQUOTAROOT. It returns model.ErrQuotaNotFound
// when the response carries no usable "User quota" storage entry.
func (f *Fetcher) Fetch(ctx context.Context, username, password string) (*model.Quota, error) {
	logger := ctxlog.From(ctx)

	var conn *client.Client
	var err error
	if f.useTLS {
		conn, err = client.DialTLS(f.addr, nil)
	} else {
		conn, err = client.Dial(f.addr)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect to mail server",
			goerr.V("addr", f.addr), goerr.V("tls", f.useTLS))
	}
	defer func() {
		if err := conn.Logout(); err != nil {
			logger.Debug("IMAP logout failed", "addr", f.addr, "error", err.Error())
		}
	}()

	if err := conn.Login(username, password); err != nil {
		return nil, goerr.Wrap(err, "IMAP login failed",
			goerr.V("addr", f.addr), goerr.V("username", username))
	}

	statuses, err := quota.NewClient(conn).GetQuotaRoot(f.root)
	if err != nil {
		return nil, goerr.Wrap(err, "GETQUOTAROOT failed",
			goerr.V("addr", f.addr), goerr.V("root", f.root))
	}

	return parseQuota(statuses)
}

// parseQuota extracts the used/total pair from a GETQUOTAROOT response.
// Only the quota root named "User quota" with a STORAGE resource is
// accepted; anything else means the server reports no usable quota.
func parseQuota(statuses []*quota.Status) (*model.Quota, error) {
	for _, status := range statuses {
		if status == nil || status.Name != userQuotaRoot {
			continue
		}
		res, ok := status.Resources[quota.ResourceStorage]
		if !ok {
			continue
		}
		return &model.Quota{
			Used:  uint64(res[0]),
			Total: uint64(res[1]),
		}, nil
	}

	return nil, goerr.Wrap(model.ErrQuotaNotFound, "no user quota in response")
}
