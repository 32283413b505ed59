package repository

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/domain/interfaces"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
	"github.com/mailops-lab/mailquota/pkg/domain/types"
	"github.com/tobischo/gokeepasslib/v3"
)

// KeePass implements CredentialStore on a KDBX database file. The whole
// database is decrypted once at construction time; entries are read-only
// afterwards.
type KeePass struct {
	groups map[types.GroupName][]*model.Credential
}

// NewKeePass opens and decrypts a KDBX database. The master password and
// the key file content are both optional, but at least one must be given.
func NewKeePass(ctx context.Context, path, password string, keyData []byte) (interfaces.CredentialStore, error) {
	creds, err := dbCredentials(password, keyData)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database file", goerr.V("path", path))
	}
	defer file.Close()

	db := gokeepasslib.NewDatabase()
	db.Credentials = creds
	if err := gokeepasslib.NewDecoder(file).Decode(db); err != nil {
		return nil, goerr.Wrap(err, "failed to decode database", goerr.V("path", path))
	}
	if err := db.UnlockProtectedEntries(); err != nil {
		return nil, goerr.Wrap(err, "failed to unlock protected entries")
	}

	kp := &KeePass{
		groups: make(map[types.GroupName][]*model.Credential),
	}
	if db.Content != nil && db.Content.Root != nil {
		for _, group := range db.Content.Root.Groups {
			kp.collect(group)
		}
	}

	return kp, nil
}

// collect walks the group tree depth-first. When two groups share a name,
// the first one seen keeps the name, matching a flat group lookup.
func (k *KeePass) collect(group gokeepasslib.Group) {
	name := types.GroupName(group.Name)
	if _, ok := k.groups[name]; !ok {
		entries := make([]*model.Credential, 0, len(group.Entries))
		for _, entry := range group.Entries {
			entries = append(entries, &model.Credential{
				Title:    entry.GetTitle(),
				Username: entry.GetContent("UserName"),
				Password: entry.GetPassword(),
				Group:    name,
			})
		}
		k.groups[name] = entries
	}

	for _, sub := range group.Groups {
		k.collect(sub)
	}
}

// ListEntries returns the entries of the named group in database order
func (k *KeePass) ListEntries(ctx context.Context, group types.GroupName) ([]*model.Credential, error) {
	entries, ok := k.groups[group]
	if !ok {
		return nil, goerr.Wrap(model.ErrGroupNotFound, "group not found in database",
			goerr.V("group", group))
	}
	return entries, nil
}

// Close releases the store. The database content already lives in memory,
// so there is nothing to release beyond the map itself.
func (k *KeePass) Close() error {
	k.groups = nil
	return nil
}

func dbCredentials(password string, keyData []byte) (*gokeepasslib.DBCredentials, error) {
	switch {
	case password != "" && len(keyData) > 0:
		creds, err := gokeepasslib.NewPasswordAndKeyDataCredentials(password, keyData)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build password+key credentials")
		}
		return creds, nil
	case password != "":
		return gokeepasslib.NewPasswordCredentials(password), nil
	case len(keyData) > 0:
		creds, err := gokeepasslib.NewKeyDataCredentials(keyData)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build key credentials")
		}
		return creds, nil
	default:
		return nil, goerr.New("database password or key file is required")
	}
}
