package repository

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
	"github.com/mailops-lab/mailquota/pkg/domain/types"
)

// Memory implements CredentialStore with in-memory storage, for tests
type Memory struct {
	groups map[types.GroupName][]*model.Credential
}

// NewMemory creates a new memory credential store
func NewMemory() *Memory {
	return &Memory{
		groups: make(map[types.GroupName][]*model.Credential),
	}
}

// AddGroup registers a group, possibly empty
func (m *Memory) AddGroup(group types.GroupName) {
	if _, ok := m.groups[group]; !ok {
		m.groups[group] = []*model.Credential{}
	}
}

// AddEntry appends an entry to its group, creating the group as needed
func (m *Memory) AddEntry(cred *model.Credential) {
	m.groups[cred.Group] = append(m.groups[cred.Group], cred)
}

// ListEntries returns the entries of the named group in insertion order
func (m *Memory) ListEntries(ctx context.Context, group types.GroupName) ([]*model.Credential, error) {
	entries, ok := m.groups[group]
	if !ok {
		return nil, goerr.Wrap(model.ErrGroupNotFound, "group not found",
			goerr.V("group", group))
	}
	return entries, nil
}

// Close releases the store
func (m *Memory) Close() error {
	m.groups = nil
	return nil
}
