package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/classroom/internal/common"
	"github.com/dmitrijs2005/classroom/internal/server/models"
	"github.com/dmitrijs2005/classroom/internal/server/repositories/entries"
	"github.com/dmitrijs2005/classroom/internal/server/repositories/users"
)

type fakeManager struct {
	entries *fakeEntriesRepo
	users   *fakeUsersRepo
}

func newFakeManager() *fakeManager {
	return &fakeManager{entries: &fakeEntriesRepo{}, users: &fakeUsersRepo{byName: map[string]*models.User{}}}
}

func (m *fakeManager) Entries() entries.Repository { return m.entries }
func (m *fakeManager) Users() users.Repository     { return m.users }
func (m *fakeManager) Close(context.Context) error { return nil }

type fakeEntriesRepo struct {
	mu    sync.Mutex
	items []*models.Entry
	seq   int
	err   error
}

func (f *fakeEntriesRepo) List(context.Context) ([]*models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Entry, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeEntriesRepo) Create(_ context.Context, e *models.Entry) (*models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.seq++
	e.ID = "e" + string(rune('0'+f.seq))
	f.items = append([]*models.Entry{e}, f.items...)
	return e, nil
}

func (f *fakeEntriesRepo) Update(_ context.Context, e *models.Entry) (*models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i, it := range f.items {
		if it.ID == e.ID {
			f.items[i] = e
			return e, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeEntriesRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeUsersRepo struct {
	mu     sync.Mutex
	byName map[string]*models.User
	err    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byName[u.Username]; ok {
		return nil, common.ErrAlreadyExists
	}
	u.ID = "u-" + u.Username
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}
