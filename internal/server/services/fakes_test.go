package services

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/dbx"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/repositories/users"
)

// memUsers is an in-memory users.Repository with the same error contract as
// the Postgres one.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.User

	// failWith, when set, is returned by every method.
	failWith error
	// skipLookup hides users from FindByUsername to emulate a lost race.
	skipLookup bool
}

func newMemUsers() *memUsers {
	return &memUsers{rows: map[int64]models.User{}}
}

func (m *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, r := range m.rows {
		if r.Username == u.Username {
			return nil, common.ErrorAlreadyExists
		}
	}
	m.nextID++
	row := *u
	row.ID = m.nextID
	m.rows[row.ID] = row
	return public(row), nil
}

func (m *memUsers) GetAll(context.Context) ([]*models.User, error) {
	return m.filter(func(models.User) bool { return true })
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	r, ok := m.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return public(r), nil
}

func (m *memUsers) Update(_ context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	r, ok := m.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Username != nil {
		for oid, o := range m.rows {
			if oid != id && o.Username == *upd.Username {
				return nil, common.ErrorAlreadyExists
			}
		}
		r.Username = *upd.Username
	}
	if upd.Email != nil && *upd.Email != "" {
		r.Email = *upd.Email
	}
	m.rows[id] = r
	return public(r), nil
}

func (m *memUsers) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if m.skipLookup {
		return nil, common.ErrorNotFound
	}
	for _, r := range m.rows {
		if r.Username == username {
			u := r
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsers) Search(_ context.Context, term string) ([]*models.User, error) {
	return m.filter(func(r models.User) bool {
		return strings.Contains(r.Username, term) || (r.Email != "" && strings.Contains(r.Email, term))
	})
}

func (m *memUsers) ListWithItems(context.Context) ([]*models.UserWithItems, error) {
	all, err := m.GetAll(context.Background())
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	out := make([]*models.UserWithItems, 0, len(all))
	for _, u := range all {
		out = append(out, &models.UserWithItems{ID: u.ID, Username: u.Username, Email: u.Email, Items: []*models.Item{}})
	}
	return out, nil
}

func (m *memUsers) filter(keep func(models.User) bool) ([]*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []*models.User{}
	for _, r := range m.rows {
		if keep(r) {
			out = append(out, public(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func public(r models.User) *models.User {
	r.PasswordHash = ""
	return &r
}

// passthroughTx runs fn without a transaction; the fakes ignore the handle.
func passthroughTx(ctx context.Context, fn func(context.Context, dbx.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeRepoManager struct {
	users users.Repository
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return f.users }

// countingHasher records how many hashes and comparisons were performed.
type countingHasher struct {
	PasswordHasher
	mu       sync.Mutex
	hashes   int
	verifies int
}

func (c *countingHasher) Hash(password string) (string, error) {
	c.mu.Lock()
	c.hashes++
	c.mu.Unlock()
	return c.PasswordHasher.Hash(password)
}

func (c *countingHasher) Verify(password, hash string) bool {
	c.mu.Lock()
	c.verifies++
	c.mu.Unlock()
	return c.PasswordHasher.Verify(password, hash)
}
