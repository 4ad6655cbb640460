package grpc

import (
	"context"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/auth"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/services"
)

type fakeAuth struct {
	issuer *auth.TokenIssuer

	registerOut *models.User
	registerErr error
	loginErr    error
	lastLogin   [2]string
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{issuer: auth.NewTokenIssuer([]byte("test-secret"))}
}

func (f *fakeAuth) Register(_ context.Context, in services.UserInput) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registerOut != nil {
		return f.registerOut, nil
	}
	return &models.User{ID: 1, Username: in.Username, Email: in.Email, Role: common.RoleMember}, nil
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (string, error) {
	f.lastLogin = [2]string{username, password}
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.issuer.Issue(1, common.RoleMember)
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*auth.Claims, error) {
	return f.issuer.Verify(token)
}

type fakeDirectory struct {
	users   []*models.User
	items   []*models.UserWithItems
	err     error
	deleted bool

	lastUpdate services.UpdateInput
	lastTerm   string
}

func (f *fakeDirectory) Create(_ context.Context, in services.UserInput) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: 2, Username: in.Username, Role: common.RoleMember}, nil
}

func (f *fakeDirectory) GetAll(context.Context) ([]*models.User, error) {
	return f.users, f.err
}

func (f *fakeDirectory) GetByID(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeDirectory) Update(_ context.Context, id int64, in services.UpdateInput) (*models.User, error) {
	f.lastUpdate = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: id, Username: "ada"}, nil
}

func (f *fakeDirectory) Delete(context.Context, int64) (bool, error) {
	return f.deleted, f.err
}

func (f *fakeDirectory) Search(_ context.Context, term string) ([]*models.User, error) {
	f.lastTerm = term
	return f.users, f.err
}

func (f *fakeDirectory) ListWithItems(context.Context) ([]*models.UserWithItems, error) {
	return f.items, f.err
}
