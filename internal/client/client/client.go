package client

import (
	"context"

	"github.com/dmitrijs2005/shelfkeeper/internal/api"
)

type Client interface {
	Close() error
	IsLoggedIn() bool
	Register(ctx context.Context, username, email string, password []byte) (*api.User, error)
	Login(ctx context.Context, username string, password []byte) error
	Logout()
	ListUsers(ctx context.Context) ([]*api.User, error)
	GetUser(ctx context.Context, id int64) (*api.User, error)
	SearchUsers(ctx context.Context, term string) ([]*api.User, error)
	ListUsersWithItems(ctx context.Context) ([]*api.UserWithItems, error)
	UpdateUser(ctx context.Context, id int64, username, email *string) (*api.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}
