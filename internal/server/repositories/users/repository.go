package users

import (
	"context"

	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
)

// Repository is the data-access contract for users. Lookups that find nothing
// return common.ErrorNotFound; writes that break username uniqueness return
// common.ErrorAlreadyExists. Only FindByUsername populates PasswordHash.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Search(ctx context.Context, term string) ([]*models.User, error)
	ListWithItems(ctx context.Context) ([]*models.UserWithItems, error)
}
