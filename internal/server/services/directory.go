package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/dbx"
	"github.com/dmitrijs2005/shelfkeeper/internal/logging"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

// UpdateInput lists the fields a user update may change. Nil means unchanged;
// an empty email is also treated as unchanged.
type UpdateInput struct {
	Username *string `validate:"omitempty,min=1,max=64"`
	Email    *string `validate:"omitempty,max=254"`
}

// DirectoryService exposes user CRUD, search and the users-with-items view.
type DirectoryService struct {
	db          *sql.DB
	inTx        txFunc
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	validate    *validator.Validate
	logger      logging.Logger
}

func NewDirectoryService(db *sql.DB, m repomanager.RepositoryManager, h PasswordHasher, l logging.Logger) *DirectoryService {
	return &DirectoryService{
		db:          db,
		inTx:        sqlTx(db),
		repomanager: m,
		hasher:      h,
		validate:    newValidator(),
		logger:      l.With("module", "directory_service"),
	}
}

// Create stores a user directly, without the advisory username check;
// duplicates surface from the store as common.ErrorAlreadyExists.
func (s *DirectoryService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	if err := checkInput(s.validate, in); err != nil {
		return nil, err
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error(ctx, "hash password", "error", err)
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         roleOrDefault(in.Role),
		})
		return err
	})
	if err != nil {
		return nil, storeError(ctx, s.logger, "create", err)
	}
	return user, nil
}

func (s *DirectoryService) GetAll(ctx context.Context) ([]*models.User, error) {
	users, err := s.repomanager.Users(s.db).GetAll(ctx)
	if err != nil {
		return nil, storeError(ctx, s.logger, "get_all", err)
	}
	return users, nil
}

func (s *DirectoryService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, s.logger, "get_by_id", err)
	}
	return user, nil
}

// Update changes username and/or email; password and role are not reachable
// from here.
func (s *DirectoryService) Update(ctx context.Context, id int64, in UpdateInput) (*models.User, error) {
	if err := checkInput(s.validate, in); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).Update(ctx, id, models.UserUpdate{
		Username: in.Username,
		Email:    in.Email,
	})
	if err != nil {
		return nil, storeError(ctx, s.logger, "update", err)
	}
	return user, nil
}

// Delete removes the user; false means there was no such id.
func (s *DirectoryService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repomanager.Users(s.db).Delete(ctx, id)
	if err != nil {
		return false, storeError(ctx, s.logger, "delete", err)
	}
	return ok, nil
}

// Search returns users whose username or email contains term; "" matches all.
func (s *DirectoryService) Search(ctx context.Context, term string) ([]*models.User, error) {
	users, err := s.repomanager.Users(s.db).Search(ctx, term)
	if err != nil {
		return nil, storeError(ctx, s.logger, "search", err)
	}
	return users, nil
}

func (s *DirectoryService) ListWithItems(ctx context.Context) ([]*models.UserWithItems, error) {
	users, err := s.repomanager.Users(s.db).ListWithItems(ctx)
	if err != nil {
		return nil, storeError(ctx, s.logger, "list_with_items", err)
	}
	return users, nil
}
