package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/dbx"
	"github.com/dmitrijs2005/shelfkeeper/internal/logging"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/auth"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/repositories/users"
	"github.com/go-playground/validator/v10"
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(userID int64, role string) (string, error)
	Verify(token string) (*auth.Claims, error)
}

// UserInput is the payload for registration and direct user creation.
type UserInput struct {
	Username string `validate:"required,max=64"`
	Email    string `validate:"max=254"`
	Password string `validate:"required"`
	Role     string `validate:"max=32"`
}

// AuthService registers users and exchanges credentials for tokens. It keeps
// no state between calls.
type AuthService struct {
	db          *sql.DB
	inTx        txFunc
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	tokens      TokenIssuer
	validate    *validator.Validate
	logger      logging.Logger

	// dummyHash is compared against when the username is unknown so that
	// both failure paths cost one bcrypt comparison.
	dummyHash string
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, h PasswordHasher, t TokenIssuer, l logging.Logger) (*AuthService, error) {
	dummy, err := h.Hash("shelfkeeper-unknown-user")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}
	return &AuthService{
		db:          db,
		inTx:        sqlTx(db),
		repomanager: m,
		hasher:      h,
		tokens:      t,
		validate:    newValidator(),
		logger:      l.With("module", "auth_service"),
		dummyHash:   dummy,
	}, nil
}

// Register creates a user after checking the username is free, once before
// hashing and again inside the write transaction. Both checks are
// advisory; a concurrent registration that slips past them is stopped by the
// username unique constraint and reported the same way, as
// common.ErrorAlreadyExists.
func (s *AuthService) Register(ctx context.Context, in UserInput) (*models.User, error) {
	if err := checkInput(s.validate, in); err != nil {
		return nil, err
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, err
	}

	// Taken names are rejected before paying for bcrypt.
	if err := s.usernameFree(ctx, s.repomanager.Users(s.db), in.Username); err != nil {
		return nil, storeError(ctx, s.logger, "register", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error(ctx, "hash password", "error", err)
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if err := s.usernameFree(ctx, repo, in.Username); err != nil {
			return err
		}

		var err error
		user, err = repo.Create(ctx, &models.User{
			Username:     in.Username,
			Email:        in.Email,
			PasswordHash: hash,
			Role:         roleOrDefault(in.Role),
		})
		return err
	})
	if err != nil {
		return nil, storeError(ctx, s.logger, "register", err)
	}

	s.logger.Info(ctx, "user registered", "id", user.ID, "role", user.Role)
	return user, nil
}

// Login verifies the credentials and returns a signed token. An unknown user
// and a wrong password both yield common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return "", common.ErrorUnauthorized
		}
		return "", storeError(ctx, s.logger, "find_by_username", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		s.logger.Error(ctx, "issue token", "error", err)
		return "", common.ErrorInternal
	}

	return token, nil
}

// Authenticate verifies a token and returns its claims.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	if token == "" {
		return nil, common.ErrInvalidToken
	}
	return s.tokens.Verify(token)
}

func (s *AuthService) usernameFree(ctx context.Context, repo users.Repository, username string) error {
	_, err := repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return common.ErrorAlreadyExists
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return err
	}
}

func roleOrDefault(role string) string {
	if role == "" {
		return common.RoleMember
	}
	return role
}
