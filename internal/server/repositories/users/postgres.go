// Package users provides the PostgreSQL-backed user repository, including
// substring search and the users-with-items aggregation.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/shelfkeeper/internal/common"
	"github.com/dmitrijs2005/shelfkeeper/internal/dbx"
	"github.com/dmitrijs2005/shelfkeeper/internal/server/models"
)

// usernameConstraint is the unique constraint on users.username.
const usernameConstraint = "users_username_key"

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and returns the stored row re-read by its new id,
// so store-side defaults are reflected. An empty role becomes common.RoleMember.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, password_hash, role)
		 VALUES ($1, NULLIF($2, ''), $3, $4)
		 RETURNING id
		 `

	role := user.Role
	if role == "" {
		role = common.RoleMember
	}

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, role).Scan(&id)
	if err != nil {
		return nil, r.mapWriteError(err)
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query :=
		`SELECT id, username, email, role FROM users
		 ORDER BY id
		 `
	return r.selectUsers(ctx, query)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, username, email, role FROM users
		 WHERE id = $1
		 `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Update applies the non-nil fields of upd in a single statement. A missing
// id returns common.ErrorNotFound and writes nothing.
func (r *PostgresRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	query :=
		`UPDATE users SET username = COALESCE($2, username), email = COALESCE(NULLIF($3, ''), email)
		 WHERE id = $1
		 RETURNING id, username, email, role
		 `

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, upd.Username, upd.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, r.mapWriteError(err)
	}

	return user, nil
}

// Delete removes the user and reports whether a row existed.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}

	return n > 0, nil
}

// FindByUsername is an exact-match lookup that also returns the password hash.
func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, role FROM users
		 WHERE username = $1
		 `

	var (
		user  models.User
		email sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &email, &user.PasswordHash, &user.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	user.Email = email.String

	return &user, nil
}

// Search returns users whose username or email contains term. The term is
// bound as a parameter with LIKE wildcards escaped, so it always matches
// literally; an empty term matches every user.
func (r *PostgresRepository) Search(ctx context.Context, term string) ([]*models.User, error) {
	query :=
		`SELECT id, username, email, role FROM users
		 WHERE username LIKE $1 ESCAPE '\' OR email LIKE $1 ESCAPE '\'
		 ORDER BY id
		 `
	return r.selectUsers(ctx, query, "%"+escapeLike(term)+"%")
}

// ListWithItems left-joins users to their books ordered by username and folds
// the rows into one entry per user. Users without books get an empty Items.
func (r *PostgresRepository) ListWithItems(ctx context.Context) ([]*models.UserWithItems, error) {
	query :=
		`SELECT u.id, u.username, u.email, b.id, b.title, b.author
		 FROM users u
		 LEFT JOIN user_books ub ON ub.user_id = u.id
		 LEFT JOIN books b ON b.id = ub.book_id
		 ORDER BY u.username, u.id, b.id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var joined []userItemRow
	for rows.Next() {
		var (
			row   userItemRow
			email sql.NullString
		)
		if err := rows.Scan(&row.UserID, &row.Username, &email, &row.ItemID, &row.Title, &row.Author); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		row.Email = email.String
		joined = append(joined, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return groupUserItems(joined), nil
}

func (r *PostgresRepository) selectUsers(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) mapWriteError(err error) error {
	if dbx.IsUniqueViolation(err, usernameConstraint) {
		return common.ErrorAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads id, username, email, role; a NULL email becomes "".
func scanUser(s rowScanner) (*models.User, error) {
	var (
		user  models.User
		email sql.NullString
	)
	if err := s.Scan(&user.ID, &user.Username, &email, &user.Role); err != nil {
		return nil, err
	}
	user.Email = email.String
	return &user, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s safe to embed in a LIKE pattern with ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
