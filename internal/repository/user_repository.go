package repository

import (
	"context"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// UserRepository is the credential store. SetInvalidationMarker must update
// both marker fields in a single write.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	SetInvalidationMarker(ctx context.Context, userID string, marker domain.InvalidationMarker) error
}

type userRepository struct {
	db DBTX
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, email, password_hash, role, invalid_token_id, invalid_token_cutoff, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		string(user.Role),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return mapPgError(err)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at LIMIT $1 OFFSET $2`

	limit, offset = normalizePage(limit, offset)
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var (
			user domain.User
			role string
		)
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&role,
			&user.InvalidToken.TokenID,
			&user.InvalidToken.CutoffEpochSeconds,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		user.Role = domain.Role(role)
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) SetInvalidationMarker(ctx context.Context, userID string, marker domain.InvalidationMarker) error {
	const query = `
        UPDATE users SET invalid_token_id=$1, invalid_token_cutoff=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.db.Exec(ctx, query, marker.TokenID, marker.CutoffEpochSeconds, userID)
	if err != nil {
		return mapPgError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.InvalidToken.TokenID,
		&user.InvalidToken.CutoffEpochSeconds,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	user.Role = domain.Role(role)
	return &user, nil
}
