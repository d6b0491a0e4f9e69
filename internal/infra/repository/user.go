package repository

import (
	"context"
	"errors"
	"time"

	"doorserve/internal/domain/user"
	"doorserve/internal/infra"
	"doorserve/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.FirstName(), u.LastName(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	query := `
		SELECT id, email, first_name, last_name, role, is_active
		FROM users
		WHERE id = $1
	`
	var rm readmodel.AuthorizedUserRM
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.Email, &rm.FirstName, &rm.LastName, &rm.Role, &rm.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &rm, nil
}

// FindByEmail returns the full credential row; login is the only caller.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var (
		id                          uuid.UUID
		emailStr, hash, first, last string
		roleStr                     string
		isActive                    bool
		createdAt, updatedAt        time.Time
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&id, &emailStr, &hash, &first, &last, &roleStr, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	entity, err := user.Reconstruct(id, emailStr, hash, first, last, roleStr, isActive, createdAt, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err)
	}
	return entity, nil
}
