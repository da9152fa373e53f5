package postgres

import (
	"context"
	"errors"
	"fmt"

	"fitlife-service/internal/domain/auth"
	xerrors "fitlife-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	db *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{db: db}
}

// CreateUser inserts a back-office user. A duplicate email surfaces as
// ErrDuplicateEntry.
func (r *AuthRepository) CreateUser(ctx context.Context, u *auth.AppUser) error {
	query := `
		INSERT INTO app_users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role).
		Scan(&u.ID, &u.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// FindByEmail retrieves a user by email.
func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*auth.AppUser, error) {
	return r.scanUser(r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at
		FROM app_users WHERE email = $1
	`, email))
}

// FindByID retrieves a user by ID.
func (r *AuthRepository) FindByID(ctx context.Context, id int64) (*auth.AppUser, error) {
	return r.scanUser(r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at
		FROM app_users WHERE id = $1
	`, id))
}

func (r *AuthRepository) scanUser(row pgx.Row) (*auth.AppUser, error) {
	var u auth.AppUser
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}
