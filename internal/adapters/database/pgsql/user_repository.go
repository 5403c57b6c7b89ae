package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portsrepo "github.com/newskeeper/newskeeper_backend/internal/core/ports/repositories"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements the port.
var _ portsrepo.UserRepository = (*UserRepository)(nil)

const userColumns = `user_id, username, password_hash, auth_provider, provider_user_id, created_at, last_updated_at`

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, username, password_hash, auth_provider, provider_user_id, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		nullIfEmpty(user.Username),
		nullIfEmpty(user.PasswordHash),
		nullIfEmpty(string(user.AuthProvider)),
		nullIfEmpty(user.ProviderUserID),
		user.CreatedAt,
		user.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("user already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	return r.scanOne(ctx, query, userID)
}

func (r *UserRepository) FindLocalUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	// Local accounts are the ones holding a password hash; OAuth accounts may
	// share the same display name and must not match here.
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 AND password_hash IS NOT NULL;`
	return r.scanOne(ctx, query, username)
}

func (r *UserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2;`
	return r.scanOne(ctx, query, string(provider), providerUserID)
}

func (r *UserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        ORDER BY created_at, user_id
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *UserRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Indicate not found explicitly
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user           domain.User
		username       sql.NullString
		passwordHash   sql.NullString
		authProvider   sql.NullString
		providerUserID sql.NullString
	)
	err := row.Scan(
		&user.UserID,
		&username,
		&passwordHash,
		&authProvider,
		&providerUserID,
		&user.CreatedAt,
		&user.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Username = username.String
	user.PasswordHash = passwordHash.String
	user.AuthProvider = domain.AuthProvider(authProvider.String)
	user.ProviderUserID = providerUserID.String
	return &user, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
