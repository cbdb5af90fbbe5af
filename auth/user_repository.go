package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) InsertUser(ctx context.Context, user User) (User, error) {
	sql := `
			INSERT INTO users(username, email, password_hash, is_admin)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Admin,
	).Scan(&user.ID, &user.CreatedAt)

	if isUniqueViolation(err) {
		return User{}, ErrUsernameTaken
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	sql := `
			SELECT id, username, email, password_hash, is_admin, created_at
			FROM users
			WHERE username=$1;
		`

	var user User
	err := r.pool.QueryRow(ctx, sql, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Admin,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user '%v': %w", username, err)
	}

	return user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (User, error) {
	sql := `
			SELECT id, username, email, password_hash, is_admin, created_at
			FROM users
			WHERE id=$1;
		`

	var user User
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Admin,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
