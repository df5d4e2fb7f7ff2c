package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"vantage/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = "id, username, password_hash, role, created_at, updated_at"

func (db *DB) CreateUser(ctx context.Context, username, passwordHash, role string) (*models.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, userColumns)

	user, err := scanUser(db.Pool.QueryRow(ctx, query, username, passwordHash, role))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("username %q: %w", username, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("Created user: %s (role: %s)", user.Username, user.Role)
	return user, nil
}

func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(db.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)

	user, err := scanUser(db.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
