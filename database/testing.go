package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testDB *DB
)

// GetTestDB returns the shared test database connection.
// Available after TestMain has run and SetupTestDB succeeded.
// Returns nil when no test database is configured.
func GetTestDB() *DB {
	return testDB
}

// SetupTestDB creates a test database connection and runs migrations.
// Should be called once in TestMain, not in individual tests.
// Migrations are embedded inline (not read from files) for test isolation.
func SetupTestDB(dbURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := runTestMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runTestMigrations(db *DB) error {
	ctx := context.Background()

	migrations := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(64) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(16) NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			client VARCHAR(255) NOT NULL DEFAULT '',
			industry VARCHAR(255) NOT NULL DEFAULT '',
			challenge TEXT NOT NULL DEFAULT '',
			solution TEXT NOT NULL DEFAULT '',
			metric VARCHAR(255) NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			challenge_image TEXT NOT NULL DEFAULT '',
			solution_image TEXT NOT NULL DEFAULT '',
			logo TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			overview TEXT NOT NULL DEFAULT '',
			problem_detail TEXT NOT NULL DEFAULT '',
			approach TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL DEFAULT '',
			testimonial_quote TEXT NOT NULL DEFAULT '',
			testimonial_author VARCHAR(255) NOT NULL DEFAULT '',
			testimonial_role VARCHAR(255) NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			live_link TEXT NOT NULL DEFAULT '',
			repo_link TEXT NOT NULL DEFAULT '',
			featured BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS blogs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			cover_image TEXT NOT NULL DEFAULT '',
			author VARCHAR(255) NOT NULL DEFAULT 'Admin',
			tags TEXT[] NOT NULL DEFAULT '{}',
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS leads (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			is_booking_request BOOLEAN NOT NULL DEFAULT FALSE,
			preferred_date VARCHAR(64) NOT NULL DEFAULT '',
			preferred_time_range VARCHAR(64) NOT NULL DEFAULT '',
			meeting_topic VARCHAR(255) NOT NULL DEFAULT '',
			status VARCHAR(32) NOT NULL DEFAULT 'New'
				CHECK (status IN ('New', 'Contacted', 'Meeting Scheduled', 'Closed')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		`,
	}

	for _, migration := range migrations {
		_, err := db.Pool.Exec(ctx, migration)
		if err != nil {
			return err
		}
	}

	return nil
}

// CleanupTestDB truncates all tables for a fresh test state.
// Call this at the start of each integration test.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE users, projects, blogs, leads CASCADE")
	require.NoError(t, err)
}

// TeardownTestDB closes the test database connection.
// Safe to call with nil DB (no-op).
func TeardownTestDB(db *DB) {
	if db != nil {
		db.Close()
	}
}

// integrationDB skips the test unless a test database is configured,
// then hands back a clean one.
func integrationDB(t *testing.T) *DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}

	CleanupTestDB(t, testDB)
	return testDB
}
