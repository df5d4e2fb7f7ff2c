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

const leadColumns = `id, name, email, message, is_booking_request,
	preferred_date, preferred_time_range, meeting_topic, status,
	created_at, updated_at`

func (db *DB) CreateLead(ctx context.Context, l models.Lead) (*models.Lead, error) {
	query := fmt.Sprintf(`
		INSERT INTO leads (name, email, message, is_booking_request,
			preferred_date, preferred_time_range, meeting_topic, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, leadColumns)

	created, err := scanLead(db.Pool.QueryRow(ctx, query,
		l.Name, l.Email, l.Message, l.IsBookingRequest,
		l.PreferredDate, l.PreferredTimeRange, l.MeetingTopic, l.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	log.Printf("Created lead: %s (ID: %s)", created.Email, created.ID)
	return created, nil
}

func (db *DB) ListLeads(ctx context.Context) ([]models.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads ORDER BY created_at DESC`, leadColumns)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []models.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, *lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leads: %w", err)
	}

	return leads, nil
}

func (db *DB) GetLead(ctx context.Context, leadID uuid.UUID) (*models.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1`, leadColumns)

	lead, err := scanLead(db.Pool.QueryRow(ctx, query, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

// UpdateLeadStatus is the only mutation a lead supports after submission.
func (db *DB) UpdateLeadStatus(ctx context.Context, leadID uuid.UUID, status string) (*models.Lead, error) {
	query := fmt.Sprintf(`
		UPDATE leads SET status = $1, updated_at = NOW()
		WHERE id = $2 RETURNING %s
	`, leadColumns)

	lead, err := scanLead(db.Pool.QueryRow(ctx, query, status, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return lead, nil
}

func (db *DB) DeleteLead(ctx context.Context, leadID uuid.UUID) error {
	query := `DELETE FROM leads WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, leadID)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	log.Printf("Deleted lead: %s", leadID)
	return nil
}

func scanLead(row rowScanner) (*models.Lead, error) {
	var l models.Lead
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Email,
		&l.Message,
		&l.IsBookingRequest,
		&l.PreferredDate,
		&l.PreferredTimeRange,
		&l.MeetingTopic,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
