package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/model"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

func (r *stylistRepository) Create(ctx context.Context, stylist *model.Stylist) error {
	query := `
		INSERT INTO stylists (
			id, salon_id, name, bio, specialties, is_active, photo_url,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	stylist.CreatedAt = time.Now()
	stylist.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		stylist.ID,
		stylist.SalonID,
		stylist.Name,
		stylist.Bio,
		stylist.Specialties,
		stylist.IsActive,
		stylist.PhotoURL,
		stylist.CreatedAt,
		stylist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create stylist: %w", err)
	}
	return nil
}

func (r *stylistRepository) Get(ctx context.Context, id uuid.UUID) (*model.Stylist, error) {
	query := `
		SELECT id, salon_id, name, bio, specialties, is_active, photo_url,
			   created_at, updated_at
		FROM stylists
		WHERE id = $1
	`
	var stylist model.Stylist
	err := r.db.GetContext(ctx, &stylist, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("stylist", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stylist: %w", err)
	}
	return &stylist, nil
}

func (r *stylistRepository) Update(ctx context.Context, stylist *model.Stylist) error {
	query := `
		UPDATE stylists
		SET name = $1, bio = $2, specialties = $3, is_active = $4, photo_url = $5,
			updated_at = $6
		WHERE id = $7
	`
	stylist.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		stylist.Name,
		stylist.Bio,
		stylist.Specialties,
		stylist.IsActive,
		stylist.PhotoURL,
		stylist.UpdatedAt,
		stylist.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update stylist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("stylist", nil)
	}

	return nil
}

func (r *stylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stylists WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete stylist: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("stylist", nil)
	}

	return nil
}

func (r *stylistRepository) ListBySalon(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]*model.Stylist, error) {
	query := `
		SELECT id, salon_id, name, bio, specialties, is_active, photo_url,
			   created_at, updated_at
		FROM stylists
		WHERE salon_id = $1
	`
	args := []interface{}{salonID}

	if activeOnly {
		query += " AND is_active = true"
	}

	query += " ORDER BY name ASC"

	var stylists []*model.Stylist
	err := r.db.SelectContext(ctx, &stylists, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stylists: %w", err)
	}
	return stylists, nil
}
