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

func (r *salonRepository) Create(ctx context.Context, salon *model.Salon) error {
	query := `
		INSERT INTO salons (
			id, owner_id, name, category, description, address,
			region, district, street, latitude, longitude,
			phone, email, website, facebook, instagram, opening_hours,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	salon.CreatedAt = time.Now()
	salon.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		salon.ID,
		salon.OwnerID,
		salon.Name,
		salon.Category,
		salon.Description,
		salon.Address,
		salon.Region,
		salon.District,
		salon.Street,
		salon.Latitude,
		salon.Longitude,
		salon.Phone,
		salon.Email,
		salon.Website,
		salon.Facebook,
		salon.Instagram,
		salon.OpeningHours,
		salon.CreatedAt,
		salon.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create salon: %w", err)
	}
	return nil
}

func (r *salonRepository) Get(ctx context.Context, id uuid.UUID) (*model.Salon, error) {
	query := `
		SELECT id, owner_id, name, category, description, address,
			   region, district, street, latitude, longitude,
			   phone, email, website, facebook, instagram, opening_hours,
			   created_at, updated_at
		FROM salons
		WHERE id = $1
	`
	var salon model.Salon
	err := r.db.GetContext(ctx, &salon, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("salon", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get salon: %w", err)
	}
	return &salon, nil
}

func (r *salonRepository) Update(ctx context.Context, salon *model.Salon) error {
	query := `
		UPDATE salons
		SET name = $1, category = $2, description = $3, address = $4,
			region = $5, district = $6, street = $7, latitude = $8, longitude = $9,
			phone = $10, email = $11, website = $12, facebook = $13, instagram = $14,
			opening_hours = $15, updated_at = $16
		WHERE id = $17
	`
	salon.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		salon.Name,
		salon.Category,
		salon.Description,
		salon.Address,
		salon.Region,
		salon.District,
		salon.Street,
		salon.Latitude,
		salon.Longitude,
		salon.Phone,
		salon.Email,
		salon.Website,
		salon.Facebook,
		salon.Instagram,
		salon.OpeningHours,
		salon.UpdatedAt,
		salon.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update salon: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("salon", nil)
	}

	return nil
}

func (r *salonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM salons WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete salon: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("salon", nil)
	}

	return nil
}

func (r *salonRepository) List(ctx context.Context, filters *model.SalonFilters) ([]*model.Salon, error) {
	query := `
		SELECT id, owner_id, name, category, description, address,
			   region, district, street, latitude, longitude,
			   phone, email, website, facebook, instagram, opening_hours,
			   created_at, updated_at
		FROM salons
		WHERE 1=1
	`
	query, args := applySalonFilters(query, filters)
	query += " ORDER BY name ASC"

	var salons []*model.Salon
	err := r.db.SelectContext(ctx, &salons, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salons: %w", err)
	}
	return salons, nil
}

func (r *salonRepository) ListListings(ctx context.Context, filters *model.SalonFilters) ([]*model.SalonListing, error) {
	query := `
		SELECT id, name, address, phone, email
		FROM salons
		WHERE 1=1
	`
	query, args := applySalonFilters(query, filters)
	query += " ORDER BY name ASC"
	if filters != nil && filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filters.Limit, filters.Offset)
	}

	var listings []*model.SalonListing
	err := r.db.SelectContext(ctx, &listings, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salon listings: %w", err)
	}
	return listings, nil
}

func (r *salonRepository) CountListings(ctx context.Context, filters *model.SalonFilters) (int, error) {
	query := `SELECT COUNT(*) FROM salons WHERE 1=1`
	query, args := applySalonFilters(query, filters)

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count salons: %w", err)
	}
	return total, nil
}

func applySalonFilters(query string, filters *model.SalonFilters) (string, []interface{}) {
	args := []interface{}{}
	argCount := 1

	if filters == nil {
		return query, args
	}

	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argCount)
		args = append(args, filters.Category)
		argCount++
	}

	if filters.Region != "" {
		query += fmt.Sprintf(" AND region = $%d", argCount)
		args = append(args, filters.Region)
		argCount++
	}

	if filters.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", argCount)
		args = append(args, filters.Search)
		argCount++
	}

	return query, args
}
