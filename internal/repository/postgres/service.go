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

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	query := `
		INSERT INTO services (
			id, salon_id, name, description, price, duration_minutes, active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		service.ID,
		service.SalonID,
		service.Name,
		service.Description,
		service.Price,
		service.DurationMinutes,
		service.Active,
		service.CreatedAt,
		service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *serviceRepository) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	query := `
		SELECT id, salon_id, name, description, price, duration_minutes, active,
			   created_at, updated_at
		FROM services
		WHERE id = $1
	`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("service", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) GetByName(ctx context.Context, salonID uuid.UUID, name string) (*model.Service, error) {
	query := `
		SELECT id, salon_id, name, description, price, duration_minutes, active,
			   created_at, updated_at
		FROM services
		WHERE salon_id = $1 AND name = $2
	`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, salonID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("service", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service by name: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	query := `
		UPDATE services
		SET name = $1, description = $2, price = $3, duration_minutes = $4,
			active = $5, updated_at = $6
		WHERE id = $7
	`
	service.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		service.Name,
		service.Description,
		service.Price,
		service.DurationMinutes,
		service.Active,
		service.UpdatedAt,
		service.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("service", nil)
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM services WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("service", nil)
	}

	return nil
}

func (r *serviceRepository) ListBySalon(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]*model.Service, error) {
	query := `
		SELECT id, salon_id, name, description, price, duration_minutes, active,
			   created_at, updated_at
		FROM services
		WHERE salon_id = $1
	`
	args := []interface{}{salonID}

	if activeOnly {
		query += " AND active = true"
	}

	query += " ORDER BY name ASC"

	var services []*model.Service
	err := r.db.SelectContext(ctx, &services, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
