package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kenemosam/saluni/internal/model"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

func (r *availabilityRepository) Create(ctx context.Context, slot *model.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (
			id, stylist_id, start_time, end_time, is_booked, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	slot.CreatedAt = time.Now()
	slot.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		slot.ID,
		slot.StylistID,
		slot.Start,
		slot.End,
		slot.IsBooked,
		slot.CreatedAt,
		slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create availability slot: %w", err)
	}
	return nil
}

func (r *availabilityRepository) Get(ctx context.Context, id uuid.UUID) (*model.AvailabilitySlot, error) {
	query := `
		SELECT id, stylist_id, start_time, end_time, is_booked, created_at, updated_at
		FROM availability_slots
		WHERE id = $1
	`
	var slot model.AvailabilitySlot
	err := r.db.GetContext(ctx, &slot, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("availability slot", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get availability slot: %w", err)
	}
	return &slot, nil
}

func (r *availabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM availability_slots WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete availability slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("availability slot", nil)
	}

	return nil
}

func (r *availabilityRepository) ListByStylist(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, stylist_id, start_time, end_time, is_booked, created_at, updated_at
		FROM availability_slots
		WHERE stylist_id = $1
		AND start_time >= $2
		AND end_time <= $3
		ORDER BY start_time ASC
	`
	var slots []*model.AvailabilitySlot
	err := r.db.SelectContext(ctx, &slots, query, stylistID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability slots: %w", err)
	}
	return slots, nil
}

// FindBookedOverlappingTx returns a booked slot whose half-open window
// intersects [start, end), locking it for the duration of the transaction.
func (r *availabilityRepository) FindBookedOverlappingTx(ctx context.Context, tx *sqlx.Tx, stylistID uuid.UUID, start, end time.Time) (*model.AvailabilitySlot, error) {
	query := `
		SELECT id, stylist_id, start_time, end_time, is_booked, created_at, updated_at
		FROM availability_slots
		WHERE stylist_id = $1
		AND is_booked = true
		AND start_time < $3
		AND $2 < end_time
		LIMIT 1
		FOR UPDATE
	`
	var slot model.AvailabilitySlot
	err := tx.GetContext(ctx, &slot, query, stylistID, start, end)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booked slot: %w", err)
	}
	return &slot, nil
}

// FindCoveringFreeSlotTx returns a free slot fully covering [start, end),
// locked so concurrent bookings cannot consume it twice.
func (r *availabilityRepository) FindCoveringFreeSlotTx(ctx context.Context, tx *sqlx.Tx, stylistID uuid.UUID, start, end time.Time) (*model.AvailabilitySlot, error) {
	query := `
		SELECT id, stylist_id, start_time, end_time, is_booked, created_at, updated_at
		FROM availability_slots
		WHERE stylist_id = $1
		AND is_booked = false
		AND start_time <= $2
		AND end_time >= $3
		ORDER BY start_time ASC
		LIMIT 1
		FOR UPDATE
	`
	var slot model.AvailabilitySlot
	err := tx.GetContext(ctx, &slot, query, stylistID, start, end)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find free slot: %w", err)
	}
	return &slot, nil
}

func (r *availabilityRepository) SetBookedTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, booked bool) error {
	query := `
		UPDATE availability_slots
		SET is_booked = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := tx.ExecContext(ctx, query, booked, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update slot booked flag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("availability slot", nil)
	}

	return nil
}
