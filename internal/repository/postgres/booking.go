package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/kenemosam/saluni/internal/model"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

// isExclusionViolation reports whether err is the Postgres
// exclusion-constraint violation (SQLSTATE 23P01) raised by the
// no-overlap constraint on bookings.
func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23P01"
}

func (r *bookingRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, customer_id, salon_id, service_id, stylist_id, slot_id,
			start_time, end_time, status, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := tx.ExecContext(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.SalonID,
		booking.ServiceID,
		booking.StylistID,
		booking.SlotID,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return apperrors.Conflict("requested window overlaps an existing booking", err)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT id, customer_id, salon_id, service_id, stylist_id, slot_id,
			   start_time, end_time, status, notes, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("booking", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status model.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := tx.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("booking", nil)
	}

	return nil
}

func (r *bookingRepository) List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	query := `
		SELECT id, customer_id, salon_id, service_id, stylist_id, slot_id,
			   start_time, end_time, status, notes, created_at, updated_at
		FROM bookings
		WHERE 1=1
	`
	args := []interface{}{}
	argCount := 1

	if filters != nil {
		if filters.CustomerID != uuid.Nil {
			query += fmt.Sprintf(" AND customer_id = $%d", argCount)
			args = append(args, filters.CustomerID)
			argCount++
		}
		if filters.SalonID != uuid.Nil {
			query += fmt.Sprintf(" AND salon_id = $%d", argCount)
			args = append(args, filters.SalonID)
			argCount++
		}
		if filters.StylistID != uuid.Nil {
			query += fmt.Sprintf(" AND stylist_id = $%d", argCount)
			args = append(args, filters.StylistID)
			argCount++
		}
		if filters.Status != "" {
			query += fmt.Sprintf(" AND status = $%d", argCount)
			args = append(args, filters.Status)
			argCount++
		}
		if !filters.StartDate.IsZero() {
			query += fmt.Sprintf(" AND start_time >= $%d", argCount)
			args = append(args, filters.StartDate)
			argCount++
		}
		if !filters.EndDate.IsZero() {
			query += fmt.Sprintf(" AND start_time < $%d", argCount)
			args = append(args, filters.EndDate)
			argCount++
		}
	}

	query += " ORDER BY start_time DESC"

	var bookings []*model.Booking
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// FindConflictingTx returns a non-cancelled booking whose half-open window
// intersects [start, end). The check is scoped to the stylist when one is
// chosen, otherwise to the whole salon. Creations for the same scope are
// serialized with a transaction-level advisory lock: row locks alone do not
// guard the empty-schedule case, where FOR UPDATE has nothing to lock and
// two concurrent overlapping requests would both pass the check.
func (r *bookingRepository) FindConflictingTx(ctx context.Context, tx *sqlx.Tx, salonID uuid.UUID, stylistID *uuid.UUID, start, end time.Time) (*model.Booking, error) {
	lockKey := salonID
	if stylistID != nil {
		lockKey = *stylistID
	}
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, lockKey); err != nil {
		return nil, fmt.Errorf("failed to lock schedule: %w", err)
	}

	query := `
		SELECT id, customer_id, salon_id, service_id, stylist_id, slot_id,
			   start_time, end_time, status, notes, created_at, updated_at
		FROM bookings
		WHERE status NOT IN ('cancelled')
		AND start_time < $2
		AND $1 < end_time
	`
	args := []interface{}{start, end}

	if stylistID != nil {
		query += " AND stylist_id = $3"
		args = append(args, *stylistID)
	} else {
		query += " AND salon_id = $3"
		args = append(args, salonID)
	}

	query += " LIMIT 1 FOR UPDATE"

	var booking model.Booking
	err := tx.GetContext(ctx, &booking, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find conflicting booking: %w", err)
	}
	return &booking, nil
}
