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

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	query := `
		INSERT INTO payments (
			id, booking_id, amount, method, status, transaction_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	query := `
		SELECT id, booking_id, amount, method, status, transaction_id,
			   created_at, updated_at
		FROM payments
		WHERE id = $1
	`
	var payment model.Payment
	err := r.db.GetContext(ctx, &payment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("payment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepository) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Payment, error) {
	query := `
		SELECT id, booking_id, amount, method, status, transaction_id,
			   created_at, updated_at
		FROM payments
		WHERE booking_id = $1
	`
	var payment model.Payment
	err := r.db.GetContext(ctx, &payment, query, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("payment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by booking: %w", err)
	}
	return &payment, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) error {
	query := `
		UPDATE payments
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("payment", nil)
	}

	return nil
}
