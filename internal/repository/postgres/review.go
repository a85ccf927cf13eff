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

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (
			id, booking_id, customer_id, salon_id, rating, comment,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	review.CreatedAt = time.Now()
	review.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.BookingID,
		review.CustomerID,
		review.SalonID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Review, error) {
	query := `
		SELECT id, booking_id, customer_id, salon_id, rating, comment,
			   created_at, updated_at
		FROM reviews
		WHERE booking_id = $1
	`
	var review model.Review
	err := r.db.GetContext(ctx, &review, query, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("review", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review by booking: %w", err)
	}
	return &review, nil
}

func (r *reviewRepository) ListBySalon(ctx context.Context, salonID uuid.UUID) ([]*model.Review, error) {
	query := `
		SELECT id, booking_id, customer_id, salon_id, rating, comment,
			   created_at, updated_at
		FROM reviews
		WHERE salon_id = $1
		ORDER BY created_at DESC
	`
	var reviews []*model.Review
	err := r.db.SelectContext(ctx, &reviews, query, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) SalonRating(ctx context.Context, salonID uuid.UUID) (*model.SalonRating, error) {
	query := `
		SELECT $1::uuid AS salon_id,
			   COALESCE(AVG(rating), 0) AS average,
			   COUNT(*) AS count
		FROM reviews
		WHERE salon_id = $1
	`
	var rating model.SalonRating
	err := r.db.GetContext(ctx, &rating, query, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute salon rating: %w", err)
	}
	return &rating, nil
}
