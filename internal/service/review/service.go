package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/model"
	"github.com/kenemosam/saluni/internal/repository"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

type Service struct {
	reviews  repository.ReviewRepository
	bookings repository.BookingRepository
}

func NewService(reviews repository.ReviewRepository, bookings repository.BookingRepository) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

// CreateReview records feedback for a booking. Only the booking's own
// customer may review it, and each booking takes exactly one review.
func (s *Service) CreateReview(ctx context.Context, principal *model.TokenClaims, bookingID uuid.UUID, req *model.CreateReviewRequest) (*model.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5", nil)
	}

	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != principal.CustomerID {
		return nil, apperrors.Validation("only the booking's customer may review it", nil)
	}

	if existing, err := s.reviews.GetByBooking(ctx, bookingID); err == nil && existing != nil {
		return nil, apperrors.Conflict("booking already has a review", nil)
	} else if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	review := &model.Review{
		Base:       model.Base{ID: uuid.New()},
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		SalonID:    booking.SalonID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Service) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Review, error) {
	return s.reviews.GetByBooking(ctx, bookingID)
}

func (s *Service) ListBySalon(ctx context.Context, salonID uuid.UUID) ([]*model.Review, error) {
	return s.reviews.ListBySalon(ctx, salonID)
}
