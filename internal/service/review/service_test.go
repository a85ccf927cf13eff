package review

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kenemosam/saluni/internal/model"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Review, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *mockReviewRepo) ListBySalon(ctx context.Context, salonID uuid.UUID) ([]*model.Review, error) {
	args := m.Called(ctx, salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Review), args.Error(1)
}

func (m *mockReviewRepo) SalonRating(ctx context.Context, salonID uuid.UUID) (*model.SalonRating, error) {
	args := m.Called(ctx, salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SalonRating), args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	args := m.Called(ctx)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}

func (m *mockBookingRepo) CreateTx(ctx context.Context, tx *sqlx.Tx, booking *model.Booking) error {
	args := m.Called(ctx, tx, booking)
	return args.Error(0)
}

func (m *mockBookingRepo) Get(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status model.BookingStatus) error {
	args := m.Called(ctx, tx, id, status)
	return args.Error(0)
}

func (m *mockBookingRepo) List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindConflictingTx(ctx context.Context, tx *sqlx.Tx, salonID uuid.UUID, stylistID *uuid.UUID, start, end time.Time) (*model.Booking, error) {
	args := m.Called(ctx, tx, salonID, stylistID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func TestCreateReview(t *testing.T) {
	reviews := new(mockReviewRepo)
	bookings := new(mockBookingRepo)
	svc := NewService(reviews, bookings)

	principal := &model.TokenClaims{CustomerID: uuid.New(), Role: model.RoleCustomer}
	booking := &model.Booking{
		Base:       model.Base{ID: uuid.New()},
		CustomerID: principal.CustomerID,
		SalonID:    uuid.New(),
		Status:     model.BookingStatusCompleted,
	}

	bookings.On("Get", mock.Anything, booking.ID).Return(booking, nil)
	reviews.On("GetByBooking", mock.Anything, booking.ID).Return(nil, apperrors.NotFound("review", nil))
	reviews.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

	review, err := svc.CreateReview(context.Background(), principal, booking.ID, &model.CreateReviewRequest{
		Rating:  5,
		Comment: "great braids",
	})

	require.NoError(t, err)
	assert.Equal(t, booking.SalonID, review.SalonID)
	assert.Equal(t, principal.CustomerID, review.CustomerID)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewRejectsSecondReview(t *testing.T) {
	reviews := new(mockReviewRepo)
	bookings := new(mockBookingRepo)
	svc := NewService(reviews, bookings)

	principal := &model.TokenClaims{CustomerID: uuid.New(), Role: model.RoleCustomer}
	booking := &model.Booking{
		Base:       model.Base{ID: uuid.New()},
		CustomerID: principal.CustomerID,
	}
	existing := &model.Review{Base: model.Base{ID: uuid.New()}, BookingID: booking.ID}

	bookings.On("Get", mock.Anything, booking.ID).Return(booking, nil)
	reviews.On("GetByBooking", mock.Anything, booking.ID).Return(existing, nil)

	_, err := svc.CreateReview(context.Background(), principal, booking.ID, &model.CreateReviewRequest{Rating: 4})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReviewRejectsOtherCustomer(t *testing.T) {
	reviews := new(mockReviewRepo)
	bookings := new(mockBookingRepo)
	svc := NewService(reviews, bookings)

	booking := &model.Booking{
		Base:       model.Base{ID: uuid.New()},
		CustomerID: uuid.New(),
	}
	stranger := &model.TokenClaims{CustomerID: uuid.New(), Role: model.RoleCustomer}

	bookings.On("Get", mock.Anything, booking.ID).Return(booking, nil)

	_, err := svc.CreateReview(context.Background(), stranger, booking.ID, &model.CreateReviewRequest{Rating: 4})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc := NewService(new(mockReviewRepo), new(mockBookingRepo))
	principal := &model.TokenClaims{CustomerID: uuid.New(), Role: model.RoleCustomer}

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(context.Background(), principal, uuid.New(), &model.CreateReviewRequest{Rating: rating})
		require.Error(t, err, "rating %d", rating)
		assert.True(t, apperrors.IsValidation(err))
	}
}
