package payment

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

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *mockPaymentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *mockPaymentRepo) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
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

func customerClaims() *model.TokenClaims {
	return &model.TokenClaims{CustomerID: uuid.New(), Role: model.RoleCustomer}
}

func TestCreatePayment(t *testing.T) {
	payments := new(mockPaymentRepo)
	bookings := new(mockBookingRepo)
	svc := NewService(payments, bookings)
	principal := customerClaims()

	booking := &model.Booking{
		Base:       model.Base{ID: uuid.New()},
		CustomerID: principal.CustomerID,
		Status:     model.BookingStatusConfirmed,
	}

	bookings.On("Get", mock.Anything, booking.ID).Return(booking, nil)
	payments.On("GetByBooking", mock.Anything, booking.ID).Return(nil, apperrors.NotFound("payment", nil))
	payments.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).Return(nil)

	payment, err := svc.CreatePayment(context.Background(), principal, booking.ID, &model.CreatePaymentRequest{
		Amount: 25000,
		Method: model.PaymentMethodMpesa,
	})

	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusInitiated, payment.Status)
	assert.Equal(t, booking.ID, payment.BookingID)
	payments.AssertExpectations(t)
}

func TestCreatePaymentRejectsSecondPayment(t *testing.T) {
	payments := new(mockPaymentRepo)
	bookings := new(mockBookingRepo)
	svc := NewService(payments, bookings)
	principal := customerClaims()

	booking := &model.Booking{
		Base:       model.Base{ID: uuid.New()},
		CustomerID: principal.CustomerID,
	}
	existing := &model.Payment{Base: model.Base{ID: uuid.New()}, BookingID: booking.ID}

	bookings.On("Get", mock.Anything, booking.ID).Return(booking, nil)
	payments.On("GetByBooking", mock.Anything, booking.ID).Return(existing, nil)

	_, err := svc.CreatePayment(context.Background(), principal, booking.ID, &model.CreatePaymentRequest{
		Amount: 25000,
		Method: model.PaymentMethodCash,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePaymentRejectsUnknownMethod(t *testing.T) {
	svc := NewService(new(mockPaymentRepo), new(mockBookingRepo))

	_, err := svc.CreatePayment(context.Background(), customerClaims(), uuid.New(), &model.CreatePaymentRequest{
		Amount: 25000,
		Method: "bitcoin",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateStatusIndependentOfBooking(t *testing.T) {
	payments := new(mockPaymentRepo)
	svc := NewService(payments, new(mockBookingRepo))

	payment := &model.Payment{
		Base:   model.Base{ID: uuid.New()},
		Status: model.PaymentStatusInitiated,
	}

	payments.On("Get", mock.Anything, payment.ID).Return(payment, nil)
	payments.On("UpdateStatus", mock.Anything, payment.ID, model.PaymentStatusRefunded).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), payment.ID, &model.UpdatePaymentStatusRequest{
		Status: model.PaymentStatusRefunded,
	})

	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusRefunded, updated.Status)
}
