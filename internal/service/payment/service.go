package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/model"
	"github.com/kenemosam/saluni/internal/repository"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

type Service struct {
	payments repository.PaymentRepository
	bookings repository.BookingRepository
}

func NewService(payments repository.PaymentRepository, bookings repository.BookingRepository) *Service {
	return &Service{payments: payments, bookings: bookings}
}

// CreatePayment records the payment for a booking. A booking carries at
// most one payment record; retries must update its status instead.
func (s *Service) CreatePayment(ctx context.Context, principal *model.TokenClaims, bookingID uuid.UUID, req *model.CreatePaymentRequest) (*model.Payment, error) {
	if !req.Method.Valid() {
		return nil, apperrors.Validationf("unknown payment method %q", req.Method)
	}

	booking, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if principal.Role == model.RoleCustomer && booking.CustomerID != principal.CustomerID {
		return nil, apperrors.NotFound("booking", nil)
	}

	if existing, err := s.payments.GetByBooking(ctx, bookingID); err == nil && existing != nil {
		return nil, apperrors.Conflict("booking already has a payment record", nil)
	} else if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	payment := &model.Payment{
		Base:          model.Base{ID: uuid.New()},
		BookingID:     booking.ID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        model.PaymentStatusInitiated,
		TransactionID: req.TransactionID,
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *Service) GetPayment(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	return s.payments.Get(ctx, id)
}

func (s *Service) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Payment, error) {
	return s.payments.GetByBooking(ctx, bookingID)
}

// UpdateStatus moves the payment's status. Payment status is independent
// of the booking state machine; it changes regardless of the booking.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *model.UpdatePaymentStatusRequest) (*model.Payment, error) {
	if !req.Status.Valid() {
		return nil, apperrors.Validationf("unknown payment status %q", req.Status)
	}

	payment, err := s.payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.payments.UpdateStatus(ctx, payment.ID, req.Status); err != nil {
		return nil, err
	}
	payment.Status = req.Status
	return payment, nil
}
