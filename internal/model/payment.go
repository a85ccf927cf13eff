package model

import "github.com/google/uuid"

type PaymentMethod string

const (
	PaymentMethodMpesa    PaymentMethod = "mpesa"
	PaymentMethodTigoPesa PaymentMethod = "tigo_pesa"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodCash     PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodTigoPesa, PaymentMethodCard, PaymentMethodCash:
		return true
	}
	return false
}

// PaymentStatus is managed independently from the booking state machine.
type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusSuccess   PaymentStatus = "success"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusInitiated, PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment is the financial record for a booking. Exactly one per booking.
type Payment struct {
	Base
	BookingID     uuid.UUID     `db:"booking_id" json:"booking_id"`
	Amount        float64       `db:"amount" json:"amount"`
	Method        PaymentMethod `db:"method" json:"method"`
	Status        PaymentStatus `db:"status" json:"status"`
	TransactionID *string       `db:"transaction_id" json:"transaction_id,omitempty"`
}

type CreatePaymentRequest struct {
	Amount        float64       `json:"amount" binding:"min=0"`
	Method        PaymentMethod `json:"method" binding:"required"`
	TransactionID *string       `json:"transaction_id"`
}

type UpdatePaymentStatusRequest struct {
	Status PaymentStatus `json:"status" binding:"required"`
}
