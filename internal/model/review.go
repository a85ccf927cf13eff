package model

import "github.com/google/uuid"

// Review is post-booking feedback. Exactly one per booking, authored by
// the booking's customer.
type Review struct {
	Base
	BookingID  uuid.UUID `db:"booking_id" json:"booking_id"`
	CustomerID uuid.UUID `db:"customer_id" json:"customer_id"`
	SalonID    uuid.UUID `db:"salon_id" json:"salon_id"`
	Rating     int       `db:"rating" json:"rating"`
	Comment    string    `db:"comment" json:"comment,omitempty"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// SalonRating is the aggregated review summary for a salon.
type SalonRating struct {
	SalonID uuid.UUID `db:"salon_id" json:"salon_id"`
	Average float64   `db:"average" json:"average"`
	Count   int       `db:"count" json:"count"`
}
