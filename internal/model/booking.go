package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// bookingTransitions is the authoritative transition table. Statuses absent
// from the map are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no further legal transition.
func (s BookingStatus) Terminal() bool {
	return len(bookingTransitions[s]) == 0
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted,
		BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// Booking is a reservation of a time window against a salon's catalog.
// The window is half-open: [StartTime, EndTime).
type Booking struct {
	Base
	CustomerID uuid.UUID     `db:"customer_id" json:"customer_id"`
	SalonID    uuid.UUID     `db:"salon_id" json:"salon_id"`
	ServiceID  uuid.UUID     `db:"service_id" json:"service_id"`
	StylistID  *uuid.UUID    `db:"stylist_id" json:"stylist_id,omitempty"`
	SlotID     *uuid.UUID    `db:"slot_id" json:"slot_id,omitempty"`
	StartTime  time.Time     `db:"start_time" json:"start_time"`
	EndTime    time.Time     `db:"end_time" json:"end_time"`
	Status     BookingStatus `db:"status" json:"status"`
	Notes      string        `db:"notes" json:"notes,omitempty"`
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. A window ending exactly when another starts does not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

type CreateBookingRequest struct {
	SalonID   uuid.UUID  `json:"salon_id" binding:"required"`
	ServiceID uuid.UUID  `json:"service_id" binding:"required"`
	StylistID *uuid.UUID `json:"stylist_id"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time"`
	Notes     string     `json:"notes" binding:"max=1000"`
}

type TransitionBookingRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}

type BookingFilters struct {
	CustomerID uuid.UUID
	SalonID    uuid.UUID
	StylistID  uuid.UUID
	Status     BookingStatus
	StartDate  time.Time
	EndDate    time.Time
}
