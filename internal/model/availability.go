package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is an explicit record of a stylist's free or booked
// time window, independent of bookings. Start must precede end.
type AvailabilitySlot struct {
	Base
	StylistID uuid.UUID `db:"stylist_id" json:"stylist_id"`
	Start     time.Time `db:"start_time" json:"start"`
	End       time.Time `db:"end_time" json:"end"`
	IsBooked  bool      `db:"is_booked" json:"is_booked"`
}

type CreateSlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required,gtfield=Start"`
}

// TimeSlot is a free window offered to clients picking a start time.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
