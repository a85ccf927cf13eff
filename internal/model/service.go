package model

import "github.com/google/uuid"

// Service is an offering of a salon. (salon, name) is unique.
type Service struct {
	Base
	SalonID         uuid.UUID `db:"salon_id" json:"salon_id"`
	Name            string    `db:"name" json:"name"`
	Description     string    `db:"description" json:"description,omitempty"`
	Price           float64   `db:"price" json:"price"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Active          bool      `db:"active" json:"active"`
}

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required,max=150"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
	Active          *bool    `json:"active"`
}
