package model

import "github.com/google/uuid"

// Stylist is a staff member performing services at exactly one salon.
type Stylist struct {
	Base
	SalonID     uuid.UUID  `db:"salon_id" json:"salon_id"`
	Name        string     `db:"name" json:"name"`
	Bio         string     `db:"bio" json:"bio,omitempty"`
	Specialties StringList `db:"specialties" json:"specialties,omitempty"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	PhotoURL    *string    `db:"photo_url" json:"photo_url,omitempty"`
}

type CreateStylistRequest struct {
	Name        string   `json:"name" binding:"required,max=150"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
	PhotoURL    *string  `json:"photo_url" binding:"omitempty,url"`
}

type UpdateStylistRequest struct {
	Name        *string   `json:"name"`
	Bio         *string   `json:"bio"`
	Specialties *[]string `json:"specialties"`
	IsActive    *bool     `json:"is_active"`
	PhotoURL    *string   `json:"photo_url" binding:"omitempty,url"`
}
