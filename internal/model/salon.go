package model

// SalonCategory parameterizes the women's and men's listings over one model
type SalonCategory string

const (
	SalonCategoryWomen  SalonCategory = "women"
	SalonCategoryMen    SalonCategory = "men"
	SalonCategoryUnisex SalonCategory = "unisex"
)

func (c SalonCategory) Valid() bool {
	switch c {
	case SalonCategoryWomen, SalonCategoryMen, SalonCategoryUnisex:
		return true
	}
	return false
}

// Salon is a business location. GPS coordinates are optional but must be
// jointly present and within bounds.
type Salon struct {
	Base
	OwnerID     *string       `db:"owner_id" json:"owner_id,omitempty"`
	Name        string        `db:"name" json:"name"`
	Category    SalonCategory `db:"category" json:"category"`
	Description string        `db:"description" json:"description,omitempty"`
	Address     string        `db:"address" json:"address,omitempty"`

	Region   string `db:"region" json:"region,omitempty"`
	District string `db:"district" json:"district,omitempty"`
	Street   string `db:"street" json:"street,omitempty"`

	Latitude  *float64 `db:"latitude" json:"latitude,omitempty"`
	Longitude *float64 `db:"longitude" json:"longitude,omitempty"`

	Phone   string  `db:"phone" json:"phone"`
	Email   *string `db:"email" json:"email,omitempty"`
	Website *string `db:"website" json:"website,omitempty"`

	Facebook  *string `db:"facebook" json:"facebook,omitempty"`
	Instagram *string `db:"instagram" json:"instagram,omitempty"`

	OpeningHours JSONMap `db:"opening_hours" json:"opening_hours,omitempty"`
}

// RegisterSalonRequest is the minimal first-phase registration payload.
// Full details are filled in later via UpdateSalonProfileRequest.
type RegisterSalonRequest struct {
	Name     string        `json:"name" binding:"required,max=200"`
	Phone    string        `json:"phone" binding:"required"`
	Category SalonCategory `json:"category" binding:"required"`
}

// UpdateSalonProfileRequest is the second-phase profile completion payload.
type UpdateSalonProfileRequest struct {
	Description  *string  `json:"description"`
	Address      *string  `json:"address"`
	Region       string   `json:"region" binding:"required,max=100"`
	District     string   `json:"district" binding:"required,max=100"`
	Street       string   `json:"street" binding:"required,max=200"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Website      *string  `json:"website" binding:"omitempty,url"`
	Facebook     *string  `json:"facebook" binding:"omitempty,url"`
	Instagram    *string  `json:"instagram" binding:"omitempty,url"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	OpeningHours JSONMap  `json:"opening_hours"`
}

// SalonListing is the minimal JSON shape produced for public listings.
type SalonListing struct {
	ID      string  `db:"id" json:"id"`
	Name    string  `db:"name" json:"name"`
	Address string  `db:"address" json:"address"`
	Phone   string  `db:"phone" json:"phone"`
	Email   *string `db:"email" json:"email"`
}

type SalonFilters struct {
	Category SalonCategory
	Region   string
	Search   string
	Limit    int
	Offset   int
}
