package model

import "time"

// Role enumerates the capabilities a customer account can hold
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleOwner       Role = "owner"
	RoleBarber      Role = "barber"
	RoleHairdresser Role = "hairdresser"
	RoleAdmin       Role = "admin"
)

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleOwner, RoleBarber, RoleHairdresser, RoleAdmin:
		return true
	}
	return false
}

// Customer is an authenticated end user. The phone number is the login
// identifier and must be unique.
type Customer struct {
	Base
	FirstName       string     `db:"first_name" json:"first_name"`
	LastName        string     `db:"last_name" json:"last_name"`
	Phone           string     `db:"phone" json:"phone"`
	PasswordHash    string     `db:"password_hash" json:"-"`
	Role            Role       `db:"role" json:"role"`
	IsPhoneVerified bool       `db:"is_phone_verified" json:"is_phone_verified"`
	ProfileImage    *string    `db:"profile_image" json:"profile_image,omitempty"`
	LastLoginAt     *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}
