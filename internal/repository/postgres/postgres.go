package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/kenemosam/saluni/internal/repository"
)

type customerRepository struct {
	BaseRepository
}

type salonRepository struct {
	BaseRepository
}

type serviceRepository struct {
	BaseRepository
}

type stylistRepository struct {
	BaseRepository
}

type availabilityRepository struct {
	BaseRepository
}

type bookingRepository struct {
	BaseRepository
}

type paymentRepository struct {
	BaseRepository
}

type reviewRepository struct {
	BaseRepository
}

type outboxRepository struct {
	BaseRepository
}

func NewCustomerRepository(db *sqlx.DB) repository.CustomerRepository {
	return &customerRepository{NewBaseRepository(db)}
}

func NewSalonRepository(db *sqlx.DB) repository.SalonRepository {
	return &salonRepository{NewBaseRepository(db)}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{NewBaseRepository(db)}
}

func NewStylistRepository(db *sqlx.DB) repository.StylistRepository {
	return &stylistRepository{NewBaseRepository(db)}
}

func NewAvailabilityRepository(db *sqlx.DB) repository.AvailabilityRepository {
	return &availabilityRepository{NewBaseRepository(db)}
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{NewBaseRepository(db)}
}

func NewPaymentRepository(db *sqlx.DB) repository.PaymentRepository {
	return &paymentRepository{NewBaseRepository(db)}
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{NewBaseRepository(db)}
}

func NewOutboxRepository(db *sqlx.DB) repository.OutboxRepository {
	return &outboxRepository{NewBaseRepository(db)}
}
