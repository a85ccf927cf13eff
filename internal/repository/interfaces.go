package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kenemosam/saluni/internal/model"
)

// All repository interfaces in one file
type (
	CustomerRepository interface {
		Create(ctx context.Context, customer *model.Customer) error
		Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
		GetByPhone(ctx context.Context, phone string) (*model.Customer, error)
		Update(ctx context.Context, customer *model.Customer) error
	}

	SalonRepository interface {
		Create(ctx context.Context, salon *model.Salon) error
		Get(ctx context.Context, id uuid.UUID) (*model.Salon, error)
		Update(ctx context.Context, salon *model.Salon) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, filters *model.SalonFilters) ([]*model.Salon, error)
		ListListings(ctx context.Context, filters *model.SalonFilters) ([]*model.SalonListing, error)
		CountListings(ctx context.Context, filters *model.SalonFilters) (int, error)
	}

	ServiceRepository interface {
		Create(ctx context.Context, service *model.Service) error
		Get(ctx context.Context, id uuid.UUID) (*model.Service, error)
		GetByName(ctx context.Context, salonID uuid.UUID, name string) (*model.Service, error)
		Update(ctx context.Context, service *model.Service) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListBySalon(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]*model.Service, error)
	}

	StylistRepository interface {
		Create(ctx context.Context, stylist *model.Stylist) error
		Get(ctx context.Context, id uuid.UUID) (*model.Stylist, error)
		Update(ctx context.Context, stylist *model.Stylist) error
		Delete(ctx context.Context, id uuid.UUID) error
		ListBySalon(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]*model.Stylist, error)
	}

	AvailabilityRepository interface {
		Create(ctx context.Context, slot *model.AvailabilitySlot) error
		Get(ctx context.Context, id uuid.UUID) (*model.AvailabilitySlot, error)
		Delete(ctx context.Context, id uuid.UUID) error
		ListByStylist(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]*model.AvailabilitySlot, error)

		// Transaction-scoped helpers used by the booking engine.
		FindBookedOverlappingTx(ctx context.Context, tx *sqlx.Tx, stylistID uuid.UUID, start, end time.Time) (*model.AvailabilitySlot, error)
		FindCoveringFreeSlotTx(ctx context.Context, tx *sqlx.Tx, stylistID uuid.UUID, start, end time.Time) (*model.AvailabilitySlot, error)
		SetBookedTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, booked bool) error
	}

	BookingRepository interface {
		WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error
		CreateTx(ctx context.Context, tx *sqlx.Tx, booking *model.Booking) error
		Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
		UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status model.BookingStatus) error
		List(ctx context.Context, filters *model.BookingFilters) ([]*model.Booking, error)
		FindConflictingTx(ctx context.Context, tx *sqlx.Tx, salonID uuid.UUID, stylistID *uuid.UUID, start, end time.Time) (*model.Booking, error)
	}

	PaymentRepository interface {
		Create(ctx context.Context, payment *model.Payment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Payment, error)
		GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Payment, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.PaymentStatus) error
	}

	ReviewRepository interface {
		Create(ctx context.Context, review *model.Review) error
		GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Review, error)
		ListBySalon(ctx context.Context, salonID uuid.UUID) ([]*model.Review, error)
		SalonRating(ctx context.Context, salonID uuid.UUID) (*model.SalonRating, error)
	}

	OutboxRepository interface {
		CreateTx(ctx context.Context, tx *sqlx.Tx, event *model.OutboxEvent) error
		GetPendingWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errMsg *string) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
