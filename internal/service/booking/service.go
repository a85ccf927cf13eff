package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kenemosam/saluni/internal/model"
	"github.com/kenemosam/saluni/internal/repository"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

// Notifier is the outbound notification hook invoked after a booking
// mutation commits. Failures are logged by the implementation, never
// propagated to the caller.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
	BookingStatusChanged(ctx context.Context, booking *model.Booking)
}

type Service struct {
	bookings repository.BookingRepository
	slots    repository.AvailabilityRepository
	services repository.ServiceRepository
	stylists repository.StylistRepository
	salons   repository.SalonRepository
	outbox   repository.OutboxRepository
	notifier Notifier
}

func NewService(
	bookings repository.BookingRepository,
	slots repository.AvailabilityRepository,
	services repository.ServiceRepository,
	stylists repository.StylistRepository,
	salons repository.SalonRepository,
	outbox repository.OutboxRepository,
	notifier Notifier,
) *Service {
	return &Service{
		bookings: bookings,
		slots:    slots,
		services: services,
		stylists: stylists,
		salons:   salons,
		outbox:   outbox,
		notifier: notifier,
	}
}

// resolveWindow derives the booking's half-open time window. When the
// caller supplies an explicit end it is trusted as-is, provided it falls
// after the start; otherwise the end is start plus the service duration.
func resolveWindow(start time.Time, explicitEnd *time.Time, svc *model.Service) (time.Time, error) {
	if start.IsZero() {
		return time.Time{}, apperrors.Validation("start time is required", nil)
	}

	if explicitEnd != nil {
		if !explicitEnd.After(start) {
			return time.Time{}, apperrors.Validation("end time must be after start time", nil)
		}
		return *explicitEnd, nil
	}

	if svc.DurationMinutes <= 0 {
		return time.Time{}, apperrors.Validationf("service %s has no valid duration", svc.Name)
	}

	return start.Add(time.Duration(svc.DurationMinutes) * time.Minute), nil
}

// CreateBooking validates the request against the salon's catalog and the
// stylist's schedule, then persists the booking in a single transaction so
// that two concurrent overlapping requests cannot both succeed.
func (s *Service) CreateBooking(ctx context.Context, principal *model.TokenClaims, req *model.CreateBookingRequest) (*model.Booking, error) {
	salon, err := s.salons.Get(ctx, req.SalonID)
	if err != nil {
		return nil, err
	}

	svc, err := s.services.Get(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.SalonID != salon.ID {
		return nil, apperrors.Validation("service does not belong to the selected salon", nil)
	}
	if !svc.Active {
		return nil, apperrors.Validation("service is not currently offered", nil)
	}

	if req.StylistID != nil {
		stylist, err := s.stylists.Get(ctx, *req.StylistID)
		if err != nil {
			return nil, err
		}
		if stylist.SalonID != salon.ID {
			return nil, apperrors.Validation("stylist does not work at the selected salon", nil)
		}
		if !stylist.IsActive {
			return nil, apperrors.Validation("stylist is not currently active", nil)
		}
	}

	end, err := resolveWindow(req.StartTime, req.EndTime, svc)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		Base:       model.Base{ID: uuid.New()},
		CustomerID: principal.CustomerID,
		SalonID:    salon.ID,
		ServiceID:  svc.ID,
		StylistID:  req.StylistID,
		StartTime:  req.StartTime,
		EndTime:    end,
		Status:     model.BookingStatusPending,
		Notes:      req.Notes,
	}

	err = s.bookings.WithTx(ctx, func(tx *sqlx.Tx) error {
		conflict, err := s.bookings.FindConflictingTx(ctx, tx, booking.SalonID, booking.StylistID, booking.StartTime, booking.EndTime)
		if err != nil {
			return err
		}
		if conflict != nil {
			return apperrors.Conflict(
				fmt.Sprintf("requested window overlaps booking %s", conflict.ID), nil)
		}

		if booking.StylistID != nil {
			busy, err := s.slots.FindBookedOverlappingTx(ctx, tx, *booking.StylistID, booking.StartTime, booking.EndTime)
			if err != nil {
				return err
			}
			if busy != nil {
				return apperrors.Conflict(
					fmt.Sprintf("requested window overlaps booked slot %s", busy.ID), nil)
			}

			free, err := s.slots.FindCoveringFreeSlotTx(ctx, tx, *booking.StylistID, booking.StartTime, booking.EndTime)
			if err != nil {
				return err
			}
			if free != nil {
				if err := s.slots.SetBookedTx(ctx, tx, free.ID, true); err != nil {
					return err
				}
				booking.SlotID = &free.ID
			}
		}

		if err := s.bookings.CreateTx(ctx, tx, booking); err != nil {
			return err
		}

		return s.writeEventTx(ctx, tx, model.EventBookingCreated, booking)
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.BookingCreated(ctx, booking)
	}

	return booking, nil
}

// GetBooking fetches a booking. Customers can only see their own.
func (s *Service) GetBooking(ctx context.Context, principal *model.TokenClaims, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if principal.Role == model.RoleCustomer && booking.CustomerID != principal.CustomerID {
		return nil, apperrors.NotFound("booking", nil)
	}

	return booking, nil
}

// ListBookings lists bookings matching the filters. Customers are always
// scoped to their own bookings regardless of the requested filter.
func (s *Service) ListBookings(ctx context.Context, principal *model.TokenClaims, filters *model.BookingFilters) ([]*model.Booking, error) {
	if filters == nil {
		filters = &model.BookingFilters{}
	}
	if principal.Role == model.RoleCustomer {
		filters.CustomerID = principal.CustomerID
	}

	bookings, err := s.bookings.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Transition moves a booking along the status state machine. Cancelling
// releases any consumed availability slot; the payment record, if one
// exists, is never touched.
func (s *Service) Transition(ctx context.Context, principal *model.TokenClaims, id uuid.UUID, next model.BookingStatus) (*model.Booking, error) {
	if !next.Valid() {
		return nil, apperrors.Validationf("unknown booking status %q", next)
	}

	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeTransition(principal, booking, next); err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, apperrors.InvalidTransition(string(booking.Status), string(next))
	}

	err = s.bookings.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.bookings.UpdateStatusTx(ctx, tx, booking.ID, next); err != nil {
			return err
		}

		if next == model.BookingStatusCancelled && booking.SlotID != nil {
			if err := s.slots.SetBookedTx(ctx, tx, *booking.SlotID, false); err != nil {
				return err
			}
		}

		booking.Status = next
		return s.writeEventTx(ctx, tx, model.EventBookingStatusChanged, booking)
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.BookingStatusChanged(ctx, booking)
	}

	return booking, nil
}

// Cancel is a convenience wrapper for the cancellation transition.
func (s *Service) Cancel(ctx context.Context, principal *model.TokenClaims, id uuid.UUID) (*model.Booking, error) {
	return s.Transition(ctx, principal, id, model.BookingStatusCancelled)
}

// GetStylistAvailability returns the stylist's free slots for the given
// day, excluding any window that overlaps a non-cancelled booking.
func (s *Service) GetStylistAvailability(ctx context.Context, stylistID uuid.UUID, date time.Time) ([]model.TimeSlot, error) {
	if _, err := s.stylists.Get(ctx, stylistID); err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	slots, err := s.slots.ListByStylist(ctx, stylistID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability slots: %w", err)
	}

	bookings, err := s.bookings.List(ctx, &model.BookingFilters{
		StylistID: stylistID,
		StartDate: dayStart,
		EndDate:   dayEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	var free []model.TimeSlot
	for _, slot := range slots {
		if slot.IsBooked {
			continue
		}
		taken := false
		for _, b := range bookings {
			if b.Status == model.BookingStatusCancelled {
				continue
			}
			if model.Overlaps(slot.Start, slot.End, b.StartTime, b.EndTime) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, model.TimeSlot{Start: slot.Start, End: slot.End})
		}
	}

	return free, nil
}

// authorizeTransition enforces who may move a booking: customers can only
// cancel their own bookings, staff roles can apply any legal transition.
func (s *Service) authorizeTransition(principal *model.TokenClaims, booking *model.Booking, next model.BookingStatus) error {
	if principal.Role != model.RoleCustomer {
		return nil
	}

	if booking.CustomerID != principal.CustomerID {
		return apperrors.NotFound("booking", nil)
	}
	if next != model.BookingStatusCancelled {
		return apperrors.Validation("customers may only cancel their bookings", nil)
	}
	return nil
}

func (s *Service) writeEventTx(ctx context.Context, tx *sqlx.Tx, eventType string, booking *model.Booking) error {
	payload, err := json.Marshal(&model.BookingEventPayload{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		SalonID:    booking.SalonID,
		Status:     booking.Status,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	return s.outbox.CreateTx(ctx, tx, &model.OutboxEvent{
		EventType: eventType,
		Payload:   payload,
	})
}
