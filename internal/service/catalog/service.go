package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/model"
	"github.com/kenemosam/saluni/internal/repository"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

// Service manages a salon's catalog: the services offered, the stylists
// performing them and the stylists' availability slots.
type Service struct {
	salons   repository.SalonRepository
	services repository.ServiceRepository
	stylists repository.StylistRepository
	slots    repository.AvailabilityRepository
}

func NewService(
	salons repository.SalonRepository,
	services repository.ServiceRepository,
	stylists repository.StylistRepository,
	slots repository.AvailabilityRepository,
) *Service {
	return &Service{salons: salons, services: services, stylists: stylists, slots: slots}
}

// CreateService adds an offering. The (salon, name) pair must be unique.
func (s *Service) CreateService(ctx context.Context, salonID uuid.UUID, req *model.CreateServiceRequest) (*model.Service, error) {
	if _, err := s.salons.Get(ctx, salonID); err != nil {
		return nil, err
	}

	if existing, err := s.services.GetByName(ctx, salonID, req.Name); err == nil && existing != nil {
		return nil, apperrors.Conflict("a service with this name already exists for the salon", nil)
	} else if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	svc := &model.Service{
		Base:            model.Base{ID: uuid.New()},
		SalonID:         salonID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Active:          true,
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.services.Get(ctx, id)
}

func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req *model.UpdateServiceRequest) (*model.Service, error) {
	svc, err := s.services.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != svc.Name {
		if existing, err := s.services.GetByName(ctx, svc.SalonID, *req.Name); err == nil && existing != nil {
			return nil, apperrors.Conflict("a service with this name already exists for the salon", nil)
		} else if err != nil && !apperrors.IsNotFound(err) {
			return nil, err
		}
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperrors.Validation("price must not be negative", nil)
		}
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, apperrors.Validation("duration must be positive", nil)
		}
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id uuid.UUID) error {
	return s.services.Delete(ctx, id)
}

func (s *Service) ListServices(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]*model.Service, error) {
	if _, err := s.salons.Get(ctx, salonID); err != nil {
		return nil, err
	}
	return s.services.ListBySalon(ctx, salonID, activeOnly)
}

func (s *Service) CreateStylist(ctx context.Context, salonID uuid.UUID, req *model.CreateStylistRequest) (*model.Stylist, error) {
	if _, err := s.salons.Get(ctx, salonID); err != nil {
		return nil, err
	}

	stylist := &model.Stylist{
		Base:        model.Base{ID: uuid.New()},
		SalonID:     salonID,
		Name:        req.Name,
		Bio:         req.Bio,
		Specialties: req.Specialties,
		IsActive:    true,
		PhotoURL:    req.PhotoURL,
	}

	if err := s.stylists.Create(ctx, stylist); err != nil {
		return nil, err
	}
	return stylist, nil
}

func (s *Service) GetStylist(ctx context.Context, id uuid.UUID) (*model.Stylist, error) {
	return s.stylists.Get(ctx, id)
}

func (s *Service) UpdateStylist(ctx context.Context, id uuid.UUID, req *model.UpdateStylistRequest) (*model.Stylist, error) {
	stylist, err := s.stylists.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		stylist.Name = *req.Name
	}
	if req.Bio != nil {
		stylist.Bio = *req.Bio
	}
	if req.Specialties != nil {
		stylist.Specialties = *req.Specialties
	}
	if req.IsActive != nil {
		stylist.IsActive = *req.IsActive
	}
	if req.PhotoURL != nil {
		stylist.PhotoURL = req.PhotoURL
	}

	if err := s.stylists.Update(ctx, stylist); err != nil {
		return nil, err
	}
	return stylist, nil
}

func (s *Service) DeleteStylist(ctx context.Context, id uuid.UUID) error {
	return s.stylists.Delete(ctx, id)
}

func (s *Service) ListStylists(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]*model.Stylist, error) {
	if _, err := s.salons.Get(ctx, salonID); err != nil {
		return nil, err
	}
	return s.stylists.ListBySalon(ctx, salonID, activeOnly)
}

// CreateSlot records an explicit availability window for a stylist.
func (s *Service) CreateSlot(ctx context.Context, stylistID uuid.UUID, req *model.CreateSlotRequest) (*model.AvailabilitySlot, error) {
	if _, err := s.stylists.Get(ctx, stylistID); err != nil {
		return nil, err
	}
	if !req.End.After(req.Start) {
		return nil, apperrors.Validation("slot end must be after its start", nil)
	}

	slot := &model.AvailabilitySlot{
		Base:      model.Base{ID: uuid.New()},
		StylistID: stylistID,
		Start:     req.Start,
		End:       req.End,
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) DeleteSlot(ctx context.Context, id uuid.UUID) error {
	slot, err := s.slots.Get(ctx, id)
	if err != nil {
		return err
	}
	if slot.IsBooked {
		return apperrors.Conflict("cannot delete a booked slot", nil)
	}
	return s.slots.Delete(ctx, id)
}

func (s *Service) ListSlots(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]*model.AvailabilitySlot, error) {
	if _, err := s.stylists.Get(ctx, stylistID); err != nil {
		return nil, err
	}
	return s.slots.ListByStylist(ctx, stylistID, from, to)
}
