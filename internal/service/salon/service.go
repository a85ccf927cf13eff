package salon

import (
	"context"

	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/model"
	"github.com/kenemosam/saluni/internal/repository"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/validator"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Service struct {
	salons  repository.SalonRepository
	reviews repository.ReviewRepository
}

func NewService(salons repository.SalonRepository, reviews repository.ReviewRepository) *Service {
	return &Service{salons: salons, reviews: reviews}
}

// Register creates a salon with the minimal first-phase payload: name,
// phone and category. Location and contact details come later through
// CompleteProfile.
func (s *Service) Register(ctx context.Context, principal *model.TokenClaims, req *model.RegisterSalonRequest) (*model.Salon, error) {
	if !req.Category.Valid() {
		return nil, apperrors.Validationf("unknown salon category %q", req.Category)
	}
	if !validator.ValidPhone(req.Phone) {
		return nil, apperrors.Validation("phone number must be 9 to 15 digits, optionally prefixed with +", nil)
	}

	ownerID := principal.CustomerID.String()
	salon := &model.Salon{
		Base:     model.Base{ID: uuid.New()},
		OwnerID:  &ownerID,
		Name:     req.Name,
		Phone:    req.Phone,
		Category: req.Category,
	}

	if err := s.salons.Create(ctx, salon); err != nil {
		return nil, err
	}
	return salon, nil
}

// CompleteProfile is the second registration phase: it fills in the
// location, contact and opening-hours details. Region, district and
// street are mandatory here even though registration accepted none.
func (s *Service) CompleteProfile(ctx context.Context, principal *model.TokenClaims, id uuid.UUID, req *model.UpdateSalonProfileRequest) (*model.Salon, error) {
	salon, err := s.salons.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwner(principal, salon); err != nil {
		return nil, err
	}

	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}
	if req.Phone != nil && !validator.ValidPhone(*req.Phone) {
		return nil, apperrors.Validation("phone number must be 9 to 15 digits, optionally prefixed with +", nil)
	}

	salon.Region = req.Region
	salon.District = req.District
	salon.Street = req.Street
	if req.Description != nil {
		salon.Description = *req.Description
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Email != nil {
		salon.Email = req.Email
	}
	if req.Website != nil {
		salon.Website = req.Website
	}
	if req.Facebook != nil {
		salon.Facebook = req.Facebook
	}
	if req.Instagram != nil {
		salon.Instagram = req.Instagram
	}
	if req.Latitude != nil {
		salon.Latitude = req.Latitude
		salon.Longitude = req.Longitude
	}
	if req.OpeningHours != nil {
		salon.OpeningHours = req.OpeningHours
	}

	if err := s.salons.Update(ctx, salon); err != nil {
		return nil, err
	}
	return salon, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Salon, error) {
	return s.salons.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filters *model.SalonFilters) ([]*model.Salon, error) {
	if filters == nil {
		filters = &model.SalonFilters{}
	}
	if filters.Category != "" && !filters.Category.Valid() {
		return nil, apperrors.Validationf("unknown salon category %q", filters.Category)
	}
	return s.salons.List(ctx, filters)
}

// ListListings returns a page of the reduced public listing shape along
// with the total listing count for the filters. The pagination is
// normalized in place so callers see the effective page and size.
func (s *Service) ListListings(ctx context.Context, filters *model.SalonFilters, page *model.Pagination) ([]*model.SalonListing, int, error) {
	if filters == nil {
		filters = &model.SalonFilters{}
	}
	if page == nil {
		page = &model.Pagination{}
	}
	if filters.Category != "" && !filters.Category.Valid() {
		return nil, 0, apperrors.Validationf("unknown salon category %q", filters.Category)
	}

	if page.Page < 1 {
		page.Page = 1
	}
	if page.PageSize < 1 {
		page.PageSize = defaultPageSize
	}
	if page.PageSize > maxPageSize {
		page.PageSize = maxPageSize
	}
	filters.Limit = page.PageSize
	filters.Offset = (page.Page - 1) * page.PageSize

	total, err := s.salons.CountListings(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	listings, err := s.salons.ListListings(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (s *Service) Delete(ctx context.Context, principal *model.TokenClaims, id uuid.UUID) error {
	salon, err := s.salons.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeOwner(principal, salon); err != nil {
		return err
	}
	return s.salons.Delete(ctx, id)
}

// Rating aggregates the salon's review scores.
func (s *Service) Rating(ctx context.Context, id uuid.UUID) (*model.SalonRating, error) {
	if _, err := s.salons.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.reviews.SalonRating(ctx, id)
}

func (s *Service) authorizeOwner(principal *model.TokenClaims, salon *model.Salon) error {
	if principal.Role == model.RoleAdmin {
		return nil
	}
	if salon.OwnerID == nil || *salon.OwnerID != principal.CustomerID.String() {
		return apperrors.Validation("only the salon owner may modify the salon", nil)
	}
	return nil
}

// validateCoordinates enforces joint presence and bounds for GPS fields.
func validateCoordinates(lat, lon *float64) error {
	if lat == nil && lon == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return apperrors.Validation("latitude and longitude must be provided together", nil)
	}
	if !validator.ValidCoordinates(*lat, *lon) {
		return apperrors.Validation("coordinates out of range: latitude must be within [-90, 90] and longitude within [-180, 180]", nil)
	}
	return nil
}
