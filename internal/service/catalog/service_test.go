package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kenemosam/saluni/internal/model"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

type mockSalonRepo struct {
	mock.Mock
}

func (m *mockSalonRepo) Create(ctx context.Context, salon *model.Salon) error {
	args := m.Called(ctx, salon)
	return args.Error(0)
}

func (m *mockSalonRepo) Get(ctx context.Context, id uuid.UUID) (*model.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Salon), args.Error(1)
}

func (m *mockSalonRepo) Update(ctx context.Context, salon *model.Salon) error {
	args := m.Called(ctx, salon)
	return args.Error(0)
}

func (m *mockSalonRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSalonRepo) List(ctx context.Context, filters *model.SalonFilters) ([]*model.Salon, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Salon), args.Error(1)
}

func (m *mockSalonRepo) ListListings(ctx context.Context, filters *model.SalonFilters) ([]*model.SalonListing, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SalonListing), args.Error(1)
}

func (m *mockSalonRepo) CountListings(ctx context.Context, filters *model.SalonFilters) (int, error) {
	args := m.Called(ctx, filters)
	return args.Int(0), args.Error(1)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, service *model.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *mockServiceRepo) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *mockServiceRepo) GetByName(ctx context.Context, salonID uuid.UUID, name string) (*model.Service, error) {
	args := m.Called(ctx, salonID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *mockServiceRepo) Update(ctx context.Context, service *model.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *mockServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockServiceRepo) ListBySalon(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]*model.Service, error) {
	args := m.Called(ctx, salonID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Service), args.Error(1)
}

type mockStylistRepo struct {
	mock.Mock
}

func (m *mockStylistRepo) Create(ctx context.Context, stylist *model.Stylist) error {
	args := m.Called(ctx, stylist)
	return args.Error(0)
}

func (m *mockStylistRepo) Get(ctx context.Context, id uuid.UUID) (*model.Stylist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stylist), args.Error(1)
}

func (m *mockStylistRepo) Update(ctx context.Context, stylist *model.Stylist) error {
	args := m.Called(ctx, stylist)
	return args.Error(0)
}

func (m *mockStylistRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStylistRepo) ListBySalon(ctx context.Context, salonID uuid.UUID, activeOnly bool) ([]*model.Stylist, error) {
	args := m.Called(ctx, salonID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Stylist), args.Error(1)
}

type mockAvailabilityRepo struct {
	mock.Mock
}

func (m *mockAvailabilityRepo) Create(ctx context.Context, slot *model.AvailabilitySlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *mockAvailabilityRepo) Get(ctx context.Context, id uuid.UUID) (*model.AvailabilitySlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AvailabilitySlot), args.Error(1)
}

func (m *mockAvailabilityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAvailabilityRepo) ListByStylist(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]*model.AvailabilitySlot, error) {
	args := m.Called(ctx, stylistID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AvailabilitySlot), args.Error(1)
}

func (m *mockAvailabilityRepo) FindBookedOverlappingTx(ctx context.Context, tx *sqlx.Tx, stylistID uuid.UUID, start, end time.Time) (*model.AvailabilitySlot, error) {
	args := m.Called(ctx, tx, stylistID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AvailabilitySlot), args.Error(1)
}

func (m *mockAvailabilityRepo) FindCoveringFreeSlotTx(ctx context.Context, tx *sqlx.Tx, stylistID uuid.UUID, start, end time.Time) (*model.AvailabilitySlot, error) {
	args := m.Called(ctx, tx, stylistID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AvailabilitySlot), args.Error(1)
}

func (m *mockAvailabilityRepo) SetBookedTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, booked bool) error {
	args := m.Called(ctx, tx, id, booked)
	return args.Error(0)
}

func newTestService() (*Service, *mockSalonRepo, *mockServiceRepo, *mockStylistRepo, *mockAvailabilityRepo) {
	salons := new(mockSalonRepo)
	services := new(mockServiceRepo)
	stylists := new(mockStylistRepo)
	slots := new(mockAvailabilityRepo)
	return NewService(salons, services, stylists, slots), salons, services, stylists, slots
}

func TestCreateServiceEnforcesNameUniquenessPerSalon(t *testing.T) {
	svc, salons, services, _, _ := newTestService()
	salon := &model.Salon{Base: model.Base{ID: uuid.New()}}
	existing := &model.Service{Base: model.Base{ID: uuid.New()}, SalonID: salon.ID, Name: "Box Braids"}

	salons.On("Get", mock.Anything, salon.ID).Return(salon, nil)
	services.On("GetByName", mock.Anything, salon.ID, "Box Braids").Return(existing, nil)

	_, err := svc.CreateService(context.Background(), salon.ID, &model.CreateServiceRequest{
		Name:            "Box Braids",
		Price:           25000,
		DurationMinutes: 45,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	services.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateServiceDefaultsToActive(t *testing.T) {
	svc, salons, services, _, _ := newTestService()
	salon := &model.Salon{Base: model.Base{ID: uuid.New()}}

	salons.On("Get", mock.Anything, salon.ID).Return(salon, nil)
	services.On("GetByName", mock.Anything, salon.ID, "Box Braids").Return(nil, apperrors.NotFound("service", nil))
	services.On("Create", mock.Anything, mock.AnythingOfType("*model.Service")).Return(nil)

	created, err := svc.CreateService(context.Background(), salon.ID, &model.CreateServiceRequest{
		Name:            "Box Braids",
		Price:           25000,
		DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, 45, created.DurationMinutes)
}

func TestUpdateServiceRejectsRenameCollision(t *testing.T) {
	svc, _, services, _, _ := newTestService()
	salonID := uuid.New()
	current := &model.Service{Base: model.Base{ID: uuid.New()}, SalonID: salonID, Name: "Trim"}
	other := &model.Service{Base: model.Base{ID: uuid.New()}, SalonID: salonID, Name: "Box Braids"}

	newName := "Box Braids"
	services.On("Get", mock.Anything, current.ID).Return(current, nil)
	services.On("GetByName", mock.Anything, salonID, newName).Return(other, nil)

	_, err := svc.UpdateService(context.Background(), current.ID, &model.UpdateServiceRequest{Name: &newName})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCreateSlotRejectsInvertedWindow(t *testing.T) {
	svc, _, _, stylists, slots := newTestService()
	stylist := &model.Stylist{Base: model.Base{ID: uuid.New()}, IsActive: true}

	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	stylists.On("Get", mock.Anything, stylist.ID).Return(stylist, nil)

	_, err := svc.CreateSlot(context.Background(), stylist.ID, &model.CreateSlotRequest{
		Start: start,
		End:   start.Add(-time.Hour),
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	slots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteSlotRefusesBookedSlot(t *testing.T) {
	svc, _, _, _, slots := newTestService()
	slot := &model.AvailabilitySlot{Base: model.Base{ID: uuid.New()}, IsBooked: true}

	slots.On("Get", mock.Anything, slot.ID).Return(slot, nil)

	err := svc.DeleteSlot(context.Background(), slot.ID)

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	slots.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
