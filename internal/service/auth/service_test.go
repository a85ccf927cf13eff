package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kenemosam/saluni/internal/model"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/security"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepo) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *mockCustomerRepo) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateAccessToken(customer *model.Customer) (string, error) {
	args := m.Called(customer)
	return args.String(0), args.Error(1)
}

func (m *mockJWT) GenerateRefreshToken(customer *model.Customer) (string, error) {
	args := m.Called(customer)
	return args.String(0), args.Error(1)
}

func (m *mockJWT) ValidateToken(token string) (*model.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenClaims), args.Error(1)
}

func (m *mockJWT) ValidateRefreshToken(token string) (*model.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenClaims), args.Error(1)
}

func (m *mockJWT) AccessTokenTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

func TestRegister(t *testing.T) {
	customers := new(mockCustomerRepo)
	svc := NewService(customers, new(mockJWT))

	customers.On("GetByPhone", mock.Anything, "+255712345678").Return(nil, apperrors.NotFound("customer", nil))
	customers.On("Create", mock.Anything, mock.AnythingOfType("*model.Customer")).Return(nil)

	customer, err := svc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Asha",
		Phone:     "+255712345678",
		Password:  "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, customer.Role)
	assert.NotEqual(t, "hunter2hunter2", customer.PasswordHash)
	assert.True(t, security.CheckPassword("hunter2hunter2", customer.PasswordHash))
}

func TestRegisterRejectsBadPhone(t *testing.T) {
	svc := NewService(new(mockCustomerRepo), new(mockJWT))

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Asha",
		Phone:     "12AB345",
		Password:  "hunter2hunter2",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	customers := new(mockCustomerRepo)
	svc := NewService(customers, new(mockJWT))

	existing := &model.Customer{Base: model.Base{ID: uuid.New()}, Phone: "+255712345678"}
	customers.On("GetByPhone", mock.Anything, "+255712345678").Return(existing, nil)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Asha",
		Phone:     "+255712345678",
		Password:  "hunter2hunter2",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	customers := new(mockCustomerRepo)
	jwt := new(mockJWT)
	svc := NewService(customers, jwt)

	hash, err := security.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	customer := &model.Customer{
		Base:         model.Base{ID: uuid.New()},
		Phone:        "+255712345678",
		PasswordHash: hash,
		Role:         model.RoleCustomer,
	}

	customers.On("GetByPhone", mock.Anything, customer.Phone).Return(customer, nil)
	customers.On("Update", mock.Anything, customer).Return(nil)
	jwt.On("GenerateAccessToken", customer).Return("access", nil)
	jwt.On("GenerateRefreshToken", customer).Return("refresh", nil)
	jwt.On("AccessTokenTTL").Return(24 * time.Hour)

	tokens, err := svc.Login(context.Background(), &model.LoginRequest{
		Phone:    customer.Phone,
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
	assert.Equal(t, int64(86400), tokens.ExpiresIn)
	assert.NotNil(t, customer.LastLoginAt)
}

func TestLoginSameErrorForUnknownPhoneAndWrongPassword(t *testing.T) {
	customers := new(mockCustomerRepo)
	svc := NewService(customers, new(mockJWT))

	hash, err := security.HashPassword("correct-password")
	require.NoError(t, err)
	customer := &model.Customer{
		Base:         model.Base{ID: uuid.New()},
		Phone:        "+255712345678",
		PasswordHash: hash,
	}

	customers.On("GetByPhone", mock.Anything, customer.Phone).Return(customer, nil)
	customers.On("GetByPhone", mock.Anything, "+255700000000").Return(nil, apperrors.NotFound("customer", nil))

	_, wrongPass := svc.Login(context.Background(), &model.LoginRequest{
		Phone:    customer.Phone,
		Password: "wrong-password",
	})
	_, unknownPhone := svc.Login(context.Background(), &model.LoginRequest{
		Phone:    "+255700000000",
		Password: "whatever-password",
	})

	require.Error(t, wrongPass)
	require.Error(t, unknownPhone)
	assert.True(t, apperrors.IsAuthentication(wrongPass))
	assert.True(t, apperrors.IsAuthentication(unknownPhone))
	assert.Equal(t, wrongPass.Error(), unknownPhone.Error())
}
