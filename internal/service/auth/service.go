package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/model"
	"github.com/kenemosam/saluni/internal/repository"
	"github.com/kenemosam/saluni/pkg/auth"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
	"github.com/kenemosam/saluni/pkg/security"
	"github.com/kenemosam/saluni/pkg/validator"
)

type Service struct {
	customers repository.CustomerRepository
	jwt       auth.JWTService
}

func NewService(customers repository.CustomerRepository, jwt auth.JWTService) *Service {
	return &Service{customers: customers, jwt: jwt}
}

// Register creates a customer account keyed by phone number. The phone is
// the login identifier and must be unique.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Customer, error) {
	if !validator.ValidPhone(req.Phone) {
		return nil, apperrors.Validation("phone number must be 9 to 15 digits, optionally prefixed with +", nil)
	}

	if existing, err := s.customers.GetByPhone(ctx, req.Phone); err == nil && existing != nil {
		return nil, apperrors.Conflict("phone number is already registered", nil)
	} else if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	customer := &model.Customer{
		Base:         model.Base{ID: uuid.New()},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Login verifies the phone and password pair and issues a token pair.
// Unknown phone and wrong password return the same generic error.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	customer, err := s.customers.GetByPhone(ctx, req.Phone)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Authentication("invalid phone number or password", nil)
		}
		return nil, err
	}

	if !security.CheckPassword(req.Password, customer.PasswordHash) {
		return nil, apperrors.Authentication("invalid phone number or password", nil)
	}

	now := time.Now()
	customer.LastLoginAt = &now
	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}

	return s.issueTokens(customer)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.Authentication("invalid refresh token", err)
	}

	customer, err := s.customers.Get(ctx, claims.CustomerID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Authentication("invalid refresh token", nil)
		}
		return nil, err
	}

	return s.issueTokens(customer)
}

// Profile returns the authenticated customer's account.
func (s *Service) Profile(ctx context.Context, customerID uuid.UUID) (*model.Customer, error) {
	return s.customers.Get(ctx, customerID)
}

func (s *Service) issueTokens(customer *model.Customer) (*model.TokenResponse, error) {
	access, err := s.jwt.GenerateAccessToken(customer)
	if err != nil {
		return nil, apperrors.Internal("failed to generate access token", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(customer)
	if err != nil {
		return nil, apperrors.Internal("failed to generate refresh token", err)
	}

	return &model.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwt.AccessTokenTTL().Seconds()),
	}, nil
}
