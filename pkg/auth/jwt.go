package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/model"
)

type JWTService interface {
	GenerateAccessToken(customer *model.Customer) (string, error)
	GenerateRefreshToken(customer *model.Customer) (string, error)
	ValidateToken(token string) (*model.TokenClaims, error)
	ValidateRefreshToken(token string) (*model.TokenClaims, error)
	AccessTokenTTL() time.Duration
}

type JWTConfig struct {
	Secret             string
	RefreshSecret      string
	ExpiryHours        int
	RefreshExpiryHours int
}

type jwtService struct {
	cfg JWTConfig
}

func NewJWTService(cfg JWTConfig) JWTService {
	return &jwtService{cfg: cfg}
}

func (s *jwtService) GenerateAccessToken(customer *model.Customer) (string, error) {
	return s.sign(customer, s.cfg.Secret, time.Duration(s.cfg.ExpiryHours)*time.Hour)
}

func (s *jwtService) GenerateRefreshToken(customer *model.Customer) (string, error) {
	return s.sign(customer, s.cfg.RefreshSecret, time.Duration(s.cfg.RefreshExpiryHours)*time.Hour)
}

func (s *jwtService) ValidateToken(token string) (*model.TokenClaims, error) {
	return s.parse(token, s.cfg.Secret)
}

func (s *jwtService) ValidateRefreshToken(token string) (*model.TokenClaims, error) {
	return s.parse(token, s.cfg.RefreshSecret)
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return time.Duration(s.cfg.ExpiryHours) * time.Hour
}

func (s *jwtService) sign(customer *model.Customer, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"customer_id": customer.ID.String(),
		"phone":       customer.Phone,
		"role":        string(customer.Role),
		"iat":         now.Unix(),
		"exp":         now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) parse(tokenStr, secret string) (*model.TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	rawID, ok := claims["customer_id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	customerID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID in token")
	}

	phone, _ := claims["phone"].(string)
	role, _ := claims["role"].(string)

	return &model.TokenClaims{
		CustomerID: customerID,
		Phone:      phone,
		Role:       model.Role(role),
	}, nil
}
