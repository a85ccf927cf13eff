package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kenemosam/saluni/internal/model"
	apperrors "github.com/kenemosam/saluni/pkg/errors"
)

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `
		INSERT INTO customers (
			id, first_name, last_name, phone, password_hash, role,
			is_phone_verified, profile_image, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		customer.ID,
		customer.FirstName,
		customer.LastName,
		customer.Phone,
		customer.PasswordHash,
		customer.Role,
		customer.IsPhoneVerified,
		customer.ProfileImage,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, first_name, last_name, phone, password_hash, role,
			   is_phone_verified, profile_image, last_login_at, created_at, updated_at
		FROM customers
		WHERE id = $1
	`
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("customer", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	query := `
		SELECT id, first_name, last_name, phone, password_hash, role,
			   is_phone_verified, profile_image, last_login_at, created_at, updated_at
		FROM customers
		WHERE phone = $1
	`
	var customer model.Customer
	err := r.db.GetContext(ctx, &customer, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("customer", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by phone: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, role = $3, is_phone_verified = $4,
			profile_image = $5, last_login_at = $6, updated_at = $7
		WHERE id = $8
	`
	customer.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Role,
		customer.IsPhoneVerified,
		customer.ProfileImage,
		customer.LastLoginAt,
		customer.UpdatedAt,
		customer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("customer", nil)
	}

	return nil
}
