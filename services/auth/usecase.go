package auth

import (
	"context"

	"github.com/shopauth/shopauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/shopauth/shopauth/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// handle OTP
	GenerateOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)

	// handle session
	GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error)
}
