package auth

import (
	"context"

	"github.com/shopauth/shopauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/shopauth/shopauth/services/auth OTPRepo

// OTPRepo represents the OTP store interface. At most one live record exists
// per normalized phone; CreateOTP supersedes any prior record for the phone.
type OTPRepo interface {
	CreateOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, phone string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, phone string) error
}
