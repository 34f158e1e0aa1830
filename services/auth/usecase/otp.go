package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	jwtpkg "github.com/shopauth/shopauth/internal/pkg/jwt"
	"github.com/shopauth/shopauth/internal/pkg/logger"
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/internal/utils"
	"github.com/shopauth/shopauth/services/auth"
)

// generateCode draws a uniform 6-digit code from [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// GenerateOTP generates a passcode for the given phone, stores it under the
// normalized phone (superseding any prior passcode), and dispatches it via
// the messaging provider. The stored record is intentionally not rolled back
// when dispatch fails: the caller re-invokes send-otp and the new record
// overwrites this one.
func (u *AuthUC) GenerateOTP(ctx context.Context, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return auth.ErrInvalidInput
	}

	normalized := utils.NormalizePhone(phone)
	if normalized == "" {
		return auth.ErrInvalidInput
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	now := time.Now()
	otp := &models.OTP{
		Phone:     normalized,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(u.cfg.OTP.ExpiryMinutes) * time.Minute),
	}

	if err := u.otpRepo.CreateOTP(ctx, otp); err != nil {
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	if err := u.messagingGW.SendOTP(ctx, normalized, code); err != nil {
		return auth.ErrDeliveryFailed
	}

	logger.Info("Generated OTP",
		logger.String("phone", normalized))

	return nil
}

// VerifyOTP validates a submitted passcode and, on success, resolves the
// customer identity and mints a session token. The passcode record is
// deleted as soon as it matches, before customer resolution: one-time use
// holds even when a later step fails, at the cost of requiring a fresh
// passcode after a failed resolution.
func (u *AuthUC) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	if strings.TrimSpace(phone) == "" || strings.TrimSpace(code) == "" {
		return nil, auth.ErrInvalidInput
	}

	normalized := utils.NormalizePhone(phone)
	if normalized == "" {
		return nil, auth.ErrInvalidInput
	}

	otp, err := u.otpRepo.GetOTP(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if otp.Expired(time.Now()) {
		return nil, auth.ErrOTPExpired
	}

	if otp.Code != code {
		// Record is kept so the caller may retry within the expiry window
		return nil, auth.ErrOTPMismatch
	}

	if err := u.otpRepo.DeleteOTP(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}

	customer, err := u.resolveCustomer(ctx, normalized)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := jwtpkg.GenerateToken(customer.ID, normalized, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// Login event is best-effort; a publish failure never fails the login
	if u.eventGW != nil {
		event := &models.LoginEvent{
			CustomerID: customer.ID,
			Phone:      normalized,
			Timestamp:  time.Now(),
		}
		if err := u.eventGW.PublishLoginEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish login event",
				logger.Int64("customer_id", customer.ID),
				logger.Err(err))
		}
	}

	return &models.AuthResponse{
		Token:      token,
		CustomerID: customer.ID,
		Phone:      normalized,
		ExpiresAt:  expiresAt,
	}, nil
}

// GetCustomer fetches the customer record bound to a validated session
func (u *AuthUC) GetCustomer(ctx context.Context, customerID int64) (*models.Customer, error) {
	return u.commerceGW.GetCustomer(ctx, customerID)
}
