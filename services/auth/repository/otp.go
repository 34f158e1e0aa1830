package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/shopauth/shopauth/internal/pkg/constants"
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/services/auth"
)

// CreateOTP stores an OTP record keyed by normalized phone, overwriting any
// prior record for that phone. The redis TTL is set to twice the validity
// window: an expired record stays observable long enough to be reported as
// expired rather than missing, and redis reclaims it afterwards.
func (r *AuthRepo) CreateOTP(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAuthOTP, otp.Phone)
	ttl := 2 * otp.ExpiresAt.Sub(otp.CreatedAt)
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// GetOTP retrieves the live OTP record for a normalized phone
func (r *AuthRepo) GetOTP(ctx context.Context, phone string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, phone)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return nil, auth.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// DeleteOTP removes the OTP record for a normalized phone
func (r *AuthRepo) DeleteOTP(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyAuthOTP, phone)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}

	return nil
}
