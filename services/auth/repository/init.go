package repository

import (
	"github.com/shopauth/shopauth/internal/pkg/database"
	"github.com/shopauth/shopauth/internal/pkg/models"
)

// AuthRepo handles OTP storage for the auth service
type AuthRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}
