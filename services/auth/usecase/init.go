package usecase

import (
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/services/auth"
)

// AuthUC implements the authentication usecase
type AuthUC struct {
	otpRepo     auth.OTPRepo
	messagingGW auth.MessagingGW
	commerceGW  auth.CommerceGW
	eventGW     auth.EventGW
	cfg         *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	otpRepo auth.OTPRepo,
	messagingGW auth.MessagingGW,
	commerceGW auth.CommerceGW,
	eventGW auth.EventGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		otpRepo:     otpRepo,
		messagingGW: messagingGW,
		commerceGW:  commerceGW,
		eventGW:     eventGW,
		cfg:         cfg,
	}
}
