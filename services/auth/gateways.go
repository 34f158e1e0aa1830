package auth

import (
	"context"

	"github.com/shopauth/shopauth/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/shopauth/shopauth/services/auth MessagingGW,CommerceGW,EventGW

// MessagingGW dispatches one-time passcodes through the template-message provider
type MessagingGW interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// CommerceGW exposes the commerce platform's customer endpoints.
// CreateCustomer returns ErrPhoneTaken when the platform reports the phone
// as already claimed by an existing customer.
type CommerceGW interface {
	SearchCustomers(ctx context.Context, query string) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, input *models.CustomerInput) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
}

// EventGW publishes authentication events for downstream consumers
type EventGW interface {
	PublishLoginEvent(ctx context.Context, event *models.LoginEvent) error
}
