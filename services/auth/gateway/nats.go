package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopauth/shopauth/internal/pkg/constants"
	"github.com/shopauth/shopauth/internal/pkg/logger"
	"github.com/shopauth/shopauth/internal/pkg/models"
	natspkg "github.com/shopauth/shopauth/internal/pkg/nats"
)

// NATSGateway publishes authentication events for downstream consumers
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishLoginEvent publishes a login event after successful verification
func (g *NATSGateway) PublishLoginEvent(ctx context.Context, event *models.LoginEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal login event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectAuthLogin, data); err != nil {
		logger.Error("Failed to publish login event",
			logger.Int64("customer_id", event.CustomerID),
			logger.Err(err))
		return fmt.Errorf("failed to publish login event: %w", err)
	}

	logger.Info("Published login event",
		logger.Int64("customer_id", event.CustomerID),
		logger.String("phone", event.Phone))

	return nil
}
