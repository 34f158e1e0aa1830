package gateway

import (
	"context"
	"io"
	"net/url"
	"time"

	httpclient "github.com/shopauth/shopauth/internal/pkg/http"
	"github.com/shopauth/shopauth/internal/pkg/logger"
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/services/auth"
)

// WhatsAppGateway dispatches one-time passcodes through the WhatsApp
// template-message API
type WhatsAppGateway struct {
	client *httpclient.Client
	cfg    models.WhatsAppConfig
}

// NewWhatsAppGateway creates a new WhatsApp gateway
func NewWhatsAppGateway(cfg models.WhatsAppConfig) *WhatsAppGateway {
	return &WhatsAppGateway{
		client: httpclient.NewClient(cfg.APIURL, 10*time.Second),
		cfg:    cfg,
	}
}

// SendOTP sends the passcode to the phone as a template-message variable.
// The provider expects a form-encoded POST; any transport or upstream
// failure collapses to ErrDeliveryFailed, with the raw response logged
// server-side only.
func (g *WhatsAppGateway) SendOTP(ctx context.Context, phone, code string) error {
	values := url.Values{}
	values.Set("apiToken", g.cfg.APIToken)
	values.Set("phone_number_id", g.cfg.PhoneNumberID)
	values.Set("template_id", g.cfg.TemplateID)
	values.Set("templateVariable-1-1", code)
	values.Set("phone_number", phone)

	resp, err := g.client.PostForm(ctx, values)
	if err != nil {
		logger.Error("WhatsApp dispatch failed",
			logger.String("phone", phone),
			logger.Err(err))
		return auth.ErrDeliveryFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Error("WhatsApp dispatch rejected",
			logger.String("phone", phone),
			logger.Int("status_code", resp.StatusCode),
			logger.String("response", string(body)))
		return auth.ErrDeliveryFailed
	}

	logger.Info("OTP dispatched via WhatsApp",
		logger.String("phone", phone))

	return nil
}
