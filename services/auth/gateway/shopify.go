package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	httpclient "github.com/shopauth/shopauth/internal/pkg/http"
	"github.com/shopauth/shopauth/internal/pkg/logger"
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/services/auth"
)

const accessTokenHeader = "X-Shopify-Access-Token"

// ShopifyGateway implements the commerce platform operations against the
// Shopify Admin REST API
type ShopifyGateway struct {
	client *httpclient.AccessTokenClient
}

// NewShopifyGateway creates a new Shopify gateway
func NewShopifyGateway(cfg models.ShopifyConfig) *ShopifyGateway {
	baseURL := fmt.Sprintf("https://%s/admin/api/%s", cfg.StoreHost, cfg.APIVersion)
	return &ShopifyGateway{
		client: httpclient.NewAccessTokenClient(baseURL, accessTokenHeader, cfg.AccessToken, "shopify"),
	}
}

// NewShopifyGatewayWithBaseURL creates a gateway against an explicit base URL.
// Used by tests to point at a local server.
func NewShopifyGatewayWithBaseURL(baseURL, token string) *ShopifyGateway {
	return &ShopifyGateway{
		client: httpclient.NewAccessTokenClient(baseURL, accessTokenHeader, token, "shopify"),
	}
}

type customersEnvelope struct {
	Customers []models.Customer `json:"customers"`
}

type customerEnvelope struct {
	Customer models.Customer `json:"customer"`
}

type createCustomerRequest struct {
	Customer models.CustomerInput `json:"customer"`
}

// SearchCustomers runs an exact-match query against the customer search endpoint,
// e.g. "email:628123@whatsapp.login" or "phone:+628123456789"
func (g *ShopifyGateway) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	endpoint := fmt.Sprintf("/customers/search.json?query=%s", url.QueryEscape(query))

	var envelope customersEnvelope
	if err := g.client.GetJSON(ctx, endpoint, &envelope); err != nil {
		return nil, g.translate(err, "customer search")
	}

	return envelope.Customers, nil
}

// CreateCustomer requests creation of a customer record. A duplicate-phone
// rejection from Shopify is reported as ErrPhoneTaken so the resolver can
// fall back to listing instead of surfacing the conflict.
func (g *ShopifyGateway) CreateCustomer(ctx context.Context, input *models.CustomerInput) (*models.Customer, error) {
	var envelope customerEnvelope
	err := g.client.PostJSON(ctx, "/customers.json", createCustomerRequest{Customer: *input}, &envelope)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnprocessableEntity && isPhoneTaken(httpErr.Body) {
			logger.Warn("Customer creation rejected, phone already claimed",
				logger.String("phone", input.Phone))
			return nil, auth.ErrPhoneTaken
		}
		return nil, g.translate(err, "customer creation")
	}

	return &envelope.Customer, nil
}

// ListCustomers fetches the customer listing used by the conflict fallback
func (g *ShopifyGateway) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var envelope customersEnvelope
	if err := g.client.GetJSON(ctx, "/customers.json", &envelope); err != nil {
		return nil, g.translate(err, "customer listing")
	}

	return envelope.Customers, nil
}

// GetCustomer fetches a customer record by its Shopify-assigned id
func (g *ShopifyGateway) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	endpoint := fmt.Sprintf("/customers/%d.json", id)

	var envelope customerEnvelope
	if err := g.client.GetJSON(ctx, endpoint, &envelope); err != nil {
		return nil, g.translate(err, "customer fetch")
	}

	return &envelope.Customer, nil
}

// translate logs the raw upstream failure and collapses it to
// ErrUpstreamUnavailable for callers
func (g *ShopifyGateway) translate(err error, operation string) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		logger.Error("Shopify request rejected",
			logger.String("operation", operation),
			logger.Int("status_code", httpErr.StatusCode),
			logger.String("response", httpErr.Body))
	} else {
		logger.Error("Shopify request failed",
			logger.String("operation", operation),
			logger.Err(err))
	}

	return auth.ErrUpstreamUnavailable
}

// isPhoneTaken matches Shopify's duplicate-phone validation message
func isPhoneTaken(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "phone") && strings.Contains(lower, "taken")
}
