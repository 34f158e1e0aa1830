package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/shopauth/shopauth/internal/pkg/logger"
)

// AccessTokenClient is an HTTP client that authenticates every request with
// a static access token header
type AccessTokenClient struct {
	client      *nethttp.Client
	token       string
	tokenHeader string
	baseURL     string
	serviceName string
}

// NewAccessTokenClient creates a new HTTP client with access token authentication
func NewAccessTokenClient(baseURL, tokenHeader, token, serviceName string) *AccessTokenClient {
	return &AccessTokenClient{
		client: &nethttp.Client{
			Timeout: DefaultTimeout,
		},
		token:       token,
		tokenHeader: tokenHeader,
		baseURL:     baseURL,
		serviceName: serviceName,
	}
}

// SetTimeout sets the HTTP client timeout
func (c *AccessTokenClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *AccessTokenClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newHTTPError(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// PostJSON performs a POST request with a JSON body and decodes the JSON response
func (c *AccessTokenClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newHTTPError(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// doRequest performs the actual HTTP request with access token authentication
func (c *AccessTokenClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.token != "" {
		req.Header.Set(c.tokenHeader, c.token)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName))

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}
