package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopauth/shopauth/internal/pkg/database"
	"github.com/shopauth/shopauth/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// Name returns the dependency name
func (r *RedisHealthChecker) Name() string { return "redis" }

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil // Skip if no Redis client
	}
	return r.client.Client.Ping(ctx).Err()
}

// NATSHealthChecker checks NATS connection health
type NATSHealthChecker struct {
	client *nats.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// Name returns the dependency name
func (n *NATSHealthChecker) Name() string { return "nats" }

// CheckHealth checks if NATS is connected
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil // Skip if no NATS client
	}

	conn := n.client.GetConn()
	if conn == nil || !conn.IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
	}

	return nil
}

// RegisterHealthEndpoints registers liveness and health endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...HealthChecker) {
	// Liveness probe
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, serviceName+" is running")
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		dependencies := make(map[string]string, len(checkers))
		healthy := true

		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				dependencies[checker.Name()] = err.Error()
				healthy = false
				continue
			}
			dependencies[checker.Name()] = "ok"
		}

		status := http.StatusOK
		statusText := "healthy"
		if !healthy {
			status = http.StatusServiceUnavailable
			statusText = "unhealthy"
		}

		return c.JSON(status, map[string]interface{}{
			"status":       statusText,
			"service":      serviceName,
			"timestamp":    time.Now(),
			"dependencies": dependencies,
		})
	})
}
