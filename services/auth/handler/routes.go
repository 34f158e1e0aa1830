package handler

import (
	nethttp "net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/shopauth/shopauth/internal/pkg/jwt"
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for session-gated routes
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(nethttp.StatusUnauthorized, map[string]interface{}{
				"success": false,
				"error":   "Invalid session",
				"code":    nethttp.StatusUnauthorized,
			})
		},
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from the Authorization header to
			// extract session claims for the handlers
			authHeader := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString := strings.TrimPrefix(authHeader, "Bearer ")
				claims, err := jwtpkg.ValidateToken(tokenString, h.cfg.JWT.Secret)
				if err != nil {
					return
				}
				if customerID, err := jwtpkg.CustomerIDFromClaims(claims); err == nil {
					c.Set("customer_id", customerID)
				}
				if phone, ok := claims["phone"].(string); ok {
					c.Set("phone", phone)
				}
			}
		},
	})
}

// RegisterRoutes registers the service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/send-otp", h.authHandler.SendOTP)
	e.POST("/verify-otp", h.authHandler.VerifyOTP)
	e.GET("/me", h.authHandler.Me, h.GetJWTMiddleware())
}
