package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopauth/shopauth/internal/pkg/logger"
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/internal/utils"
	"github.com/shopauth/shopauth/services/auth"
)

// AuthHandler handles HTTP requests for the OTP login flow
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendOTP handles OTP issue requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var request models.SendOTPRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	if err := h.authUC.GenerateOTP(c.Request().Context(), request.Phone); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			return utils.BadRequestResponse(c, "Phone number is required")
		case errors.Is(err, auth.ErrDeliveryFailed):
			return utils.InternalServerErrorResponse(c, "Failed to deliver OTP")
		default:
			logger.Error("OTP generation failed",
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Failed to send OTP")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var request models.VerifyOTPRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.Phone == "" || request.OTP == "" {
		return utils.BadRequestResponse(c, "Phone and OTP are required")
	}

	response, err := h.authUC.VerifyOTP(c.Request().Context(), request.Phone, request.OTP)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			return utils.BadRequestResponse(c, "Phone and OTP are required")
		case errors.Is(err, auth.ErrOTPNotFound):
			return utils.BadRequestResponse(c, "No OTP found")
		case errors.Is(err, auth.ErrOTPExpired):
			return utils.BadRequestResponse(c, "OTP expired")
		case errors.Is(err, auth.ErrOTPMismatch):
			return utils.BadRequestResponse(c, "Invalid OTP")
		case errors.Is(err, auth.ErrCustomerResolutionFailed),
			errors.Is(err, auth.ErrUpstreamUnavailable):
			return utils.InternalServerErrorResponse(c, "Verification failed")
		default:
			logger.Error("OTP verification failed",
				logger.ErrorField(err))
			return utils.InternalServerErrorResponse(c, "Verification failed")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", response)
}

// Me returns the customer record bound to the presented session token.
// Any verification or lookup failure collapses to a single invalid-session
// response so signing details never leak to the caller.
func (h *AuthHandler) Me(c echo.Context) error {
	customerID, ok := c.Get("customer_id").(int64)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	customer, err := h.authUC.GetCustomer(c.Request().Context(), customerID)
	if err != nil {
		logger.Warn("Customer lookup for session failed",
			logger.Int64("customer_id", customerID),
			logger.ErrorField(err))
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	return c.JSON(http.StatusOK, customer)
}
