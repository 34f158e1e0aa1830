package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/internal/utils"
	"github.com/shopauth/shopauth/services/auth"
	"github.com/shopauth/shopauth/services/auth/mocks"
)

func setupHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockUC), mockUC
}

func requestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	var response utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	var response utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestSendOTP_Success(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "+14155550100").
		Return(nil)

	c, rec := requestContext(http.MethodPost, "/send-otp", `{"phone":"+14155550100"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	response := decodeResponse(t, rec)
	assert.True(t, response.Success)
	assert.Equal(t, "OTP sent successfully", response.Message)
}

func TestSendOTP_InvalidPayload(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := requestContext(http.MethodPost, "/send-otp", `{not-json`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request payload", decodeError(t, rec).Error)
}

func TestSendOTP_MissingPhone(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := requestContext(http.MethodPost, "/send-otp", `{}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone number is required", decodeError(t, rec).Error)
}

func TestSendOTP_InvalidInput(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "garbage").
		Return(auth.ErrInvalidInput)

	c, rec := requestContext(http.MethodPost, "/send-otp", `{"phone":"garbage"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone number is required", decodeError(t, rec).Error)
}

func TestSendOTP_DeliveryFailure(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "+14155550100").
		Return(auth.ErrDeliveryFailed)

	c, rec := requestContext(http.MethodPost, "/send-otp", `{"phone":"+14155550100"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to deliver OTP", decodeError(t, rec).Error)
}

func TestSendOTP_UnexpectedError(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "+14155550100").
		Return(assert.AnError)

	c, rec := requestContext(http.MethodPost, "/send-otp", `{"phone":"+14155550100"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to send OTP", decodeError(t, rec).Error)
}

func TestVerifyOTP_Success(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "+14155550100", "123456").
		Return(&models.AuthResponse{
			Token:      "signed-token",
			CustomerID: 7001,
			Phone:      "14155550100",
			ExpiresAt:  1790000000,
		}, nil)

	c, rec := requestContext(http.MethodPost, "/verify-otp", `{"phone":"+14155550100","otp":"123456"}`)
	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	response := decodeResponse(t, rec)
	assert.True(t, response.Success)
	assert.Equal(t, "OTP verified successfully", response.Message)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "signed-token", data["token"])
	assert.Equal(t, float64(7001), data["customer_id"])
}

func TestVerifyOTP_MissingInput(t *testing.T) {
	h, _ := setupHandler(t)

	for _, body := range []string{`{}`, `{"phone":"+14155550100"}`, `{"otp":"123456"}`} {
		c, rec := requestContext(http.MethodPost, "/verify-otp", body)
		require.NoError(t, h.VerifyOTP(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Phone and OTP are required", decodeError(t, rec).Error)
	}
}

func TestVerifyOTP_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{"not found", auth.ErrOTPNotFound, http.StatusBadRequest, "No OTP found"},
		{"expired", auth.ErrOTPExpired, http.StatusBadRequest, "OTP expired"},
		{"mismatch", auth.ErrOTPMismatch, http.StatusBadRequest, "Invalid OTP"},
		{"resolution failed", auth.ErrCustomerResolutionFailed, http.StatusInternalServerError, "Verification failed"},
		{"upstream unavailable", auth.ErrUpstreamUnavailable, http.StatusInternalServerError, "Verification failed"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, "Verification failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockUC := setupHandler(t)

			mockUC.EXPECT().
				VerifyOTP(gomock.Any(), "+14155550100", "123456").
				Return(nil, tt.ucErr)

			c, rec := requestContext(http.MethodPost, "/verify-otp", `{"phone":"+14155550100","otp":"123456"}`)
			require.NoError(t, h.VerifyOTP(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

func TestMe_Success(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		GetCustomer(gomock.Any(), int64(7001)).
		Return(&models.Customer{ID: 7001, Phone: "+14155550100"}, nil)

	c, rec := requestContext(http.MethodGet, "/me", "")
	c.Set("customer_id", int64(7001))
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var customer models.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customer))
	assert.Equal(t, int64(7001), customer.ID)
	assert.Equal(t, "+14155550100", customer.Phone)
}

func TestMe_MissingSessionContext(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := requestContext(http.MethodGet, "/me", "")
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid session", decodeError(t, rec).Error)
}

func TestMe_CustomerLookupFailure(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		GetCustomer(gomock.Any(), int64(7001)).
		Return(nil, auth.ErrUpstreamUnavailable)

	c, rec := requestContext(http.MethodGet, "/me", "")
	c.Set("customer_id", int64(7001))
	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid session", decodeError(t, rec).Error)
}
