package usecase

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/shopauth/shopauth/internal/pkg/jwt"
	"github.com/shopauth/shopauth/internal/pkg/models"
	"github.com/shopauth/shopauth/services/auth"
	"github.com/shopauth/shopauth/services/auth/mocks"
)

type ucMocks struct {
	otpRepo     *mocks.MockOTPRepo
	messagingGW *mocks.MockMessagingGW
	commerceGW  *mocks.MockCommerceGW
	eventGW     *mocks.MockEventGW
}

func setupAuthUC(t *testing.T) (*AuthUC, *ucMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &ucMocks{
		otpRepo:     mocks.NewMockOTPRepo(ctrl),
		messagingGW: mocks.NewMockMessagingGW(ctrl),
		commerceGW:  mocks.NewMockCommerceGW(ctrl),
		eventGW:     mocks.NewMockEventGW(ctrl),
	}

	cfg := &models.Config{
		OTP: models.OTPConfig{ExpiryMinutes: 5},
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 10080,
			Issuer:     "shopauth",
		},
	}

	uc := NewAuthUC(m.otpRepo, m.messagingGW, m.commerceGW, m.eventGW, cfg)
	return uc, m
}

func liveOTP(phone, code string) *models.OTP {
	now := time.Now()
	return &models.OTP{
		Phone:     phone,
		Code:      code,
		CreatedAt: now.Add(-time.Minute),
		ExpiresAt: now.Add(4 * time.Minute),
	}
}

func TestGenerateOTP_Success(t *testing.T) {
	uc, m := setupAuthUC(t)

	var storedOTP *models.OTP

	m.otpRepo.EXPECT().
		CreateOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, otp *models.OTP) error {
			storedOTP = otp
			return nil
		})

	m.messagingGW.EXPECT().
		SendOTP(gomock.Any(), "14155550100", gomock.Any()).
		DoAndReturn(func(ctx context.Context, phone, code string) error {
			assert.Equal(t, storedOTP.Code, code)
			return nil
		})

	err := uc.GenerateOTP(context.Background(), "+1 415-555-0100")
	require.NoError(t, err)

	// Store key is the normalized phone
	assert.Equal(t, "14155550100", storedOTP.Phone)

	// Code is a 6-digit number in [100000, 999999]
	require.Len(t, storedOTP.Code, 6)
	n, err := strconv.Atoi(storedOTP.Code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)

	// Validity window is five minutes
	assert.WithinDuration(t, storedOTP.CreatedAt.Add(5*time.Minute), storedOTP.ExpiresAt, time.Second)
}

func TestGenerateOTP_EmptyPhone(t *testing.T) {
	uc, _ := setupAuthUC(t)

	err := uc.GenerateOTP(context.Background(), "   ")
	assert.ErrorIs(t, err, auth.ErrInvalidInput)
}

func TestGenerateOTP_GarbagePhone(t *testing.T) {
	uc, _ := setupAuthUC(t)

	err := uc.GenerateOTP(context.Background(), "not-a-phone")
	assert.ErrorIs(t, err, auth.ErrInvalidInput)
}

func TestGenerateOTP_DeliveryFailureKeepsRecord(t *testing.T) {
	uc, m := setupAuthUC(t)

	m.otpRepo.EXPECT().
		CreateOTP(gomock.Any(), gomock.Any()).
		Return(nil)

	m.messagingGW.EXPECT().
		SendOTP(gomock.Any(), "14155550100", gomock.Any()).
		Return(auth.ErrDeliveryFailed)

	// No DeleteOTP expectation: the stored record is not rolled back
	err := uc.GenerateOTP(context.Background(), "14155550100")
	assert.ErrorIs(t, err, auth.ErrDeliveryFailed)
}

func TestVerifyOTP_MissingInput(t *testing.T) {
	uc, _ := setupAuthUC(t)

	_, err := uc.VerifyOTP(context.Background(), "", "123456")
	assert.ErrorIs(t, err, auth.ErrInvalidInput)

	_, err = uc.VerifyOTP(context.Background(), "14155550100", "")
	assert.ErrorIs(t, err, auth.ErrInvalidInput)
}

func TestVerifyOTP_NotFound(t *testing.T) {
	uc, m := setupAuthUC(t)

	m.otpRepo.EXPECT().
		GetOTP(gomock.Any(), "14155550100").
		Return(nil, auth.ErrOTPNotFound)

	_, err := uc.VerifyOTP(context.Background(), "14155550100", "123456")
	assert.ErrorIs(t, err, auth.ErrOTPNotFound)
}

func TestVerifyOTP_Expired(t *testing.T) {
	uc, m := setupAuthUC(t)

	expired := liveOTP("14155550100", "123456")
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	m.otpRepo.EXPECT().
		GetOTP(gomock.Any(), "14155550100").
		Return(expired, nil)

	// Expired beats correct code; no delete on the expired path
	_, err := uc.VerifyOTP(context.Background(), "14155550100", "123456")
	assert.ErrorIs(t, err, auth.ErrOTPExpired)
}

func TestVerifyOTP_MismatchKeepsRecord(t *testing.T) {
	uc, m := setupAuthUC(t)

	m.otpRepo.EXPECT().
		GetOTP(gomock.Any(), "14155550100").
		Return(liveOTP("14155550100", "123456"), nil)

	// No DeleteOTP expectation: the record survives for a retry
	_, err := uc.VerifyOTP(context.Background(), "14155550100", "654321")
	assert.ErrorIs(t, err, auth.ErrOTPMismatch)
}

func TestVerifyOTP_Success(t *testing.T) {
	uc, m := setupAuthUC(t)

	customer := &models.Customer{ID: 7001, Phone: "+14155550100"}

	m.otpRepo.EXPECT().
		GetOTP(gomock.Any(), "14155550100").
		Return(liveOTP("14155550100", "123456"), nil)

	m.otpRepo.EXPECT().
		DeleteOTP(gomock.Any(), "14155550100").
		Return(nil)

	m.commerceGW.EXPECT().
		SearchCustomers(gomock.Any(), "email:14155550100@whatsapp.login").
		Return([]models.Customer{*customer}, nil)

	m.eventGW.EXPECT().
		PublishLoginEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	response, err := uc.VerifyOTP(context.Background(), "+1 415-555-0100", "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(7001), response.CustomerID)
	assert.Equal(t, "14155550100", response.Phone)

	// The minted token decodes back to the same identity
	claims, err := jwtpkg.ValidateToken(response.Token, "test-secret")
	require.NoError(t, err)
	customerID, err := jwtpkg.CustomerIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(7001), customerID)
	assert.Equal(t, "14155550100", claims["phone"])
}

func TestVerifyOTP_DeletesRecordBeforeResolution(t *testing.T) {
	uc, m := setupAuthUC(t)

	m.otpRepo.EXPECT().
		GetOTP(gomock.Any(), "14155550100").
		Return(liveOTP("14155550100", "123456"), nil)

	// The record is consumed even though resolution fails afterwards
	m.otpRepo.EXPECT().
		DeleteOTP(gomock.Any(), "14155550100").
		Return(nil)

	m.commerceGW.EXPECT().
		SearchCustomers(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrUpstreamUnavailable)

	_, err := uc.VerifyOTP(context.Background(), "14155550100", "123456")
	assert.ErrorIs(t, err, auth.ErrUpstreamUnavailable)
}

func TestVerifyOTP_EventPublishFailureDoesNotFailLogin(t *testing.T) {
	uc, m := setupAuthUC(t)

	m.otpRepo.EXPECT().
		GetOTP(gomock.Any(), "14155550100").
		Return(liveOTP("14155550100", "123456"), nil)

	m.otpRepo.EXPECT().
		DeleteOTP(gomock.Any(), "14155550100").
		Return(nil)

	m.commerceGW.EXPECT().
		SearchCustomers(gomock.Any(), "email:14155550100@whatsapp.login").
		Return([]models.Customer{{ID: 7001, Phone: "+14155550100"}}, nil)

	m.eventGW.EXPECT().
		PublishLoginEvent(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	response, err := uc.VerifyOTP(context.Background(), "14155550100", "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(7001), response.CustomerID)
}

func TestGetCustomer(t *testing.T) {
	uc, m := setupAuthUC(t)

	m.commerceGW.EXPECT().
		GetCustomer(gomock.Any(), int64(7001)).
		Return(&models.Customer{ID: 7001, Phone: "+14155550100"}, nil)

	customer, err := uc.GetCustomer(context.Background(), 7001)
	require.NoError(t, err)
	assert.Equal(t, int64(7001), customer.ID)
}
