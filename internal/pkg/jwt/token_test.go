package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopauth/shopauth/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 10080, // 7 days in minutes
			Issuer:     "shopauth",
		},
	}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken(7001, "14155550100", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Expiry is seven days out
	expectedExpiry := time.Now().Add(7 * 24 * time.Hour).Unix()
	assert.InDelta(t, expectedExpiry, expiresAt, 5)

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)

	customerID, err := CustomerIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, int64(7001), customerID)
	assert.Equal(t, "14155550100", claims["phone"])
	assert.Equal(t, "shopauth", claims["iss"])
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Secret = ""

	_, _, err := GenerateToken(7001, "14155550100", cfg)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken(7001, "14155550100", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")
	assert.Error(t, err)
}

func TestValidateToken_TamperedToken(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken(7001, "14155550100", cfg)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Expiration = -1 // already past expiry

	token, _, err := GenerateToken(7001, "14155550100", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWT.Secret)
	assert.Error(t, err)
}

func TestCustomerIDFromClaims_Missing(t *testing.T) {
	_, err := CustomerIDFromClaims(map[string]interface{}{"phone": "14155550100"})
	assert.Error(t, err)
}
