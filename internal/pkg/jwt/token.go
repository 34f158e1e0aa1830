package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/shopauth/shopauth/internal/pkg/models"
)

// ErrMissingSecret is returned when a token is requested without a signing secret configured
var ErrMissingSecret = errors.New("jwt signing secret is not configured")

// GenerateToken generates a session token binding a customer identity to a
// verified phone number
func GenerateToken(customerID int64, phone string, cfg *models.Config) (string, int64, error) {
	if cfg.JWT.Secret == "" {
		return "", 0, ErrMissingSecret
	}

	// Set token expiration time
	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	// Create claims
	claims := jwt.MapClaims{
		"customer_id": customerID,
		"phone":       phone,
		"iat":         now.Unix(),
		"exp":         expiresAt,
		"iss":         cfg.JWT.Issuer,
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token with configured secret
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns the claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// CustomerIDFromClaims extracts the customer id claim. JSON numbers decode
// as float64, so the claim is converted back to an int64 identifier.
func CustomerIDFromClaims(claims jwt.MapClaims) (int64, error) {
	raw, exists := claims["customer_id"]
	if !exists {
		return 0, errors.New("customer_id claim missing")
	}

	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("unexpected customer_id claim type %T", raw)
	}
}
