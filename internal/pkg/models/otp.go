package models

import (
	"time"
)

// OTP represents a one-time passcode bound to a normalized phone number
type OTP struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the passcode is past its validity window
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// SendOTPRequest represents a request to send an OTP
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token      string `json:"token"`
	CustomerID int64  `json:"customer_id"`
	Phone      string `json:"phone"`
	ExpiresAt  int64  `json:"expires_at"`
}
