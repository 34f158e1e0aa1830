package auth

import "errors"

// Sentinel errors for the OTP and customer-resolution flows. Handlers map
// these to HTTP statuses; components only return values from this set so
// upstream error bodies never leak to callers.
var (
	ErrInvalidInput = errors.New("phone number is required")

	ErrOTPNotFound = errors.New("no OTP found")
	ErrOTPExpired  = errors.New("OTP expired")
	ErrOTPMismatch = errors.New("invalid OTP")

	ErrDeliveryFailed           = errors.New("failed to deliver OTP")
	ErrCustomerResolutionFailed = errors.New("failed to resolve customer")
	ErrUpstreamUnavailable      = errors.New("upstream service unavailable")

	// ErrPhoneTaken marks a duplicate-phone conflict from the commerce
	// platform. It never reaches a handler: the resolver catches it and
	// retries via the listing fallback.
	ErrPhoneTaken = errors.New("phone number already claimed by a customer")

	ErrInvalidSession = errors.New("invalid session")
)
