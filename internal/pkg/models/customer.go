package models

import (
	"time"
)

// Customer represents a customer record owned by the commerce platform.
// The ID is assigned by Shopify; this service only discovers or requests it.
type Customer struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Tags      string    `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// CustomerInput carries the attributes supplied when creating a customer
type CustomerInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Tags  string `json:"tags"`
}

// LoginEvent is published after a successful verification
type LoginEvent struct {
	CustomerID int64     `json:"customer_id"`
	Phone      string    `json:"phone"`
	Timestamp  time.Time `json:"timestamp"`
}
