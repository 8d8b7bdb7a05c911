package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BlockStatusActive   = "active"
	BlockStatusInactive = "inactive"
)

type Customer struct {
	ID           uuid.UUID `json:"id" db:"uid"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Preference   []string  `json:"preference"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Address is one saved customer address. At most one address per customer
// carries Active=true; that one drives every location-based query.
type Address struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	ZipCode    string    `json:"zip_code,omitempty"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

type BlockedStylist struct {
	StylistID   uuid.UUID `json:"stylist_id"`
	BlockStatus string    `json:"block_status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AddAddressRequest struct {
	Address string  `json:"address" validate:"required,lte=500"`
	City    string  `json:"city" validate:"required,lte=120"`
	ZipCode string  `json:"zip_code" validate:"omitempty,lte=20"`
	Lat     float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng     float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Active  bool    `json:"active"`
}

type PreferenceRequest struct {
	Preference []string `json:"preference" validate:"required,dive,oneof=men women"`
}
