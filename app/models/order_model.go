package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking lifecycle codes. BookingStatusCompleted is the single definition of
// "completed" used by the reputation aggregates; the active set gates
// stylist availability.
const (
	BookingStatusAccepted   = 1
	BookingStatusOnTheWay   = 2
	BookingStatusInProgress = 3
	BookingStatusCompleted  = 4
	BookingStatusCancelled  = 5
)

// ActiveBookingStatuses are the states during which a stylist cannot take a
// new booking.
var ActiveBookingStatuses = []int{
	BookingStatusAccepted,
	BookingStatusOnTheWay,
	BookingStatusInProgress,
}

type Order struct {
	ID            uuid.UUID `json:"id"`
	StylistID     uuid.UUID `json:"stylist_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	BookingStatus int       `json:"booking_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Rating struct {
	ID         uuid.UUID `json:"id"`
	StylistID  uuid.UUID `json:"stylist_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Value      float64   `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
}

type Favourite struct {
	ID         uuid.UUID `json:"id"`
	StylistID  uuid.UUID `json:"stylist_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}
