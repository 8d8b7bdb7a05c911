package utils

import "errors"

// Sentinel errors shared between the query layer and the controllers.
// Controllers translate these once at the response boundary; raw store
// errors never reach the caller.
var (
	// ErrNotFound covers missing customers, stylists and addresses. It is
	// reported to clients as an empty result with a message, not a fault.
	ErrNotFound = errors.New("record not found")

	// ErrNoActiveLocation means the customer has no address flagged active
	// (or the active one has no coordinates). Discovery cannot run without
	// it, so this is surfaced as a precondition failure.
	ErrNoActiveLocation = errors.New("no active location found")

	// ErrRoutingService wraps failures of the external directions API.
	// Distance and duration are never defaulted on failure; the whole
	// request fails instead.
	ErrRoutingService = errors.New("routing service failure")
)
