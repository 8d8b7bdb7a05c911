package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/danuarts/stylora-backend/app/models"
)

type OrderQueries struct {
	DB *sql.DB
}

// HasActiveOrder reports whether the stylist has a booking in one of the
// active lifecycle states. An active order gates the stylist's availability
// in the detail view; it never removes them from discovery results.
func (q *OrderQueries) HasActiveOrder(stylistID uuid.UUID) (bool, error) {
	var active bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM orders
	              WHERE stylist_id = $1 AND booking_status = ANY($2)
	          )`
	if err := q.DB.QueryRow(query, stylistID, pq.Array(models.ActiveBookingStatuses)).Scan(&active); err != nil {
		return false, errors.New("unable to check active orders, DB error")
	}
	return active, nil
}

// CountCompletedOrders counts the stylist's bookings in the completed state.
func (q *OrderQueries) CountCompletedOrders(stylistID uuid.UUID) (int, error) {
	var cnt int
	query := `SELECT COUNT(*) FROM orders WHERE stylist_id = $1 AND booking_status = $2`
	if err := q.DB.QueryRow(query, stylistID, models.BookingStatusCompleted).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count completed orders, DB error")
	}
	return cnt, nil
}
