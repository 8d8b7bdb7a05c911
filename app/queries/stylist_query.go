package queries

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/danuarts/stylora-backend/app/models"
	"github.com/danuarts/stylora-backend/pkg/utils"
)

type StylistQueries struct {
	DB *sql.DB
}

// searchPoolQuery is the discovery query run once per candidate pool. The
// first %s is the pool's location column (live_location for online stylists,
// register_location for offline), the second is the composed filter stages.
// customer_distance is reported in miles; the outer WHERE caps it by the
// stylist's own service radius.
const searchPoolQuery = `
	SELECT c.uid, c.firstname, c.middlename, c.lastname, c.full_name, c.gender,
	       c.experience, c.online, c.lat, c.lng, c.radius, c.customer_distance,
	       c.rating_count, c.avg_rating, c.fav_count, c.completed_count
	FROM (
	    SELECT s.uid, s.firstname, COALESCE(s.middlename, '') AS middlename, s.lastname,
	           s.full_name, s.gender, s.experience, s.online, s.radius,
	           ST_Y(%[1]s::geometry) AS lat, ST_X(%[1]s::geometry) AS lng,
	           ST_Distance(%[1]s, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) * $8 AS customer_distance,
	           r.rating_count, r.avg_rating, f.fav_count, o.completed_count
	    FROM stylists s
	    LEFT JOIN LATERAL (
	        SELECT COUNT(*)::int AS rating_count, COALESCE(AVG(value), 0) AS avg_rating
	        FROM ratings WHERE stylist_id = s.uid
	    ) r ON TRUE
	    LEFT JOIN LATERAL (
	        SELECT COUNT(*)::int AS fav_count FROM favourites WHERE stylist_id = s.uid
	    ) f ON TRUE
	    LEFT JOIN LATERAL (
	        SELECT COUNT(*)::int AS completed_count FROM orders
	        WHERE stylist_id = s.uid AND booking_status = $7
	    ) o ON TRUE
	    WHERE s.registration_status = 'accepted'
	      AND s.deleted = FALSE
	      AND s.status = TRUE
	      AND s.disable = FALSE
	      AND s.online = $4
	      AND ST_DWithin(%[1]s, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
	      AND NOT (s.uid = ANY($6::uuid[]))
	      AND NOT ($5 = ANY(COALESCE(s.blocked_customer, '{}')))
	      %[2]s
	) c
	WHERE c.customer_distance <= c.radius
	ORDER BY c.customer_distance ASC`

// SearchPool returns one geo candidate pool around the customer's active
// address. Each pool runs as its own query because the two location columns
// are indexed independently; results are tagged with the pool name and come
// back ordered by ascending distance (the final order is set by the ranker).
func (q *StylistQueries) SearchPool(pool string, center models.GeoPoint, radiusMiles float64, customerID uuid.UUID, blocked []uuid.UUID, filters models.SearchFilters) ([]models.StylistCandidate, error) {
	locationKey := "s.live_location"
	online := true
	if pool == models.PoolOffline {
		locationKey = "s.register_location"
		online = false
	}

	stages := buildFilterStages(filters, 9)
	filterClause, filterArgs := flattenStages(stages)

	blockedIDs := make([]string, 0, len(blocked))
	for _, id := range blocked {
		blockedIDs = append(blockedIDs, id.String())
	}

	query := fmt.Sprintf(searchPoolQuery, locationKey, filterClause)
	args := []interface{}{
		center.Lng,
		center.Lat,
		radiusMiles * utils.MetersPerMile,
		online,
		customerID.String(),
		pq.Array(blockedIDs),
		models.BookingStatusCompleted,
		utils.MilesPerMeter,
	}
	args = append(args, filterArgs...)

	rows, err := q.DB.Query(query, args...)
	if err != nil {
		return nil, errors.New("unable to search stylists, DB error")
	}
	defer rows.Close()

	candidates := []models.StylistCandidate{}
	for rows.Next() {
		var cand models.StylistCandidate
		if err := rows.Scan(
			&cand.ID,
			&cand.Firstname,
			&cand.Middlename,
			&cand.Lastname,
			&cand.FullName,
			&cand.Gender,
			&cand.Experience,
			&cand.Online,
			&cand.Location.Lat,
			&cand.Location.Lng,
			&cand.Radius,
			&cand.CustomerDistance,
			&cand.RatingCount,
			&cand.AvgRating,
			&cand.StylistFavCount,
			&cand.CompletedOrderCount,
		); err != nil {
			return nil, errors.New("error scanning stylist candidate row")
		}
		cand.Pool = pool
		candidates = append(candidates, cand)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("error iterating stylist candidate rows")
	}

	return candidates, nil
}

// GetStylistDetail loads a single accepted stylist with their reputation
// aggregates and whether the requesting customer has favourited them. The
// availability gate is resolved by the controller on top of this.
func (q *StylistQueries) GetStylistDetail(stylistID, customerID uuid.UUID) (models.StylistDetail, error) {
	detail := models.StylistDetail{}

	query := `
		SELECT s.uid, s.firstname, s.lastname, s.full_name, s.email, s.gender,
		       s.experience, s.online, COALESCE(s.about, ''),
		       r.rating_count, r.avg_rating,
		       EXISTS (SELECT 1 FROM favourites WHERE stylist_id = s.uid AND customer_id = $2)
		FROM stylists s
		LEFT JOIN LATERAL (
		    SELECT COUNT(*)::int AS rating_count, COALESCE(AVG(value), 0) AS avg_rating
		    FROM ratings WHERE stylist_id = s.uid
		) r ON TRUE
		WHERE s.uid = $1 AND s.registration_status = 'accepted' AND s.deleted = FALSE`

	err := q.DB.QueryRow(query, stylistID, customerID).Scan(
		&detail.ID,
		&detail.Firstname,
		&detail.Lastname,
		&detail.FullName,
		&detail.Email,
		&detail.Gender,
		&detail.Experience,
		&detail.Online,
		&detail.About,
		&detail.RatingCount,
		&detail.AvgRating,
		&detail.IsFav,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return detail, utils.ErrNotFound
		}
		return detail, errors.New("unable to get stylist, DB error")
	}

	return detail, nil
}

// HasBlockedCustomer reports whether the stylist put the customer on their
// raw blocked_customer id list.
func (q *StylistQueries) HasBlockedCustomer(stylistID, customerID uuid.UUID) (bool, error) {
	var blocked bool
	query := `SELECT $2 = ANY(COALESCE(blocked_customer, '{}')) FROM stylists WHERE uid = $1`
	err := q.DB.QueryRow(query, stylistID, customerID.String()).Scan(&blocked)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, utils.ErrNotFound
		}
		return false, errors.New("unable to check stylist block list, DB error")
	}
	return blocked, nil
}

func (q *StylistQueries) CountActiveStylists() (int, error) {
	var cnt int
	query := `SELECT COUNT(*) FROM stylists
	          WHERE online = TRUE AND registration_status = 'accepted' AND deleted = FALSE`
	if err := q.DB.QueryRow(query).Scan(&cnt); err != nil {
		return 0, errors.New("unable to count active stylists")
	}
	return cnt, nil
}

func (q *StylistQueries) GetStylistByEmail(email string) (models.Stylist, error) {
	stylist := models.Stylist{}

	query := `SELECT uid, firstname, lastname, full_name, email, gender, experience,
	                 online, registration_status, password_hash, created_at, updated_at
	          FROM stylists WHERE email = $1 AND deleted = FALSE`

	err := q.DB.QueryRow(query, email).Scan(
		&stylist.ID,
		&stylist.Firstname,
		&stylist.Lastname,
		&stylist.FullName,
		&stylist.Email,
		&stylist.Gender,
		&stylist.Experience,
		&stylist.Online,
		&stylist.RegistrationStatus,
		&stylist.PasswordHash,
		&stylist.CreatedAt,
		&stylist.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return stylist, utils.ErrNotFound
		}
		return stylist, errors.New("unable to get stylist, DB error")
	}

	return stylist, nil
}

// SetOnline flips the stylist online and seeds live_location, making them
// visible to the online candidate pool.
func (q *StylistQueries) SetOnline(stylistID uuid.UUID, lat, lng float64) error {
	query := `UPDATE stylists
	          SET online = TRUE,
	              live_location = ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
	              updated_at = now()
	          WHERE uid = $1`
	res, err := q.DB.Exec(query, stylistID, lng, lat)
	if err != nil {
		return errors.New("unable to set stylist online, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (q *StylistQueries) UpdateLiveLocation(stylistID uuid.UUID, lat, lng float64) error {
	query := `UPDATE stylists
	          SET live_location = ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
	              updated_at = now()
	          WHERE uid = $1 AND online = TRUE`
	_, err := q.DB.Exec(query, stylistID, lng, lat)
	if err != nil {
		return errors.New("unable to update live location, DB error")
	}
	return nil
}

func (q *StylistQueries) SetOffline(stylistID uuid.UUID) error {
	query := `UPDATE stylists SET online = FALSE, updated_at = now() WHERE uid = $1`
	_, err := q.DB.Exec(query, stylistID)
	if err != nil {
		return errors.New("unable to set stylist offline, DB error")
	}
	return nil
}
