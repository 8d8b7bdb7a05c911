package queries

import (
	"database/sql"
	"errors"
)

// defaultStylistRadiusMiles applies when the configs table has no row or a
// zero radius.
const defaultStylistRadiusMiles = 20

type ConfigQueries struct {
	DB *sql.DB
}

// GetStylistSearchRadius returns the discovery search radius in miles.
func (q *ConfigQueries) GetStylistSearchRadius() (float64, error) {
	var radius sql.NullFloat64

	query := `SELECT customer_stylist_radius FROM configs LIMIT 1`
	err := q.DB.QueryRow(query).Scan(&radius)
	if err != nil {
		if err == sql.ErrNoRows {
			return defaultStylistRadiusMiles, nil
		}
		return 0, errors.New("unable to get search radius, DB error")
	}

	if !radius.Valid || radius.Float64 <= 0 {
		return defaultStylistRadiusMiles, nil
	}
	return radius.Float64, nil
}
