package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/danuarts/stylora-backend/app/models"
	"github.com/danuarts/stylora-backend/pkg/utils"
)

type CustomerQueries struct {
	DB *sql.DB
}

func (q *CustomerQueries) GetCustomerByID(id uuid.UUID) (models.Customer, error) {
	customer := models.Customer{}

	query := `SELECT uid, username, email, phone_number, gender,
	                 COALESCE(preference, '{}'), password_hash, created_at, updated_at
	          FROM customers WHERE uid = $1`

	err := q.DB.QueryRow(query, id).Scan(
		&customer.ID,
		&customer.Username,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.Gender,
		pq.Array(&customer.Preference),
		&customer.PasswordHash,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return customer, utils.ErrNotFound
		}
		return customer, errors.New("unable to get customer, DB error")
	}

	return customer, nil
}

func (q *CustomerQueries) GetCustomerByEmail(email string) (models.Customer, error) {
	customer := models.Customer{}

	query := `SELECT uid, username, email, phone_number, gender,
	                 COALESCE(preference, '{}'), password_hash, created_at, updated_at
	          FROM customers WHERE email = $1`

	err := q.DB.QueryRow(query, email).Scan(
		&customer.ID,
		&customer.Username,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.Gender,
		pq.Array(&customer.Preference),
		&customer.PasswordHash,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return customer, utils.ErrNotFound
		}
		return customer, errors.New("unable to get customer, DB error")
	}

	return customer, nil
}

func (q *CustomerQueries) CreateCustomer(c *models.Customer) error {
	query := `INSERT INTO customers (uid, username, email, phone_number, gender, preference, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := q.DB.Exec(query,
		c.ID,
		c.Username,
		c.Email,
		c.PhoneNumber,
		c.Gender,
		pq.Array(c.Preference),
		c.PasswordHash,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return errors.New("unable to create customer, DB error")
	}
	return nil
}

func (q *CustomerQueries) UpdatePreference(customerID uuid.UUID, preference []string) error {
	query := `UPDATE customers SET preference = $2, updated_at = now() WHERE uid = $1`
	res, err := q.DB.Exec(query, customerID, pq.Array(preference))
	if err != nil {
		return errors.New("unable to update preference, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// GetActiveAddress resolves the customer's single address flagged active.
// Discovery must not run without one: a missing active row, or one without
// usable coordinates, yields ErrNoActiveLocation.
func (q *CustomerQueries) GetActiveAddress(customerID uuid.UUID) (models.Address, error) {
	address := models.Address{}
	var lat, lng sql.NullFloat64

	query := `SELECT id, customer_id, address, city, COALESCE(zip_code, ''), lat, lng, active, created_at
	          FROM addresses WHERE customer_id = $1 AND active = TRUE`

	err := q.DB.QueryRow(query, customerID).Scan(
		&address.ID,
		&address.CustomerID,
		&address.Address,
		&address.City,
		&address.ZipCode,
		&lat,
		&lng,
		&address.Active,
		&address.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return address, utils.ErrNoActiveLocation
		}
		return address, errors.New("unable to get active address, DB error")
	}

	if !lat.Valid || !lng.Valid {
		return address, utils.ErrNoActiveLocation
	}
	address.Lat = lat.Float64
	address.Lng = lng.Float64

	return address, nil
}

// AddAddress inserts a saved address. When the new address is flagged
// active, the previous active one is cleared in the same transaction to keep
// the at-most-one-active invariant.
func (q *CustomerQueries) AddAddress(a *models.Address) error {
	tx, err := q.DB.Begin()
	if err != nil {
		return errors.New("unable to start transaction")
	}

	if a.Active {
		if _, err = tx.Exec(`UPDATE addresses SET active = FALSE WHERE customer_id = $1`, a.CustomerID); err != nil {
			tx.Rollback()
			return errors.New("unable to clear active address, DB error")
		}
	}

	_, err = tx.Exec(`INSERT INTO addresses (id, customer_id, address, city, zip_code, lat, lng, active, created_at)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.CustomerID, a.Address, a.City, a.ZipCode, a.Lat, a.Lng, a.Active, a.CreatedAt,
	)
	if err != nil {
		tx.Rollback()
		return errors.New("unable to create address, DB error")
	}

	if err := tx.Commit(); err != nil {
		return errors.New("unable to commit transaction")
	}
	return nil
}

// ActivateAddress makes the given address the customer's active one,
// clearing any other in the same transaction.
func (q *CustomerQueries) ActivateAddress(customerID, addressID uuid.UUID) error {
	tx, err := q.DB.Begin()
	if err != nil {
		return errors.New("unable to start transaction")
	}

	if _, err = tx.Exec(`UPDATE addresses SET active = FALSE WHERE customer_id = $1`, customerID); err != nil {
		tx.Rollback()
		return errors.New("unable to clear active address, DB error")
	}

	res, err := tx.Exec(`UPDATE addresses SET active = TRUE WHERE id = $1 AND customer_id = $2`, addressID, customerID)
	if err != nil {
		tx.Rollback()
		return errors.New("unable to activate address, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		tx.Rollback()
		return utils.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return errors.New("unable to commit transaction")
	}
	return nil
}

// GetBlockedStylistIDs returns the stylists the customer currently blocks.
// Only entries with block_status = 'active' count; inactive rows are kept as
// history and ignored here.
func (q *CustomerQueries) GetBlockedStylistIDs(customerID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}

	query := `SELECT stylist_id FROM blocked_stylists
	          WHERE customer_id = $1 AND block_status = $2`

	rows, err := q.DB.Query(query, customerID, models.BlockStatusActive)
	if err != nil {
		return ids, errors.New("unable to get blocked stylists, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return ids, errors.New("error scanning blocked stylist row")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return ids, errors.New("error iterating blocked stylist rows")
	}

	return ids, nil
}

// SetStylistBlock upserts the customer->stylist block relation with the
// given status (active blocks, inactive unblocks but keeps the row).
func (q *CustomerQueries) SetStylistBlock(customerID, stylistID uuid.UUID, status string) error {
	query := `INSERT INTO blocked_stylists (customer_id, stylist_id, block_status, created_at)
	          VALUES ($1, $2, $3, now())
	          ON CONFLICT (customer_id, stylist_id)
	          DO UPDATE SET block_status = EXCLUDED.block_status`

	_, err := q.DB.Exec(query, customerID, stylistID, status)
	if err != nil {
		return errors.New("unable to update block status, DB error")
	}
	return nil
}

// HasActiveBlock reports whether the customer currently blocks the stylist.
func (q *CustomerQueries) HasActiveBlock(customerID, stylistID uuid.UUID) (bool, error) {
	var blocked bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM blocked_stylists
	              WHERE customer_id = $1 AND stylist_id = $2 AND block_status = $3
	          )`
	if err := q.DB.QueryRow(query, customerID, stylistID, models.BlockStatusActive).Scan(&blocked); err != nil {
		return false, errors.New("unable to check block status, DB error")
	}
	return blocked, nil
}
