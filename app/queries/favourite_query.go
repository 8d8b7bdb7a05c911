package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/danuarts/stylora-backend/app/models"
)

type FavouriteQueries struct {
	DB *sql.DB
}

func (q *FavouriteQueries) AddFavourite(customerID, stylistID uuid.UUID) error {
	query := `INSERT INTO favourites (id, customer_id, stylist_id, created_at)
	          VALUES ($1, $2, $3, now())
	          ON CONFLICT (customer_id, stylist_id) DO NOTHING`
	_, err := q.DB.Exec(query, uuid.New(), customerID, stylistID)
	if err != nil {
		return errors.New("unable to add favourite, DB error")
	}
	return nil
}

func (q *FavouriteQueries) RemoveFavourite(customerID, stylistID uuid.UUID) error {
	query := `DELETE FROM favourites WHERE customer_id = $1 AND stylist_id = $2`
	res, err := q.DB.Exec(query, customerID, stylistID)
	if err != nil {
		return errors.New("unable to remove favourite, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("favourite not found")
	}
	return nil
}

func (q *FavouriteQueries) ListFavourites(customerID uuid.UUID) ([]models.Favourite, error) {
	favourites := []models.Favourite{}

	query := `SELECT id, customer_id, stylist_id, created_at
	          FROM favourites WHERE customer_id = $1 ORDER BY created_at DESC`

	rows, err := q.DB.Query(query, customerID)
	if err != nil {
		return favourites, errors.New("unable to list favourites, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var fav models.Favourite
		if err := rows.Scan(&fav.ID, &fav.CustomerID, &fav.StylistID, &fav.CreatedAt); err != nil {
			return favourites, errors.New("error scanning favourite row")
		}
		favourites = append(favourites, fav)
	}
	if err := rows.Err(); err != nil {
		return favourites, errors.New("error iterating favourite rows")
	}

	return favourites, nil
}
