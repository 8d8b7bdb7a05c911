package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RegistrationPending  = "pending"
	RegistrationAccepted = "accepted"
	RegistrationRejected = "rejected"
)

const (
	ExperienceJunior   = "junior"
	ExperienceSenior   = "senior"
	ExperienceAdvanced = "advanced"
)

// Pool tags for the two geo candidate pools. Online stylists are searched on
// live_location, offline stylists on register_location.
const (
	PoolOnline  = "online"
	PoolOffline = "offline"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Stylist struct {
	ID                 uuid.UUID `json:"id" db:"uid"`
	Firstname          string    `json:"firstname"`
	Middlename         string    `json:"middlename,omitempty"`
	Lastname           string    `json:"lastname"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	Gender             string    `json:"gender"`
	Experience         string    `json:"experience"`
	Online             bool      `json:"online"`
	LiveLocation       GeoPoint  `json:"live_location"`
	RegisterLocation   GeoPoint  `json:"register_location"`
	RegistrationStatus string    `json:"registration_status"`
	Status             bool      `json:"status"`
	Deleted            bool      `json:"-"`
	Disabled           bool      `json:"-"`
	Radius             float64   `json:"radius"`
	About              string    `json:"about,omitempty"`
	PasswordHash       string    `json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// StylistCandidate is one row of a discovery result: a stylist close enough
// to the customer's active address, carrying the reputation aggregates the
// ranker sorts on and the travel info attached after pagination.
//
// AvgRating is 0 when the stylist has no ratings at all; callers must read it
// together with RatingCount to tell "no data" apart from a true low average.
type StylistCandidate struct {
	ID                  uuid.UUID `json:"id"`
	Firstname           string    `json:"firstname"`
	Middlename          string    `json:"middlename,omitempty"`
	Lastname            string    `json:"lastname"`
	FullName            string    `json:"full_name"`
	Gender              string    `json:"gender"`
	Experience          string    `json:"experience"`
	Online              bool      `json:"online"`
	Pool                string    `json:"pool"`
	Location            GeoPoint  `json:"location"`
	Radius              float64   `json:"radius"`
	CustomerDistance    float64   `json:"customer_distance"`
	RatingCount         int       `json:"rating_count"`
	AvgRating           float64   `json:"avg_rating"`
	StylistFavCount     int       `json:"stylist_fav_count"`
	CompletedOrderCount int       `json:"completed_order_count"`
	Distance            float64   `json:"distance"`
	Duration            float64   `json:"duration"`
}

// StylistDetail is the single-stylist view with the availability gate
// resolved. An unavailable stylist is an expected business state, not an
// error: Available carries false and Reason says why.
type StylistDetail struct {
	ID                  uuid.UUID `json:"id"`
	Firstname           string    `json:"firstname"`
	Lastname            string    `json:"lastname"`
	FullName            string    `json:"full_name"`
	Email               string    `json:"email"`
	Gender              string    `json:"gender"`
	Experience          string    `json:"experience"`
	Online              bool      `json:"online"`
	About               string    `json:"about,omitempty"`
	RatingCount         int       `json:"rating_count"`
	AvgRating           float64   `json:"avg_rating"`
	CompletedOrderCount int       `json:"completed_order_count"`
	IsFav               bool      `json:"is_fav"`
	Available           bool      `json:"available"`
	Reason              string    `json:"reason,omitempty"`
}
