package models

// Recognized sort keys for discovery results. Anything else falls back to
// SortAvgRating.
const (
	SortAvgRating         = "avg_rating"
	SortMostPreferred     = "most_preferred"
	SortCompletedServices = "completed_services"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// DefaultGenders is the gender set applied when the caller sends no
// gender_filter and the customer saved no preference.
var DefaultGenders = []string{"men", "women"}

// SearchFilters is the immutable per-request filter value the discovery
// pipeline runs on. Controllers build it once from query parameters with safe
// fallbacks and never mutate it afterwards.
type SearchFilters struct {
	Page          int
	Limit         int
	Search        string
	GenderFilter  []string
	RatingFilter  int
	NameFilter    string
	StylistLevels []string
	Sort          string
	Preference    []string
}

// PaginatedResult is the outward pagination contract. TotalPage is computed
// over the full ranked candidate set of the request, before the page is
// sliced, so deep pages still report the true page count.
type PaginatedResult struct {
	TotalPage   int                `json:"totalPage"`
	CurrentPage int                `json:"currentPage"`
	Result      []StylistCandidate `json:"result"`
}
