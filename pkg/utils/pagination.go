package utils

import (
	"github.com/danuarts/stylora-backend/app/models"
)

// PaginateCandidates slices one page out of the ranked candidate set and
// returns it with the page metadata. Pages are 1-based; non-positive page or
// limit fall back to the defaults. TotalPage is computed over the full
// ranked set of this request, so len(result) <= limit always holds.
func PaginateCandidates(candidates []models.StylistCandidate, page, limit int) ([]models.StylistCandidate, int, int) {
	if page <= 0 {
		page = models.DefaultPage
	}
	if limit <= 0 {
		limit = models.DefaultLimit
	}

	total := len(candidates)
	totalPage := (total + limit - 1) / limit

	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	pageItems := candidates[skip:end]

	currentPage := page
	if len(pageItems) == 0 {
		currentPage = 0
	}
	return pageItems, totalPage, currentPage
}
