package utils

import (
	"testing"

	"github.com/danuarts/stylora-backend/app/models"
)

func makeCandidates(n int) []models.StylistCandidate {
	out := make([]models.StylistCandidate, n)
	for i := range out {
		out[i].FullName = string(rune('a' + i))
	}
	return out
}

func TestPaginateCandidates_PageNeverExceedsLimit(t *testing.T) {
	candidates := makeCandidates(25)

	for page := 1; page <= 4; page++ {
		items, _, _ := PaginateCandidates(candidates, page, 10)
		if len(items) > 10 {
			t.Fatalf("page %d: got %d items, limit is 10", page, len(items))
		}
	}
}

func TestPaginateCandidates_TotalPageCeil(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}

	for _, tt := range tests {
		_, totalPage, _ := PaginateCandidates(makeCandidates(tt.total), 1, tt.limit)
		if totalPage != tt.want {
			t.Fatalf("total=%d limit=%d: expected totalPage %d, got %d", tt.total, tt.limit, tt.want, totalPage)
		}
	}
}

func TestPaginateCandidates_DefaultsOnBadInput(t *testing.T) {
	candidates := makeCandidates(15)

	items, _, currentPage := PaginateCandidates(candidates, 0, -5)
	if len(items) != models.DefaultLimit {
		t.Fatalf("expected default limit %d items, got %d", models.DefaultLimit, len(items))
	}
	if currentPage != models.DefaultPage {
		t.Fatalf("expected current page %d, got %d", models.DefaultPage, currentPage)
	}
}

func TestPaginateCandidates_SecondPage(t *testing.T) {
	candidates := makeCandidates(15)

	items, totalPage, currentPage := PaginateCandidates(candidates, 2, 10)
	if len(items) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(items))
	}
	if totalPage != 2 || currentPage != 2 {
		t.Fatalf("expected totalPage=2 currentPage=2, got %d and %d", totalPage, currentPage)
	}
	if items[0].FullName != candidates[10].FullName {
		t.Fatalf("page 2 must start at item 10")
	}
}

func TestPaginateCandidates_PastTheEnd(t *testing.T) {
	items, _, currentPage := PaginateCandidates(makeCandidates(5), 3, 10)
	if len(items) != 0 {
		t.Fatalf("expected empty page past the end, got %d items", len(items))
	}
	if currentPage != 0 {
		t.Fatalf("expected currentPage 0 for an empty page, got %d", currentPage)
	}
}
