package controllers

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/danuarts/stylora-backend/app/models"
	"github.com/danuarts/stylora-backend/pkg/utils"
)

// captureFilters runs parseSearchFilters inside a real fiber request so query
// parsing behaves exactly as in the handlers.
func captureFilters(t *testing.T, target string, defaultLevels []string) models.SearchFilters {
	t.Helper()

	var got models.SearchFilters
	app := fiber.New()
	app.Get("/search", func(c *fiber.Ctx) error {
		got = parseSearchFilters(c, defaultLevels)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode)
	}
	return got
}

func TestParseSearchFilters_Defaults(t *testing.T) {
	got := captureFilters(t, "/search", []string{models.ExperienceSenior})

	if got.Page != models.DefaultPage || got.Limit != models.DefaultLimit {
		t.Fatalf("expected default page/limit, got %d/%d", got.Page, got.Limit)
	}
	if got.RatingFilter != 0 {
		t.Fatalf("expected rating filter 0, got %d", got.RatingFilter)
	}
	if got.Sort != models.SortAvgRating {
		t.Fatalf("expected default sort, got %q", got.Sort)
	}
	if !reflect.DeepEqual(got.StylistLevels, []string{models.ExperienceSenior}) {
		t.Fatalf("expected default levels, got %v", got.StylistLevels)
	}
	if got.GenderFilter != nil {
		t.Fatalf("expected no gender filter, got %v", got.GenderFilter)
	}
}

func TestParseSearchFilters_BadNumbersFallBack(t *testing.T) {
	got := captureFilters(t, "/search?page=abc&limit=-3&rating_filter=x", []string{models.ExperienceSenior})

	if got.Page != models.DefaultPage {
		t.Fatalf("unparseable page must fall back, got %d", got.Page)
	}
	if got.Limit != models.DefaultLimit {
		t.Fatalf("non-positive limit must fall back, got %d", got.Limit)
	}
	if got.RatingFilter != 0 {
		t.Fatalf("unparseable rating must fall back, got %d", got.RatingFilter)
	}
}

func TestParseSearchFilters_SplitsCSV(t *testing.T) {
	got := captureFilters(t, "/search?gender_filter=men,%20women,&stylist_level=advanced,senior", nil)

	if !reflect.DeepEqual(got.GenderFilter, []string{"men", "women"}) {
		t.Fatalf("unexpected gender filter %v", got.GenderFilter)
	}
	if !reflect.DeepEqual(got.StylistLevels, []string{models.ExperienceAdvanced, models.ExperienceSenior}) {
		t.Fatalf("unexpected levels %v", got.StylistLevels)
	}
}

func TestParseSearchFilters_StylistTypeAlias(t *testing.T) {
	got := captureFilters(t, "/search?stylist_type=junior", []string{models.ExperienceSenior})

	if !reflect.DeepEqual(got.StylistLevels, []string{models.ExperienceJunior}) {
		t.Fatalf("stylist_type must be honored when stylist_level is absent, got %v", got.StylistLevels)
	}

	got = captureFilters(t, "/search?stylist_level=senior&stylist_type=junior", nil)
	if !reflect.DeepEqual(got.StylistLevels, []string{models.ExperienceSenior}) {
		t.Fatalf("stylist_level must win over stylist_type, got %v", got.StylistLevels)
	}
}

func TestParseSearchFilters_ExplicitValues(t *testing.T) {
	got := captureFilters(t, "/search?page=3&limit=5&rating_filter=4&search=an&name_filter=anna&sort=most_preferred", nil)

	if got.Page != 3 || got.Limit != 5 || got.RatingFilter != 4 {
		t.Fatalf("explicit numbers not carried: %+v", got)
	}
	if got.Search != "an" || got.NameFilter != "anna" {
		t.Fatalf("text filters not carried: %+v", got)
	}
	if got.Sort != models.SortMostPreferred {
		t.Fatalf("expected most_preferred sort, got %q", got.Sort)
	}
}

func TestDiscoveryError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"no active location", utils.ErrNoActiveLocation, fiber.StatusPreconditionFailed},
		{"wrapped no active location", fmt.Errorf("resolve address: %w", utils.ErrNoActiveLocation), fiber.StatusPreconditionFailed},
		{"routing failure", fmt.Errorf("%w: status 500", utils.ErrRoutingService), fiber.StatusBadGateway},
		{"anything else", errors.New("unable to search stylists, DB error"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/fail", func(c *fiber.Ctx) error {
				return discoveryError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestSplitCSV(t *testing.T) {
	if got := splitCSV(""); got != nil {
		t.Fatalf("empty input must yield nil, got %v", got)
	}
	if got := splitCSV(" men , ,women "); !reflect.DeepEqual(got, []string{"men", "women"}) {
		t.Fatalf("unexpected split %v", got)
	}
}
