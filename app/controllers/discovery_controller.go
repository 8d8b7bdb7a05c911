package controllers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/danuarts/stylora-backend/app/models"
	"github.com/danuarts/stylora-backend/app/queries"
	"github.com/danuarts/stylora-backend/pkg/database"
	"github.com/danuarts/stylora-backend/pkg/utils"
)

// SearchStylists is the customer-facing stylist search. Defaults to senior
// stylists and applies the customer's saved gender preference on top of the
// explicit filters.
func SearchStylists(c *fiber.Ctx) error {
	customerID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	customerQueries := queries.CustomerQueries{DB: database.DB}
	customer, err := customerQueries.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Customer not found", "data": emptyResult()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filters := parseSearchFilters(c, []string{models.ExperienceSenior})
	filters.Preference = customer.Preference

	result, err := runDiscovery(c.Context(), customerID, filters)
	if err != nil {
		return discoveryError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Stylist found successfully.", "data": result})
}

// ActiveStylists lists stylists around the customer's active address with
// the browse defaults: advanced and senior experience tiers.
func ActiveStylists(c *fiber.Ctx) error {
	customerID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	customerQueries := queries.CustomerQueries{DB: database.DB}
	if _, err := customerQueries.GetCustomerByID(customerID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "No records found.", "data": emptyResult()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filters := parseSearchFilters(c, []string{models.ExperienceAdvanced, models.ExperienceSenior})

	result, err := runDiscovery(c.Context(), customerID, filters)
	if err != nil {
		return discoveryError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Active stylist found successfully.", "data": result})
}

// ActiveStylistCount reports how many stylists are currently online and
// accepted. Public endpoint.
func ActiveStylistCount(c *fiber.Ctx) error {
	stylistQueries := queries.StylistQueries{DB: database.DB}
	cnt, err := stylistQueries.CountActiveStylists()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"active_stylist": cnt})
}

// runDiscovery is the discovery pipeline: eligibility guards, the two geo
// pool queries (run concurrently, merged online-first), rank, paginate, then
// travel-info enrichment on the final page only.
func runDiscovery(ctx context.Context, customerID uuid.UUID, filters models.SearchFilters) (models.PaginatedResult, error) {
	customerQueries := queries.CustomerQueries{DB: database.DB}
	configQueries := queries.ConfigQueries{DB: database.DB}
	stylistQueries := queries.StylistQueries{DB: database.DB}

	address, err := customerQueries.GetActiveAddress(customerID)
	if err != nil {
		return models.PaginatedResult{}, err
	}

	radius, err := configQueries.GetStylistSearchRadius()
	if err != nil {
		return models.PaginatedResult{}, err
	}

	blocked, err := customerQueries.GetBlockedStylistIDs(customerID)
	if err != nil {
		return models.PaginatedResult{}, err
	}

	center := models.GeoPoint{Lat: address.Lat, Lng: address.Lng}

	var onlinePool, offlinePool []models.StylistCandidate
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		onlinePool, err = stylistQueries.SearchPool(models.PoolOnline, center, radius, customerID, blocked, filters)
		return err
	})
	g.Go(func() error {
		var err error
		offlinePool, err = stylistQueries.SearchPool(models.PoolOffline, center, radius, customerID, blocked, filters)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.PaginatedResult{}, err
	}

	merged := utils.MergePools(onlinePool, offlinePool)
	utils.RankCandidates(merged, filters.Sort)
	pageItems, totalPage, currentPage := utils.PaginateCandidates(merged, filters.Page, filters.Limit)

	if len(pageItems) > 0 {
		routing := utils.NewRoutingClient()
		pageItems, err = routing.EnrichTravelInfo(ctx, pageItems, center)
		if err != nil {
			return models.PaginatedResult{}, err
		}
	}

	return models.PaginatedResult{
		TotalPage:   totalPage,
		CurrentPage: currentPage,
		Result:      pageItems,
	}, nil
}

// parseSearchFilters reads the discovery filter contract from query
// parameters. Unparseable page/limit/rating fall back to safe defaults
// instead of failing the request. defaultLevels is the caller-declared
// experience default applied when the client names none.
func parseSearchFilters(c *fiber.Ctx, defaultLevels []string) models.SearchFilters {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page <= 0 {
		page = models.DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		limit = models.DefaultLimit
	}
	rating, err := strconv.Atoi(c.Query("rating_filter"))
	if err != nil || rating < 0 {
		rating = 0
	}

	genderFilter := splitCSV(c.Query("gender_filter"))

	levels := splitCSV(c.Query("stylist_level"))
	if len(levels) == 0 {
		levels = splitCSV(c.Query("stylist_type"))
	}
	if len(levels) == 0 {
		levels = defaultLevels
	}

	return models.SearchFilters{
		Page:          page,
		Limit:         limit,
		Search:        c.Query("search"),
		GenderFilter:  genderFilter,
		RatingFilter:  rating,
		NameFilter:    c.Query("name_filter"),
		StylistLevels: levels,
		Sort:          c.Query("sort", models.SortAvgRating),
	}
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(value, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// discoveryError maps pipeline failures to the response taxonomy: a missing
// active address is a precondition failure, routing errors are upstream
// failures, anything else is reported generically.
func discoveryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, utils.ErrNoActiveLocation):
		return c.Status(fiber.StatusPreconditionFailed).JSON(fiber.Map{"error": "No active location found."})
	case errors.Is(err, utils.ErrRoutingService):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func emptyResult() models.PaginatedResult {
	return models.PaginatedResult{TotalPage: 1, CurrentPage: 1, Result: []models.StylistCandidate{}}
}
