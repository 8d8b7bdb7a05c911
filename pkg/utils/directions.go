package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danuarts/stylora-backend/app/models"
)

// enrichWorkers bounds the concurrent directions calls so a single search
// page cannot overrun the routing API rate limit.
const enrichWorkers = 4

// RoutingClient calls the external directions API. Configure endpoint and
// key with ROUTING_API_URL and ROUTING_API_KEY environment variables.
type RoutingClient struct {
	BaseURL    string
	APIKey     string
	Client     *http.Client
	MaxRetries int
}

func NewRoutingClient() *RoutingClient {
	return &RoutingClient{
		BaseURL:    os.Getenv("ROUTING_API_URL"),
		APIKey:     os.Getenv("ROUTING_API_KEY"),
		Client:     &http.Client{Timeout: 10 * time.Second},
		MaxRetries: 2,
	}
}

// RouteLeg is the travel info attached to one candidate.
type RouteLeg struct {
	DistanceMiles   float64
	DurationSeconds float64
}

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// GetRoute fetches driving distance and duration between two points.
// Transport failures are retried up to MaxRetries times; a non-200 status or
// a malformed body fails immediately.
func (rc *RoutingClient) GetRoute(ctx context.Context, originLat, originLng, destLat, destLng float64) (RouteLeg, error) {
	if rc.BaseURL == "" || rc.APIKey == "" {
		return RouteLeg{}, errors.New("routing service not configured")
	}

	url := fmt.Sprintf("%s?origin=%s,%s&destination=%s,%s&key=%s",
		rc.BaseURL,
		strconv.FormatFloat(originLat, 'f', -1, 64),
		strconv.FormatFloat(originLng, 'f', -1, 64),
		strconv.FormatFloat(destLat, 'f', -1, 64),
		strconv.FormatFloat(destLng, 'f', -1, 64),
		rc.APIKey,
	)

	var lastErr error
	for attempt := 0; attempt <= rc.MaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return RouteLeg{}, err
		}

		resp, err := rc.Client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return RouteLeg{}, fmt.Errorf("%w: directions returned status %d", ErrRoutingService, resp.StatusCode)
		}

		var parsed directionsResponse
		err = json.NewDecoder(resp.Body).Decode(&parsed)
		resp.Body.Close()
		if err != nil {
			return RouteLeg{}, fmt.Errorf("%w: malformed directions response", ErrRoutingService)
		}
		if len(parsed.Routes) == 0 {
			return RouteLeg{}, fmt.Errorf("%w: directions response has no routes", ErrRoutingService)
		}

		return RouteLeg{
			DistanceMiles:   parsed.Routes[0].Distance * MilesPerMeter,
			DurationSeconds: parsed.Routes[0].Duration,
		}, nil
	}

	return RouteLeg{}, fmt.Errorf("%w: %v", ErrRoutingService, lastErr)
}

// EnrichTravelInfo attaches distance and duration to every candidate of an
// already-paginated page. Calls fan out over a bounded worker pool and write
// results by index, so output order matches input order. Any single failure
// fails the whole enrichment; candidates are never returned with partial
// travel data.
func (rc *RoutingClient) EnrichTravelInfo(ctx context.Context, candidates []models.StylistCandidate, dest models.GeoPoint) ([]models.StylistCandidate, error) {
	enriched := make([]models.StylistCandidate, len(candidates))
	copy(enriched, candidates)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichWorkers)

	for i := range enriched {
		i := i
		g.Go(func() error {
			cand := enriched[i]
			leg, err := rc.GetRoute(ctx, cand.Location.Lat, cand.Location.Lng, dest.Lat, dest.Lng)
			if err != nil {
				return fmt.Errorf("stylist %s: %w", cand.ID, err)
			}
			enriched[i].Distance = leg.DistanceMiles
			enriched[i].Duration = leg.DurationSeconds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}
