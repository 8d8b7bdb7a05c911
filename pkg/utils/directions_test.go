package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danuarts/stylora-backend/app/models"
)

func testClient(serverURL string) *RoutingClient {
	return &RoutingClient{
		BaseURL:    serverURL,
		APIKey:     "test-key",
		Client:     &http.Client{Timeout: 2 * time.Second},
		MaxRetries: 2,
	}
}

func TestGetRoute_ConvertsMetersToMiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected api key in query, got %q", r.URL.Query().Get("key"))
		}
		w.Write([]byte(`{"routes":[{"distance":3218.68,"duration":420}]}`))
	}))
	defer server.Close()

	leg, err := testClient(server.URL).GetRoute(context.Background(), 12.97, 77.59, 12.90, 77.50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3218.68 m is 2 miles.
	if leg.DistanceMiles < 1.99 || leg.DistanceMiles > 2.01 {
		t.Fatalf("expected ~2 miles, got %v", leg.DistanceMiles)
	}
	if leg.DurationSeconds != 420 {
		t.Fatalf("expected duration 420s, got %v", leg.DurationSeconds)
	}
}

func TestGetRoute_ServerErrorIsFatal(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetRoute(context.Background(), 1, 2, 3, 4)
	if !errors.Is(err, ErrRoutingService) {
		t.Fatalf("expected ErrRoutingService, got %v", err)
	}
	// HTTP errors are not transient; no retry.
	if calls.Load() != 1 {
		t.Fatalf("expected single call on server error, got %d", calls.Load())
	}
}

func TestGetRoute_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"routes":[]}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetRoute(context.Background(), 1, 2, 3, 4)
	if !errors.Is(err, ErrRoutingService) {
		t.Fatalf("expected ErrRoutingService on empty routes, got %v", err)
	}
}

func TestGetRoute_RetriesTransportFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// drop the first connection mid-flight
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("response writer does not support hijacking")
			}
			conn, _, _ := hj.Hijack()
			conn.Close()
			return
		}
		w.Write([]byte(`{"routes":[{"distance":1609.34,"duration":60}]}`))
	}))
	defer server.Close()

	leg, err := testClient(server.URL).GetRoute(context.Background(), 1, 2, 3, 4)
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
	if leg.DistanceMiles < 0.99 || leg.DistanceMiles > 1.01 {
		t.Fatalf("expected ~1 mile, got %v", leg.DistanceMiles)
	}
}

func TestGetRoute_NotConfigured(t *testing.T) {
	rc := &RoutingClient{Client: &http.Client{}}
	if _, err := rc.GetRoute(context.Background(), 1, 2, 3, 4); err == nil {
		t.Fatal("expected error when routing client is not configured")
	}
}

func TestEnrichTravelInfo_PreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// distance echoes the origin latitude so each candidate gets a
		// distinguishable value
		lat := r.URL.Query().Get("origin")
		switch lat[0] {
		case '1':
			w.Write([]byte(`{"routes":[{"distance":1609.34,"duration":100}]}`))
		case '2':
			w.Write([]byte(`{"routes":[{"distance":3218.68,"duration":200}]}`))
		default:
			w.Write([]byte(`{"routes":[{"distance":4828.02,"duration":300}]}`))
		}
	}))
	defer server.Close()

	candidates := []models.StylistCandidate{
		{ID: uuid.New(), FullName: "first", Location: models.GeoPoint{Lat: 1, Lng: 1}},
		{ID: uuid.New(), FullName: "second", Location: models.GeoPoint{Lat: 2, Lng: 2}},
		{ID: uuid.New(), FullName: "third", Location: models.GeoPoint{Lat: 3, Lng: 3}},
	}

	enriched, err := testClient(server.URL).EnrichTravelInfo(context.Background(), candidates, models.GeoPoint{Lat: 9, Lng: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(enriched) != 3 {
		t.Fatalf("expected 3 enriched candidates, got %d", len(enriched))
	}
	for i, want := range []string{"first", "second", "third"} {
		if enriched[i].FullName != want {
			t.Fatalf("order not preserved: index %d is %q, want %q", i, enriched[i].FullName, want)
		}
	}
	if enriched[0].Duration != 100 || enriched[1].Duration != 200 || enriched[2].Duration != 300 {
		t.Fatalf("durations not attached per candidate: %v %v %v",
			enriched[0].Duration, enriched[1].Duration, enriched[2].Duration)
	}
	// inputs stay untouched
	if candidates[0].Duration != 0 {
		t.Fatalf("enrichment must not mutate its input")
	}
}

func TestEnrichTravelInfo_SingleFailureFailsAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("origin")[0] == '2' {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"routes":[{"distance":1609.34,"duration":60}]}`))
	}))
	defer server.Close()

	candidates := []models.StylistCandidate{
		{ID: uuid.New(), Location: models.GeoPoint{Lat: 1, Lng: 1}},
		{ID: uuid.New(), Location: models.GeoPoint{Lat: 2, Lng: 2}},
	}

	enriched, err := testClient(server.URL).EnrichTravelInfo(context.Background(), candidates, models.GeoPoint{Lat: 9, Lng: 9})
	if !errors.Is(err, ErrRoutingService) {
		t.Fatalf("expected ErrRoutingService, got %v", err)
	}
	if enriched != nil {
		t.Fatalf("expected no partial result on failure, got %d candidates", len(enriched))
	}
}
