package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"dateline/internal/cache"
	"dateline/internal/model"
)

const searchPayload = `[
	{"display_name": "Kamareddy, Telangana, India", "lat": "18.3208", "lon": "78.3440", "class": "place", "type": "town", "importance": 0.52},
	{"display_name": "", "lat": "1.0", "lon": "2.0"},
	{"display_name": "Kamareddy district", "lat": "not-a-number", "lon": "78.0"},
	{"display_name": "Kamareddy mandal", "lat": "18.31", "lon": "78.35", "class": "boundary", "type": "administrative", "importance": 0.41}
]`

func newTestServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			http.NotFound(w, r)
		case "/search":
			hits.Add(1)
			if r.URL.Query().Get("format") != "json" {
				t.Errorf("format = %q, want json", r.URL.Query().Get("format"))
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(searchPayload))
		default:
			http.NotFound(w, r)
		}
	}))
}

func testConfig(baseURL string) (model.PlacesConfig, model.HTTPConfig) {
	placesCfg := model.PlacesConfig{
		BaseURL:        baseURL,
		RatePerSecond:  100,
		Burst:          10,
		MaxResults:     5,
		RequestTimeout: 5 * time.Second,
	}
	httpCfg := model.HTTPConfig{
		UserAgent: "dateline-test/1.0",
	}
	return placesCfg, httpCfg
}

func TestSearch_ValidatesEntries(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits)
	defer server.Close()

	cfg, httpCfg := testConfig(server.URL)
	client := NewClient(cfg, httpCfg, nil)

	places, err := client.Search(context.Background(), "Kamareddy")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// The empty-name and bad-coordinate entries are skipped
	if len(places) != 2 {
		t.Fatalf("len(places) = %d, want 2", len(places))
	}
	if places[0].DisplayName != "Kamareddy, Telangana, India" {
		t.Errorf("DisplayName = %q", places[0].DisplayName)
	}
	if places[0].Lat != 18.3208 || places[0].Lon != 78.3440 {
		t.Errorf("coords = (%v, %v)", places[0].Lat, places[0].Lon)
	}
	if places[1].Type != "administrative" {
		t.Errorf("Type = %q, want administrative", places[1].Type)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	cfg, httpCfg := testConfig("http://unused.invalid")
	client := NewClient(cfg, httpCfg, nil)

	if _, err := client.Search(context.Background(), "   "); err == nil {
		t.Error("expected error for empty query")
	}
}

func TestSearch_CacheHit(t *testing.T) {
	var hits atomic.Int64
	server := newTestServer(t, &hits)
	defer server.Close()

	cfg, httpCfg := testConfig(server.URL)
	client := NewClient(cfg, httpCfg, cache.NewMemoryCache(time.Minute, time.Minute))

	for i := 0; i < 3; i++ {
		places, err := client.Search(context.Background(), "Kamareddy")
		if err != nil {
			t.Fatalf("Search #%d: %v", i+1, err)
		}
		if len(places) != 2 {
			t.Fatalf("Search #%d: len(places) = %d, want 2", i+1, len(places))
		}
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1 (cache should serve repeats)", got)
	}
}

func TestSearch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	cfg, httpCfg := testConfig(server.URL)
	client := NewClient(cfg, httpCfg, nil)

	if _, err := client.Search(context.Background(), "Kamareddy"); err == nil {
		t.Error("expected error on HTTP 502")
	}
}

func TestSearch_RobotsDisallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /search\n"))
			return
		}
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	cfg, httpCfg := testConfig(server.URL)
	client := NewClient(cfg, httpCfg, nil)

	if _, err := client.Search(context.Background(), "Kamareddy"); err == nil {
		t.Error("expected error when robots.txt disallows the endpoint")
	}
}
