package mapview

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"travelmap/internal/cache"
)

// Boundary data sources. Proxied so the page does not depend on third party
// CORS policy, and cached because the files never change day to day.
var geoJSONSources = map[string]string{
	"us":     "https://raw.githubusercontent.com/PublicaMundi/MappingAPI/master/data/geojson/us-states.json",
	"canada": "https://raw.githubusercontent.com/codeforamerica/click_that_hood/master/public/data/canada.geojson",
	"world":  "https://raw.githubusercontent.com/johan/world.geo.json/master/countries.geo.json",
}

const geoJSONCacheTTL = 24 * time.Hour

// GeoJSONProxy serves cached copies of the boundary files under /geojson/.
type GeoJSONProxy struct {
	client *retryablehttp.Client
	cache  cache.Cache
}

func NewGeoJSONProxy(c cache.Cache) *GeoJSONProxy {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 30 * time.Second
	client.Logger = slog.Default()
	return &GeoJSONProxy{client: client, cache: c}
}

func (p *GeoJSONProxy) Register(mux *http.ServeMux) {
	mux.HandleFunc("/geojson/", p.serve)
}

func (p *GeoJSONProxy) serve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path[len("/geojson/"):]
	src, ok := geoJSONSources[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	body, err := p.fetch(r, src)
	if err != nil {
		slog.ErrorContext(r.Context(), "geojson fetch failed", "layer", name, "error", err)
		http.Error(w, "boundary data unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.WriteString(w, body); err != nil {
		slog.ErrorContext(r.Context(), "failed to write geojson", "layer", name, "error", err)
	}
}

func (p *GeoJSONProxy) fetch(r *http.Request, src string) (string, error) {
	key := "geojson/" + cache.Key(src)
	if body, ok := p.cache.Get(key); ok {
		return body, nil
	}

	req, err := retryablehttp.NewRequestWithContext(r.Context(), http.MethodGet, src, nil)
	if err != nil {
		return "", fmt.Errorf("build geojson request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch geojson: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch geojson: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read geojson: %w", err)
	}

	if err := p.cache.SetTTL(key, string(body), geoJSONCacheTTL); err != nil {
		slog.WarnContext(r.Context(), "failed to cache geojson", "source", src, "error", err)
	}
	return string(body), nil
}
