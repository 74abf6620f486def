package mapview

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"travelmap/internal/cache"
	"travelmap/internal/params"
	"travelmap/internal/stats"
)

func isValidHTML(t *testing.T, htmlStr string) {
	t.Helper()
	if htmlStr == "" {
		t.Fatal("rendered HTML is empty")
	}
	if _, err := html.Parse(bytes.NewBufferString(htmlStr)); err != nil {
		t.Fatalf("rendered HTML is not valid: %v", err)
	}
}

func renderQuery(t *testing.T, query string) string {
	t.Helper()
	q, err := url.ParseQuery(query)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, stats.Classify(params.Decode(q))); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return buf.String()
}

func TestRenderValidHTML(t *testing.T) {
	page := renderQuery(t, "work=NY,CA&personal=OH&workTrips=NY:5&prov=ON&title=My+Trips")
	isValidHTML(t, page)

	for _, want := range []string{
		"<title>My Trips</title>",
		`"NY":"work"`,
		`"OH":"personal"`,
		`"maxTrips":5`,
		"/geojson/us",
		"/geojson/canada",
		"New York",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRenderEmptyMap(t *testing.T) {
	page := renderQuery(t, "")
	isValidHTML(t, page)
	if !strings.Contains(page, params.DefaultTitle) {
		t.Error("empty map should carry the default title")
	}
	if strings.Contains(page, "/geojson/world") {
		t.Error("world layer should only load when countries are present")
	}
}

func TestRenderCountriesEnablesWorldLayer(t *testing.T) {
	page := renderQuery(t, "workCountries=FRA,JPN")
	isValidHTML(t, page)
	if !strings.Contains(page, "/geojson/world") {
		t.Error("world layer missing despite visited countries")
	}
}

func TestRenderFutureOnlyCountryEnablesWorldLayer(t *testing.T) {
	// A planned-only country never shows up in the visited summary count, but
	// it still needs the world layer to get shaded.
	page := renderQuery(t, "persCountriesFuture=ITA")
	isValidHTML(t, page)
	if !strings.Contains(page, `"ITA":"futureOnly"`) {
		t.Fatal("expected ITA classified as futureOnly")
	}
	if !strings.Contains(page, "/geojson/world") {
		t.Error("world layer missing for a planned country")
	}
}

func TestRenderEscapesNothingDangerous(t *testing.T) {
	// Title sanitization happens in params; rendering must still be safe for
	// whatever survives.
	page := renderQuery(t, "work=NY&title=a+%3Cb%3E+c")
	isValidHTML(t, page)
	if strings.Contains(page, "<b>") {
		t.Error("markup leaked into the rendered page")
	}
}

func TestGeoJSONProxyServesAndCaches(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer upstream.Close()

	oldSrc := geoJSONSources["us"]
	geoJSONSources["us"] = upstream.URL
	defer func() { geoJSONSources["us"] = oldSrc }()

	proxy := NewGeoJSONProxy(cache.NewInMemoryCache())
	mux := http.NewServeMux()
	proxy.Register(mux)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/geojson/us", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q", got)
		}
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1 (second hit should be cached)", calls)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/geojson/mars", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown layer status = %d, want 404", rec.Code)
	}
}
