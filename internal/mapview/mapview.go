// Package mapview renders the interactive Leaflet page from the engine
// output. The page is self contained: the region stats are inlined as JSON
// and the boundary layers load through the GeoJSON proxy.
package mapview

import (
	"embed"
	"encoding/json"
	"html/template"
	"io"

	"github.com/samber/lo"

	"travelmap/internal/regions"
	"travelmap/internal/stats"
)

//go:embed map.html
var htmlFiles embed.FS

var mapTemplate = ensure(template.Must(template.ParseFS(htmlFiles, "*.html")), "map.html")

func ensure(templates *template.Template, name string) *template.Template {
	tmpl := templates.Lookup(name)
	if tmpl == nil {
		panic("template " + name + " not found")
	}
	return tmpl
}

type pageData struct {
	Title        string
	Summary      stats.Summary
	HasCountries bool
	StatsJSON    template.JS
	NamesJSON    template.JS
}

// Render writes the full HTML document for the given engine output.
func Render(w io.Writer, st *stats.RegionStats) error {
	return mapTemplate.Execute(w, pageData{
		Title:        st.Title,
		Summary:      st.Summary,
		HasCountries: hasCountries(st),
		StatsJSON:    template.JS(lo.Must(json.Marshal(st))),
		NamesJSON:    template.JS(lo.Must(json.Marshal(displayNames()))),
	})
}

// hasCountries reports whether any country shows up at all, visited or only
// planned. Summary.Countries counts visited ones, which would skip the world
// layer for a purely future country.
func hasCountries(st *stats.RegionStats) bool {
	for code := range st.Categories {
		if regions.IsCountry(code) {
			return true
		}
	}
	return false
}

// displayNames merges all three alphabets; the page indexes it by whatever
// code a GeoJSON feature resolves to.
func displayNames() map[string]string {
	names := make(map[string]string, len(regions.StateNames)+len(regions.ProvinceNames)+len(regions.CountryNames))
	for code, name := range regions.StateNames {
		names[code] = name
	}
	for code, name := range regions.ProvinceNames {
		names[code] = name
	}
	for code, name := range regions.CountryNames {
		names[code] = name
	}
	return names
}
