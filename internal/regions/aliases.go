package regions

import (
	"regexp"
	"strings"
)

// Alias maps a city name or nickname to a state or province code. Aliases are
// scanned linearly and the first one whose pattern matches wins, so the order
// of this table is a contract: more specific names must come before shorter
// ones that could shadow them (e.g. "New York City" before "NYC").
type Alias struct {
	Name string
	Code string

	pattern *regexp.Regexp
}

// CityAliases is the ordered alias table. Keys are matched case-insensitively
// and must be bounded by non-letters (or string edges) in the source text.
var CityAliases = compileAliases([]Alias{
	{Name: "New York City", Code: "NY"},
	{Name: "NYC", Code: "NY"},
	{Name: "Manhattan", Code: "NY"},
	{Name: "Brooklyn", Code: "NY"},
	{Name: "Washington D.C.", Code: "DC"},
	{Name: "Washington DC", Code: "DC"},
	{Name: "San Francisco", Code: "CA"},
	{Name: "Los Angeles", Code: "CA"},
	{Name: "Bay Area", Code: "CA"},
	{Name: "SFO", Code: "CA"},
	{Name: "Chicago", Code: "IL"},
	{Name: "Windy City", Code: "IL"},
	{Name: "Las Vegas", Code: "NV"},
	{Name: "Vegas", Code: "NV"},
	{Name: "Philadelphia", Code: "PA"},
	{Name: "Philly", Code: "PA"},
	{Name: "Pittsburgh", Code: "PA"},
	{Name: "New Orleans", Code: "LA"},
	{Name: "NOLA", Code: "LA"},
	{Name: "Boston", Code: "MA"},
	{Name: "Seattle", Code: "WA"},
	{Name: "Portland", Code: "OR"},
	{Name: "Atlanta", Code: "GA"},
	{Name: "Houston", Code: "TX"},
	{Name: "Austin", Code: "TX"},
	{Name: "Dallas", Code: "TX"},
	{Name: "DFW", Code: "TX"},
	{Name: "Denver", Code: "CO"},
	{Name: "Phoenix", Code: "AZ"},
	{Name: "Nashville", Code: "TN"},
	{Name: "Memphis", Code: "TN"},
	{Name: "Twin Cities", Code: "MN"},
	{Name: "Minneapolis", Code: "MN"},
	{Name: "Salt Lake City", Code: "UT"},
	{Name: "Detroit", Code: "MI"},
	{Name: "Columbus", Code: "OH"},
	{Name: "Cleveland", Code: "OH"},
	{Name: "Toronto", Code: "ON"},
	{Name: "Ottawa", Code: "ON"},
	{Name: "Vancouver", Code: "BC"},
	{Name: "Montreal", Code: "QC"},
	{Name: "Quebec City", Code: "QC"},
	{Name: "Calgary", Code: "AB"},
	{Name: "Edmonton", Code: "AB"},
	{Name: "Winnipeg", Code: "MB"},
	{Name: "Halifax", Code: "NS"},
	{Name: "St. John's", Code: "NL"},
})

// Match reports whether the alias occurs in text, bounded by non-letters.
func (a Alias) Match(text string) bool {
	return a.pattern.MatchString(text)
}

func compileAliases(aliases []Alias) []Alias {
	out := make([]Alias, len(aliases))
	for i, a := range aliases {
		a.pattern = regexp.MustCompile(`(?i)(?:^|[^a-zA-Z])` + regexp.QuoteMeta(a.Name) + `(?:$|[^a-zA-Z])`)
		if !IsState(a.Code) && !IsProvince(a.Code) {
			panic("alias " + a.Name + " maps to unknown code " + a.Code)
		}
		out[i] = a
	}
	return out
}

// AliasKind returns the alphabet of an alias target. Alias targets are only
// ever states or provinces.
func AliasKind(code string) Kind {
	if IsProvince(strings.ToUpper(code)) {
		return Province
	}
	return State
}
