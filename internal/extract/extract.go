// Package extract pulls state and province codes out of free-text location
// strings ("Madison, WI", "Toronto, ON, Canada", "Remote - NYC office").
//
// Extraction runs an ordered chain of strategies and the first one that
// produces a match wins; later strategies are never consulted. A two letter
// token that is valid in neither alphabet is not an error, it just lets the
// next strategy have a look.
package extract

import (
	"regexp"
	"strings"

	"travelmap/internal/regions"
)

// Match is a code pulled out of text together with the alphabet it belongs to.
type Match struct {
	Code string       `json:"code"`
	Kind regions.Kind `json:"kind"`
}

type strategy func(text string) *Match

// The chain, in priority order. Aliases outrank everything so "NYC" wins over
// a stray two letter token; the Canada check outranks the generic comma rules
// so "Toronto, ON, Canada" is read as a province and not rejected as a state.
var strategies = []strategy{
	matchAlias,
	matchCanadaQualified,
	matchCommaSuffix,
	matchEndOfString,
	matchAnyToken,
}

var (
	canadaPattern = regexp.MustCompile(`(?i)\bcanada\b`)
	tokenPattern  = regexp.MustCompile(`\b([A-Za-z]{2})\b`)
	commaPattern  = regexp.MustCompile(`,\s*([A-Za-z]{2})(?:\s*$|\s*,|\s*\d|[^A-Za-z0-9])`)
	endPattern    = regexp.MustCompile(`\b([A-Za-z]{2})$`)

	// Separators for multi-location text like "OH & MI" or "Austin and Houston".
	splitPattern = regexp.MustCompile(`(?i)\s*(?:&|\+|/|\band\b)\s*`)
)

// One extracts a single location from text, or nil when nothing matches.
func One(text string) *Match {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	for _, try := range strategies {
		if m := try(text); m != nil {
			return m
		}
	}
	return nil
}

// All splits text on the multi-location separators, extracts each part, and
// returns the matches in first-seen order with duplicate codes dropped.
func All(text string) []Match {
	var out []Match
	seen := make(map[string]bool)
	for _, part := range splitPattern.Split(text, -1) {
		m := One(part)
		if m == nil || seen[m.Code] {
			continue
		}
		seen[m.Code] = true
		out = append(out, *m)
	}
	return out
}

func matchAlias(text string) *Match {
	for _, alias := range regions.CityAliases {
		if alias.Match(text) {
			return &Match{Code: alias.Code, Kind: regions.AliasKind(alias.Code)}
		}
	}
	return nil
}

// matchCanadaQualified handles "City, XX, Canada" and looser variants: any
// mention of Canada makes every two letter token a province candidate.
func matchCanadaQualified(text string) *Match {
	if !canadaPattern.MatchString(text) {
		return nil
	}
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		code := strings.ToUpper(m[1])
		if regions.IsProvince(code) {
			return &Match{Code: code, Kind: regions.Province}
		}
	}
	return nil
}

// matchCommaSuffix handles "City, ST", "City, ST 53703" and "City, ST, USA".
func matchCommaSuffix(text string) *Match {
	for _, m := range commaPattern.FindAllStringSubmatch(text, -1) {
		if match := classify(m[1]); match != nil {
			return match
		}
	}
	return nil
}

func matchEndOfString(text string) *Match {
	m := endPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil
	}
	return classify(m[1])
}

// matchAnyToken is the last resort: any bare two letter token anywhere.
func matchAnyToken(text string) *Match {
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		if match := classify(m[1]); match != nil {
			return match
		}
	}
	return nil
}

// classify validates a candidate token, states before provinces.
func classify(token string) *Match {
	code := strings.ToUpper(token)
	if regions.IsState(code) {
		return &Match{Code: code, Kind: regions.State}
	}
	if regions.IsProvince(code) {
		return &Match{Code: code, Kind: regions.Province}
	}
	return nil
}
