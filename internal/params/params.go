// Package params decodes the URL query surface into the normalized input the
// classification engine consumes. Invalid tokens are dropped, never surfaced:
// a half-broken query still renders a map with whatever survived validation.
package params

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"travelmap/internal/regions"
)

// DefaultTitle is used when no title parameter survives sanitization.
const DefaultTitle = "Travel Map"

// maxCount rejects pathological trip counts smuggled in through the URL.
const maxCount = 100000

const maxTitleLen = 100

// DecodedInput is the normalized shape shared by the query path and the wiki
// scrape path. Lists keep their query order, deduplicated; count maps only
// ever hold validated codes with positive counts.
type DecodedInput struct {
	Work          []string
	Personal      []string
	Prov          []string
	ProvPers      []string
	WorkCountries []string
	PersCountries []string

	WorkFuture          []string
	PersonalFuture      []string
	ProvFuture          []string
	PersCountriesFuture []string

	WorkTrips       map[string]int
	PersTrips       map[string]int
	WorkTripsFuture map[string]int
	PersTripsFuture map[string]int

	Title string
}

// Recognized reports whether the query carries any travel parameter at all,
// which is how the server decides between the query path and the scrape path.
func Recognized(q url.Values) bool {
	for _, key := range []string{
		"work", "personal", "prov", "provPers", "workCountries", "persCountries",
		"workFuture", "personalFuture", "provFuture", "persCountriesFuture",
		"workTrips", "persTrips", "workTripsFuture", "persTripsFuture",
	} {
		if q.Get(key) != "" {
			return true
		}
	}
	return false
}

// Decode validates every parameter independently. There are no cross-field
// checks here; future-exceeds-total inconsistencies are the engine's problem.
func Decode(q url.Values) *DecodedInput {
	return &DecodedInput{
		Work:          codeList(q.Get("work"), regions.State),
		Personal:      codeList(q.Get("personal"), regions.State),
		Prov:          codeList(q.Get("prov"), regions.Province),
		ProvPers:      codeList(q.Get("provPers"), regions.Province),
		WorkCountries: codeList(q.Get("workCountries"), regions.Country),
		PersCountries: codeList(q.Get("persCountries"), regions.Country),

		WorkFuture:          codeList(q.Get("workFuture"), regions.State),
		PersonalFuture:      codeList(q.Get("personalFuture"), regions.State),
		ProvFuture:          codeList(q.Get("provFuture"), regions.Province),
		PersCountriesFuture: codeList(q.Get("persCountriesFuture"), regions.Country),

		WorkTrips:       countMap(q.Get("workTrips")),
		PersTrips:       countMap(q.Get("persTrips")),
		WorkTripsFuture: countMap(q.Get("workTripsFuture")),
		PersTripsFuture: countMap(q.Get("persTripsFuture")),

		Title: SanitizeTitle(q.Get("title")),
	}
}

// codeList splits a comma separated parameter and keeps only tokens that are
// the right length for the alphabet and members of it, deduplicated in order.
func codeList(raw string, kind regions.Kind) []string {
	if raw == "" {
		return nil
	}
	codes := lo.FilterMap(strings.Split(raw, ","), func(tok string, _ int) (string, bool) {
		code := strings.ToUpper(strings.TrimSpace(tok))
		return code, len(code) == regions.CodeLen(kind) && regions.Valid(code, kind)
	})
	return lo.Uniq(codes)
}

// countMap parses "CODE:COUNT,CODE:COUNT" pair lists. A pair survives only if
// the code validates in some alphabet and the count is a positive integer
// under the sanity bound. Later pairs for the same code overwrite earlier ones.
func countMap(raw string) map[string]int {
	if raw == "" {
		return nil
	}
	counts := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		code, countStr, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		countStr = strings.TrimSpace(countStr)
		if code == "" || countStr == "" {
			continue
		}
		if !regions.IsState(code) && !regions.IsProvince(code) && !regions.IsCountry(code) {
			continue
		}
		count, err := strconv.Atoi(countStr)
		if err != nil || count <= 0 || count >= maxCount {
			continue
		}
		counts[code] = count
	}
	if len(counts) == 0 {
		return nil
	}
	return counts
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeTitle strips markup and the characters that could break out of the
// rendered page, then truncates. Empty results fall back to the default.
func SanitizeTitle(raw string) string {
	title := tagPattern.ReplaceAllString(raw, "")
	title = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '\'', '`':
			return -1
		}
		return r
	}, title)
	title = strings.TrimSpace(title)
	// Truncate by rune, a byte slice could cut a multi-byte character in half.
	if runes := []rune(title); len(runes) > maxTitleLen {
		title = strings.TrimSpace(string(runes[:maxTitleLen]))
	}
	if title == "" {
		return DefaultTitle
	}
	return title
}
