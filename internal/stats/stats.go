// Package stats turns decoded travel input into the per-region classification
// and the summary numbers the map page renders. Everything here is a pure
// function of its input; missing counts read as zero and inconsistent input
// degrades instead of erroring.
package stats

import (
	"math"
	"sort"

	"travelmap/internal/params"
	"travelmap/internal/regions"
)

// Category is the derived visit classification for one region.
type Category string

const (
	Unvisited  Category = "unvisited"
	Work       Category = "work"
	Personal   Category = "personal"
	Both       Category = "both"
	FutureOnly Category = "futureOnly"
)

// TopRegion is one entry of the most-visited list.
type TopRegion struct {
	Code  string `json:"code"`
	Trips int    `json:"trips"`
}

// Summary holds the aggregate numbers for the stats strip.
type Summary struct {
	StatesVisited int `json:"statesVisited"`
	StatePct      int `json:"statePct"`
	WorkOnly      int `json:"workOnly"`
	PersonalOnly  int `json:"personalOnly"`
	Both          int `json:"both"`
	FutureOnly    int `json:"futureOnly"`
	Provinces     int `json:"provinces"`
	Countries     int `json:"countries"`
	MaxTrips      int `json:"maxTrips"`

	Top []TopRegion `json:"top"`
}

// RegionStats is the engine output handed to the rendering layer. It is plain
// data, JSON-serializable, with no behavior attached.
type RegionStats struct {
	Categories     map[string]Category `json:"categories"`
	TripCounts     map[string]int      `json:"tripCounts"`
	WorkCounts     map[string]int      `json:"workCounts"`
	PersonalCounts map[string]int      `json:"personalCounts"`
	Summary        Summary             `json:"summary"`
	Title          string              `json:"title"`
}

const topSize = 5

// region tracks the per-code signals while classifying.
type region struct {
	code string
	kind regions.Kind

	inWork     bool
	inPersonal bool

	workTotal  int
	persTotal  int
	workFuture int
	persFuture int

	futureListed bool
}

// Classify computes the category, trip totals and summary for every region
// referenced anywhere in the input.
//
// Past counts are counts-first: pastWork = max(0, workTrips - workTripsFuture).
// A region with no count entry at all falls back to list membership, unless a
// future flag overrides it to futureOnly.
func Classify(in *params.DecodedInput) *RegionStats {
	order, byCode := collect(in)

	out := &RegionStats{
		Categories:     make(map[string]Category, len(order)),
		TripCounts:     make(map[string]int),
		WorkCounts:     make(map[string]int),
		PersonalCounts: make(map[string]int),
		Title:          in.Title,
	}

	stateSet := map[Category]int{}
	for _, code := range order {
		r := byCode[code]

		pastWork := max(0, r.workTotal-r.workFuture)
		pastPersonal := max(0, r.persTotal-r.persFuture)
		hasFuture := r.workFuture > 0 || r.persFuture > 0 || r.futureListed

		// Counts are authoritative when present; list membership only fills
		// in when there is no count entry and no future override.
		hasPastWork := pastWork > 0 || (r.workTotal == 0 && r.inWork && !hasFuture)
		hasPastPersonal := pastPersonal > 0 || (r.persTotal == 0 && r.inPersonal && !hasFuture)

		var cat Category
		switch {
		case hasPastWork && hasPastPersonal:
			cat = Both
		case hasPastWork:
			cat = Work
		case hasPastPersonal:
			cat = Personal
		case hasFuture:
			cat = FutureOnly
		default:
			cat = Unvisited
		}
		out.Categories[code] = cat

		if total := r.workTotal + r.persTotal; total > 0 {
			out.TripCounts[code] = total
			if total > out.Summary.MaxTrips {
				out.Summary.MaxTrips = total
			}
		}
		if r.workTotal > 0 {
			out.WorkCounts[code] = r.workTotal
		}
		if r.persTotal > 0 {
			out.PersonalCounts[code] = r.persTotal
		}

		switch cat {
		case FutureOnly:
			out.Summary.FutureOnly++
		case Unvisited:
		default:
			switch r.kind {
			case regions.State:
				stateSet[cat]++
			case regions.Province:
				out.Summary.Provinces++
			case regions.Country:
				out.Summary.Countries++
			}
		}
	}

	out.Summary.WorkOnly = stateSet[Work]
	out.Summary.PersonalOnly = stateSet[Personal]
	out.Summary.Both = stateSet[Both]
	out.Summary.StatesVisited = stateSet[Work] + stateSet[Personal] + stateSet[Both]
	out.Summary.StatePct = int(math.Round(float64(out.Summary.StatesVisited) / regions.StateCount * 100))

	out.Summary.Top = topRegions(order, out.TripCounts)

	return out
}

// collect walks every list and count map once and produces the region index
// in first-seen order. Count-map-only codes come last, sorted, since Go map
// iteration order would otherwise make the top-N tie-break nondeterministic.
func collect(in *params.DecodedInput) ([]string, map[string]*region) {
	byCode := make(map[string]*region)
	var order []string

	touch := func(code string, kind regions.Kind) *region {
		r, ok := byCode[code]
		if !ok {
			r = &region{code: code, kind: kind}
			byCode[code] = r
			order = append(order, code)
		}
		return r
	}

	markWork := func(codes []string, kind regions.Kind) {
		for _, c := range codes {
			touch(c, kind).inWork = true
		}
	}
	markPersonal := func(codes []string, kind regions.Kind) {
		for _, c := range codes {
			touch(c, kind).inPersonal = true
		}
	}
	markFuture := func(codes []string, kind regions.Kind) {
		for _, c := range codes {
			touch(c, kind).futureListed = true
		}
	}

	markWork(in.Work, regions.State)
	markPersonal(in.Personal, regions.State)
	markWork(in.Prov, regions.Province)
	markPersonal(in.ProvPers, regions.Province)
	markWork(in.WorkCountries, regions.Country)
	markPersonal(in.PersCountries, regions.Country)

	markFuture(in.WorkFuture, regions.State)
	markFuture(in.PersonalFuture, regions.State)
	markFuture(in.ProvFuture, regions.Province)
	markFuture(in.PersCountriesFuture, regions.Country)

	for _, code := range sortedKeys(in.WorkTrips) {
		touch(code, kindOf(code)).workTotal = in.WorkTrips[code]
	}
	for _, code := range sortedKeys(in.PersTrips) {
		touch(code, kindOf(code)).persTotal = in.PersTrips[code]
	}
	for _, code := range sortedKeys(in.WorkTripsFuture) {
		touch(code, kindOf(code)).workFuture = in.WorkTripsFuture[code]
	}
	for _, code := range sortedKeys(in.PersTripsFuture) {
		touch(code, kindOf(code)).persFuture = in.PersTripsFuture[code]
	}

	return order, byCode
}

func topRegions(order []string, tripCounts map[string]int) []TopRegion {
	withTrips := make([]string, 0, len(tripCounts))
	for _, code := range order {
		if tripCounts[code] > 0 {
			withTrips = append(withTrips, code)
		}
	}
	// Stable keeps first-seen order among equal counts.
	sort.SliceStable(withTrips, func(i, j int) bool {
		return tripCounts[withTrips[i]] > tripCounts[withTrips[j]]
	})
	if len(withTrips) > topSize {
		withTrips = withTrips[:topSize]
	}
	top := make([]TopRegion, len(withTrips))
	for i, code := range withTrips {
		top[i] = TopRegion{Code: code, Trips: tripCounts[code]}
	}
	return top
}

func kindOf(code string) regions.Kind {
	switch {
	case regions.IsProvince(code):
		return regions.Province
	case regions.IsCountry(code):
		return regions.Country
	default:
		return regions.State
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
