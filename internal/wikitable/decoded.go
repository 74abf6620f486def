package wikitable

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"travelmap/internal/params"
)

var nowFn = time.Now

// DecodedInput converts the accumulation into the engine's input shape.
// Trips dated after today count as future; undated trips count as past.
func (a *Accumulation) DecodedInput(title string) *params.DecodedInput {
	today := nowFn().Format("2006-01-02")

	in := &params.DecodedInput{
		Work:     a.workStateOrder,
		Personal: a.persStateOrder,
		Prov:     a.workProvOrder,
		ProvPers: a.persProvOrder,
		Title:    params.SanitizeTitle(title),
	}

	in.WorkTrips, in.WorkTripsFuture = countBuckets(a.WorkStates, a.workStateOrder, a.WorkProvinces, a.workProvOrder, today)
	in.PersTrips, in.PersTripsFuture = countBuckets(a.PersonalStates, a.persStateOrder, a.PersonalProvinces, a.persProvOrder, today)

	return in
}

// countBuckets folds state and province trips into total and future count
// maps. The alphabets are disjoint so one map can carry both.
func countBuckets(states map[string][]Trip, stateOrder []string, provs map[string][]Trip, provOrder []string, today string) (total, future map[string]int) {
	total = make(map[string]int)
	future = make(map[string]int)
	count := func(bucket map[string][]Trip, order []string) {
		for _, code := range order {
			trips := bucket[code]
			total[code] += len(trips)
			for _, t := range trips {
				if t.Date != "" && t.Date > today {
					future[code]++
				}
			}
		}
	}
	count(states, stateOrder)
	count(provs, provOrder)
	if len(total) == 0 {
		total = nil
	}
	if len(future) == 0 {
		future = nil
	}
	return total, future
}

// EmbedQuery builds the query string that reproduces this accumulation
// through the parameter path, the way the wiki embed script builds its iframe
// src. Round-tripping it through params.Decode and the engine yields the same
// map.
func (a *Accumulation) EmbedQuery(title string) string {
	in := a.DecodedInput(title)

	q := url.Values{}
	setList := func(key string, codes []string) {
		if len(codes) > 0 {
			q.Set(key, strings.Join(codes, ","))
		}
	}
	setPairs := func(key string, counts map[string]int, order []string) {
		var pairs []string
		for _, code := range order {
			if counts[code] > 0 {
				pairs = append(pairs, code+":"+strconv.Itoa(counts[code]))
			}
		}
		if len(pairs) > 0 {
			q.Set(key, strings.Join(pairs, ","))
		}
	}

	setList("work", in.Work)
	setList("personal", in.Personal)
	setList("prov", in.Prov)
	setList("provPers", in.ProvPers)

	workOrder := append(append([]string{}, a.workStateOrder...), a.workProvOrder...)
	persOrder := append(append([]string{}, a.persStateOrder...), a.persProvOrder...)
	setPairs("workTrips", in.WorkTrips, workOrder)
	setPairs("workTripsFuture", in.WorkTripsFuture, workOrder)
	setPairs("persTrips", in.PersTrips, persOrder)
	setPairs("persTripsFuture", in.PersTripsFuture, persOrder)

	if title != "" {
		q.Set("title", in.Title)
	}
	return q.Encode()
}
