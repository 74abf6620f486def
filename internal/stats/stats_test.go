package stats

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmap/internal/params"
)

func classifyQuery(t *testing.T, query string) *RegionStats {
	t.Helper()
	q, err := url.ParseQuery(query)
	require.NoError(t, err)
	return Classify(params.Decode(q))
}

func TestClassifyRoundTrip(t *testing.T) {
	out := classifyQuery(t, "work=NY,CA&workTrips=NY:5,CA:3")

	assert.Equal(t, Work, out.Categories["NY"])
	assert.Equal(t, Work, out.Categories["CA"])
	assert.Equal(t, 5, out.TripCounts["NY"])
	assert.Equal(t, 3, out.TripCounts["CA"])
	assert.Equal(t, 5, out.Summary.MaxTrips)
	assert.Equal(t, 2, out.Summary.StatesVisited)
	assert.Equal(t, 4, out.Summary.StatePct)
}

func TestClassifyBothPrecedence(t *testing.T) {
	out := classifyQuery(t, "workTrips=NY:1&persTrips=NY:1")
	assert.Equal(t, Both, out.Categories["NY"])
	assert.Equal(t, 2, out.TripCounts["NY"])
	assert.Equal(t, 1, out.Summary.Both)
	assert.Equal(t, 0, out.Summary.WorkOnly)
}

func TestClassifyListFallback(t *testing.T) {
	// No counts at all: membership lists decide.
	out := classifyQuery(t, "work=NY&personal=NY,OH&prov=ON")
	assert.Equal(t, Both, out.Categories["NY"])
	assert.Equal(t, Personal, out.Categories["OH"])
	assert.Equal(t, Work, out.Categories["ON"])
	assert.Equal(t, 1, out.Summary.Provinces)
	assert.Equal(t, 2, out.Summary.StatesVisited)
}

func TestClassifyFutureClampsPast(t *testing.T) {
	// Future exceeding total is malformed input; past must clamp to zero.
	out := classifyQuery(t, "workTrips=FL:3&workTripsFuture=FL:5")
	assert.Equal(t, FutureOnly, out.Categories["FL"])
	assert.Equal(t, 1, out.Summary.FutureOnly)
	assert.Equal(t, 0, out.Summary.StatesVisited)
}

func TestClassifyFutureOnlyList(t *testing.T) {
	out := classifyQuery(t, "workFuture=DE")
	assert.Equal(t, FutureOnly, out.Categories["DE"])
}

func TestClassifyFutureOverridesListFallback(t *testing.T) {
	// In the work list with a future flag and no counts: not visited yet.
	out := classifyQuery(t, "work=DE&workFuture=DE")
	assert.Equal(t, FutureOnly, out.Categories["DE"])
}

func TestClassifyCountsBeatListFallback(t *testing.T) {
	// All trips are in the future even though the region sits in the work
	// list; counts win over membership.
	out := classifyQuery(t, "work=FL&workTrips=FL:3&workTripsFuture=FL:3")
	assert.Equal(t, FutureOnly, out.Categories["FL"])
}

func TestClassifyPastSplit(t *testing.T) {
	out := classifyQuery(t, "workTrips=TX:10&workTripsFuture=TX:4&persTrips=TX:2")
	// 6 past work + 2 past personal.
	assert.Equal(t, Both, out.Categories["TX"])
	assert.Equal(t, 12, out.TripCounts["TX"])
	assert.Equal(t, 10, out.WorkCounts["TX"])
	assert.Equal(t, 2, out.PersonalCounts["TX"])
}

func TestClassifyPercentage(t *testing.T) {
	// Exactly 25 distinct states visited -> 50%.
	states := "AL,AK,AZ,AR,CA,CO,CT,DE,FL,GA,HI,ID,IL,IN,IA,KS,KY,LA,ME,MD,MA,MI,MN,MS,MO"
	out := classifyQuery(t, "work="+states)
	require.Equal(t, 25, out.Summary.StatesVisited)
	assert.Equal(t, 50, out.Summary.StatePct)
}

func TestClassifyTopRegions(t *testing.T) {
	out := classifyQuery(t, "workTrips=NY:9,CA:2,TX:9,FL:1,OH:5,WI:3,MI:2")

	require.Len(t, out.Summary.Top, 5)
	// CA and TX share counts with other regions; ties break by first-seen
	// order, and count-map-only codes are seen in sorted key order.
	assert.Equal(t, TopRegion{Code: "NY", Trips: 9}, out.Summary.Top[0])
	assert.Equal(t, TopRegion{Code: "TX", Trips: 9}, out.Summary.Top[1])
	assert.Equal(t, TopRegion{Code: "OH", Trips: 5}, out.Summary.Top[2])
	assert.Equal(t, TopRegion{Code: "WI", Trips: 3}, out.Summary.Top[3])
	assert.Equal(t, TopRegion{Code: "CA", Trips: 2}, out.Summary.Top[4])
	assert.Equal(t, 9, out.Summary.MaxTrips)
}

func TestClassifyCountries(t *testing.T) {
	out := classifyQuery(t, "workCountries=FRA,JPN&persCountries=FRA&persCountriesFuture=ITA")
	assert.Equal(t, Both, out.Categories["FRA"])
	assert.Equal(t, Work, out.Categories["JPN"])
	assert.Equal(t, FutureOnly, out.Categories["ITA"])
	assert.Equal(t, 2, out.Summary.Countries)
	assert.Equal(t, 1, out.Summary.FutureOnly)
}

func TestClassifyEmptyInput(t *testing.T) {
	out := Classify(&params.DecodedInput{Title: params.DefaultTitle})
	assert.Empty(t, out.Categories)
	assert.Equal(t, 0, out.Summary.StatesVisited)
	assert.Equal(t, 0, out.Summary.StatePct)
	assert.Empty(t, out.Summary.Top)
	assert.Equal(t, params.DefaultTitle, out.Title)
}

func TestRegionStatsSerializes(t *testing.T) {
	out := classifyQuery(t, "work=NY&workTrips=NY:5&title=My+Map")
	data, err := json.Marshal(out)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "categories")
	assert.Contains(t, decoded, "summary")
	assert.Equal(t, "My Map", decoded["title"])
}
