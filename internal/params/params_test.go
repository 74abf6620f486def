package params

import (
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCodeLists(t *testing.T) {
	q, err := url.ParseQuery("work=ZZ,NY,ca&personal=oh, mi &prov=ON,XX&workCountries=FRA,fr,JPN")
	require.NoError(t, err)

	in := Decode(q)
	assert.Equal(t, []string{"NY", "CA"}, in.Work)
	assert.Equal(t, []string{"OH", "MI"}, in.Personal)
	assert.Equal(t, []string{"ON"}, in.Prov)
	assert.Equal(t, []string{"FRA", "JPN"}, in.WorkCountries)
	assert.Empty(t, in.WorkTrips)
}

func TestDecodeWrongAlphabetDropped(t *testing.T) {
	// ON is a province, not a state; FRA is the wrong length for a state list.
	q := url.Values{"work": {"ON,FRA,NY"}, "prov": {"NY,ON"}}
	in := Decode(q)
	assert.Equal(t, []string{"NY"}, in.Work)
	assert.Equal(t, []string{"ON"}, in.Prov)
}

func TestDecodeDeduplicates(t *testing.T) {
	q := url.Values{"work": {"NY,ny,NY,CA"}}
	assert.Equal(t, []string{"NY", "CA"}, Decode(q).Work)
}

func TestCountMap(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want map[string]int
	}{
		{"valid pairs", "NY:5,CA:3", map[string]int{"NY": 5, "CA": 3}},
		{"lowercase code", "ny:2", map[string]int{"NY": 2}},
		{"zero dropped", "NY:0,CA:1", map[string]int{"CA": 1}},
		{"negative dropped", "NY:-3", nil},
		{"huge dropped", "NY:100000", nil},
		{"just under bound", "NY:99999", map[string]int{"NY": 99999}},
		{"garbage count", "NY:abc,CA:2", map[string]int{"CA": 2}},
		{"missing colon", "NY5", nil},
		{"empty parts", "NY:,:5", nil},
		{"unknown code", "ZZ:4", nil},
		{"province and country pairs", "ON:2,FRA:1", map[string]int{"ON": 2, "FRA": 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countMap(tc.raw))
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Preston's Travel Map", "Prestons Travel Map"},
		{"tags stripped", "<script>alert(1)</script>My Map", "alert(1)My Map"},
		{"angle pair eaten as tag", "a < b > c", "a  c"},
		{"lone angle bracket stripped", "a < b", "a  b"},
		{"empty falls back", "", DefaultTitle},
		{"whitespace falls back", "   ", DefaultTitle},
		{"only stripped chars falls back", `<">'`, DefaultTitle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeTitle(tc.raw))
		})
	}
}

func TestSanitizeTitleTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcde"
	}
	got := SanitizeTitle(long)
	assert.Len(t, got, 100)
}

func TestSanitizeTitleTruncatesOnRuneBoundary(t *testing.T) {
	got := SanitizeTitle(strings.Repeat("€", 150))
	assert.True(t, utf8.ValidString(got), "truncation must not split a multi-byte rune")
	assert.Equal(t, maxTitleLen, utf8.RuneCountInString(got))
}

func TestRecognized(t *testing.T) {
	assert.True(t, Recognized(url.Values{"work": {"NY"}}))
	assert.True(t, Recognized(url.Values{"persTripsFuture": {"NY:1"}}))
	assert.False(t, Recognized(url.Values{"title": {"hi"}}))
	assert.False(t, Recognized(url.Values{}))
}
