// Package regions owns the three code alphabets the map understands: US
// states (plus DC), Canadian provinces, and a fixed allow-list of countries.
// The sets are disjoint by construction; a two letter token is either a state
// or a province, never both.
package regions

import "strings"

// Kind says which alphabet a code belongs to.
type Kind string

const (
	State    Kind = "state"
	Province Kind = "province"
	Country  Kind = "country"
)

var stateCodes = toSet([]string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"DC",
})

var provinceCodes = toSet([]string{
	"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE",
	"QC", "SK", "YT",
})

// Country codes are ISO-3166 alpha-3 plus the four UK sub-country pseudo-codes
// (ENG, SCT, WLS, NIR) so England and Scotland can shade separately.
var countryCodes = toSet([]string{
	"USA", "CAN", "MEX", "GBR", "ENG", "SCT", "WLS", "NIR",
	"IRL", "FRA", "DEU", "ITA", "ESP", "PRT", "NLD", "BEL",
	"CHE", "AUT", "ISL", "NOR", "SWE", "DNK", "FIN", "POL",
	"CZE", "SVK", "HUN", "ROU", "BGR", "GRC", "HRV", "SVN",
	"SRB", "UKR", "EST", "LVA", "LTU", "TUR", "CYP", "MLT",
	"LUX", "MCO", "ISR", "ARE", "SAU", "QAT", "JOR", "EGY",
	"MAR", "TUN", "ZAF", "KEN", "TZA", "NGA", "ETH", "GHA",
	"IND", "PAK", "LKA", "NPL", "CHN", "JPN", "KOR", "TWN",
	"HKG", "SGP", "THA", "VNM", "MYS", "IDN", "PHL", "KHM",
	"AUS", "NZL", "FJI", "BRA", "ARG", "CHL", "PER", "COL",
	"ECU", "URY", "BOL", "PRY", "CRI", "PAN", "GTM", "BLZ",
	"CUB", "DOM", "JAM", "BHS",
})

// IsState reports whether code (already upper-cased) is a US state or DC.
func IsState(code string) bool { return stateCodes[code] }

// IsProvince reports whether code is a Canadian province or territory.
func IsProvince(code string) bool { return provinceCodes[code] }

// IsCountry reports whether code is on the country allow-list.
func IsCountry(code string) bool { return countryCodes[code] }

// Valid reports whether code belongs to the given alphabet. Codes are
// canonicalized to upper case before the membership check.
func Valid(code string, kind Kind) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	switch kind {
	case State:
		return IsState(code)
	case Province:
		return IsProvince(code)
	case Country:
		return IsCountry(code)
	}
	return false
}

// CodeLen is the token length for an alphabet: 2 for states and provinces, 3
// for countries.
func CodeLen(kind Kind) int {
	if kind == Country {
		return 3
	}
	return 2
}

// StateCount is the denominator for the "states visited" percentage. DC is a
// valid code but does not count toward the 50.
const StateCount = 50

func toSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}
