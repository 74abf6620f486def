package regions

import "testing"

func TestAlphabetSizes(t *testing.T) {
	if got := len(stateCodes); got != 51 {
		t.Errorf("state codes = %d, want 51 (50 states + DC)", got)
	}
	if got := len(provinceCodes); got != 13 {
		t.Errorf("province codes = %d, want 13", got)
	}
	if len(countryCodes) < 80 {
		t.Errorf("country codes = %d, want at least 80", len(countryCodes))
	}
}

func TestAlphabetsDisjoint(t *testing.T) {
	for code := range stateCodes {
		if provinceCodes[code] {
			t.Errorf("code %s is both a state and a province", code)
		}
	}
	// Countries are three letters, states and provinces two; a length check
	// keeps that invariant honest.
	for code := range countryCodes {
		if len(code) != 3 {
			t.Errorf("country code %s is not three letters", code)
		}
	}
}

func TestValidCanonicalizes(t *testing.T) {
	cases := []struct {
		code string
		kind Kind
		want bool
	}{
		{"ny", State, true},
		{" wi ", State, true},
		{"ZZ", State, false},
		{"on", Province, true},
		{"NY", Province, false},
		{"fra", Country, true},
		{"eng", Country, true},
		{"XYZ", Country, false},
	}
	for _, tc := range cases {
		if got := Valid(tc.code, tc.kind); got != tc.want {
			t.Errorf("Valid(%q, %s) = %v, want %v", tc.code, tc.kind, got, tc.want)
		}
	}
}

func TestAliasTargetsAreValid(t *testing.T) {
	for _, a := range CityAliases {
		if !IsState(a.Code) && !IsProvince(a.Code) {
			t.Errorf("alias %q maps to invalid code %q", a.Name, a.Code)
		}
	}
}

func TestAliasMatchBounds(t *testing.T) {
	var nyc Alias
	for _, a := range CityAliases {
		if a.Name == "NYC" {
			nyc = a
			break
		}
	}
	if nyc.Name == "" {
		t.Fatal("NYC alias missing from table")
	}
	if !nyc.Match("Remote - nyc office") {
		t.Error("NYC should match case-insensitively with punctuation bounds")
	}
	if nyc.Match("encyclopedia") {
		t.Error("NYC must not match inside a longer word")
	}
}

func TestDisplayNamesCoverAllCodes(t *testing.T) {
	for code := range stateCodes {
		if StateNames[code] == "" {
			t.Errorf("missing state name for %s", code)
		}
	}
	for code := range provinceCodes {
		if ProvinceNames[code] == "" {
			t.Errorf("missing province name for %s", code)
		}
	}
	for code := range countryCodes {
		if CountryNames[code] == "" {
			t.Errorf("missing country name for %s", code)
		}
	}
	if DisplayName("NL") != "Newfoundland and Labrador" {
		t.Errorf("DisplayName(NL) = %q", DisplayName("NL"))
	}
	if DisplayName("??") != "??" {
		t.Error("unknown code should fall back to itself")
	}
}
