package regions

// Display names for all three alphabets. Only the rendering layer reads these,
// but they live here so the code sets and their names stay in one place.

var StateNames = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "Washington D.C.",
}

var ProvinceNames = map[string]string{
	"AB": "Alberta", "BC": "British Columbia", "MB": "Manitoba",
	"NB": "New Brunswick", "NL": "Newfoundland and Labrador", "NS": "Nova Scotia",
	"NT": "Northwest Territories", "NU": "Nunavut", "ON": "Ontario",
	"PE": "Prince Edward Island", "QC": "Quebec", "SK": "Saskatchewan",
	"YT": "Yukon",
}

var CountryNames = map[string]string{
	"USA": "United States", "CAN": "Canada", "MEX": "Mexico",
	"GBR": "United Kingdom", "ENG": "England", "SCT": "Scotland",
	"WLS": "Wales", "NIR": "Northern Ireland", "IRL": "Ireland",
	"FRA": "France", "DEU": "Germany", "ITA": "Italy", "ESP": "Spain",
	"PRT": "Portugal", "NLD": "Netherlands", "BEL": "Belgium",
	"CHE": "Switzerland", "AUT": "Austria", "ISL": "Iceland",
	"NOR": "Norway", "SWE": "Sweden", "DNK": "Denmark", "FIN": "Finland",
	"POL": "Poland", "CZE": "Czechia", "SVK": "Slovakia", "HUN": "Hungary",
	"ROU": "Romania", "BGR": "Bulgaria", "GRC": "Greece", "HRV": "Croatia",
	"SVN": "Slovenia", "SRB": "Serbia", "UKR": "Ukraine", "EST": "Estonia",
	"LVA": "Latvia", "LTU": "Lithuania", "TUR": "Turkey", "CYP": "Cyprus",
	"MLT": "Malta", "LUX": "Luxembourg", "MCO": "Monaco", "ISR": "Israel",
	"ARE": "United Arab Emirates", "SAU": "Saudi Arabia", "QAT": "Qatar",
	"JOR": "Jordan", "EGY": "Egypt", "MAR": "Morocco", "TUN": "Tunisia",
	"ZAF": "South Africa", "KEN": "Kenya", "TZA": "Tanzania",
	"NGA": "Nigeria", "ETH": "Ethiopia", "GHA": "Ghana", "IND": "India",
	"PAK": "Pakistan", "LKA": "Sri Lanka", "NPL": "Nepal", "CHN": "China",
	"JPN": "Japan", "KOR": "South Korea", "TWN": "Taiwan",
	"HKG": "Hong Kong", "SGP": "Singapore", "THA": "Thailand",
	"VNM": "Vietnam", "MYS": "Malaysia", "IDN": "Indonesia",
	"PHL": "Philippines", "KHM": "Cambodia", "AUS": "Australia",
	"NZL": "New Zealand", "FJI": "Fiji", "BRA": "Brazil",
	"ARG": "Argentina", "CHL": "Chile", "PER": "Peru", "COL": "Colombia",
	"ECU": "Ecuador", "URY": "Uruguay", "BOL": "Bolivia", "PRY": "Paraguay",
	"CRI": "Costa Rica", "PAN": "Panama", "GTM": "Guatemala",
	"BLZ": "Belize", "CUB": "Cuba", "DOM": "Dominican Republic",
	"JAM": "Jamaica", "BHS": "Bahamas",
}

// DisplayName looks a code up in whichever alphabet it belongs to. Unknown
// codes fall back to the code itself.
func DisplayName(code string) string {
	if n, ok := StateNames[code]; ok {
		return n
	}
	if n, ok := ProvinceNames[code]; ok {
		return n
	}
	if n, ok := CountryNames[code]; ok {
		return n
	}
	return code
}
