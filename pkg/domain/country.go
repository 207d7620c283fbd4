package domain

// Country is an ISO 3166-1 alpha-2 code for a supported country.
type Country string

const (
	CountryES Country = "ES"
	CountryUS Country = "US"
	CountryBR Country = "BR"
)

var countryDescriptions = map[Country]string{
	CountryES: "Spain",
	CountryUS: "United States of America",
	CountryBR: "Brazil",
}

// Countries returns all supported countries in a stable order.
func Countries() []Country {
	return []Country{CountryES, CountryUS, CountryBR}
}

// Valid reports whether c is a supported country.
func (c Country) Valid() bool {
	_, ok := countryDescriptions[c]
	return ok
}

// Description returns the human-readable country name.
func (c Country) Description() string {
	return countryDescriptions[c]
}

func (c Country) String() string {
	return string(c)
}
