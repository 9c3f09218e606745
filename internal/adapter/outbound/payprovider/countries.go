package payprovider

import (
	"github.com/paydeck/paydeck/internal/model"
)

// providerCountries maps ISO 3166-1 alpha-2 codes to each provider's own
// country naming scheme. Providers do not share a common country
// vocabulary, so bank listings resolve through this table before
// querying.
var providerCountries = map[model.Provider]map[string]string{
	model.ProviderFlutterwave: {
		"NG": "Nigeria",
		"GH": "Ghana",
		"KE": "Kenya",
		"ZA": "South Africa",
	},
	model.ProviderPaystack: {
		"NG": "Nigeria",
		"GH": "Ghana",
		"KE": "Kenya",
		"ZA": "South Africa",
	},
}

// providerCountryName resolves an ISO country code to the provider's
// naming scheme.
func providerCountryName(p model.Provider, code string) (string, bool) {
	countries, ok := providerCountries[p]
	if !ok {
		return "", false
	}
	name, ok := countries[code]
	return name, ok
}
