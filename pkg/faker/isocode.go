package faker

// CountryCode returns an ISO 3166-1 alpha-2 code, e.g. "FR".
func (g *Generator) CountryCode() (string, error) {
	return call[string](g, "countryCode")
}

// CountryISOAlpha3 returns an ISO 3166-1 alpha-3 code, e.g. "FRA".
func (g *Generator) CountryISOAlpha3() (string, error) {
	return call[string](g, "countryISOAlpha3")
}

// LanguageCode returns an ISO 639-1 code, e.g. "fr".
func (g *Generator) LanguageCode() (string, error) {
	return call[string](g, "languageCode")
}

// CurrencyCode returns an ISO 4217 code, e.g. "EUR".
func (g *Generator) CurrencyCode() (string, error) {
	return call[string](g, "currencyCode")
}
