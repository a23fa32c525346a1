package faker

import "time"

// DefaultExpirationLayout is the layout of CreditCardExpirationDateString and
// CreditCard.ExpirationDate.
const DefaultExpirationLayout = "01/06"

// AnyCardType lets the engine choose the card type of CreditCardNumber.
const AnyCardType = ""

// CreditCard holds the details of a payment card.
type CreditCard struct {
	Type           string `json:"type" yaml:"type"`
	Number         string `json:"number" yaml:"number"`
	Name           string `json:"name" yaml:"name"`
	ExpirationDate string `json:"expirationDate" yaml:"expirationDate"`
}

// CreditCardType returns a card brand, e.g. "MasterCard".
func (g *Generator) CreditCardType() (string, error) {
	return call[string](g, "creditCardType")
}

// CreditCardNumber returns a Luhn-valid number for cardType, or for a random
// brand with AnyCardType. Formatted numbers are grouped with hyphens.
func (g *Generator) CreditCardNumber(cardType string, formatted bool) (string, error) {
	return call[string](g, "creditCardNumber", cardType, formatted)
}

// CreditCardExpirationDate returns the last day of an expiration month, in the
// future when valid is set and in the past otherwise.
func (g *Generator) CreditCardExpirationDate(valid bool) (time.Time, error) {
	return call[time.Time](g, "creditCardExpirationDate", valid)
}

// CreditCardExpirationDateString returns an expiration date formatted with layout.
func (g *Generator) CreditCardExpirationDateString(valid bool, layout string) (string, error) {
	return call[string](g, "creditCardExpirationDateString", valid, layout)
}

// CreditCardDetails returns a full card.
func (g *Generator) CreditCardDetails(valid bool) (CreditCard, error) {
	m, err := call[map[string]string](g, "creditCardDetails", valid)
	if err != nil {
		return CreditCard{}, err
	}
	return CreditCard{
		Type:           m["type"],
		Number:         m["number"],
		Name:           m["name"],
		ExpirationDate: m["expirationDate"],
	}, nil
}

// IBAN returns an IBAN with valid check digits for countryCode. An empty
// countryCode uses the locale's country, failing with ErrUnsupported when the
// locale has none.
func (g *Generator) IBAN(countryCode string) (string, error) {
	return call[string](g, "iban", countryCode)
}

// SwiftBICNumber returns a SWIFT/BIC code, e.g. "RZTIAT22263".
func (g *Generator) SwiftBICNumber() (string, error) {
	return call[string](g, "swiftBicNumber")
}
