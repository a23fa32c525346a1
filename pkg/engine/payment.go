package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// cardTypeIDs maps card display names to gofakeit card type identifiers.
var cardTypeIDs = map[string]string{
	"Visa":             "visa",
	"MasterCard":       "mastercard",
	"American Express": "american-express",
	"Discover Card":    "discover",
	"JCB":              "jcb",
	"Diners Club":      "diners-club",
}

// expirationWindow is how far card expiration dates reach from now.
const expirationWindow = 36

func init() {
	register("payment", map[string]Formatter{
		"creditCardType": func(e *Engine, _ Args) (any, error) {
			return e.pick("credit card type", e.data().Payment.CardTypes)
		},
		"creditCardNumber": func(e *Engine, a Args) (any, error) {
			cardType, err := a.String(0, "")
			if err != nil {
				return nil, err
			}
			formatted, err := a.Bool(1, false)
			if err != nil {
				return nil, err
			}
			return e.cardNumber(cardType, formatted)
		},
		"creditCardExpirationDate": func(e *Engine, a Args) (any, error) {
			valid, err := a.Bool(0, true)
			if err != nil {
				return nil, err
			}
			return e.expiration(valid), nil
		},
		"creditCardExpirationDateString": func(e *Engine, a Args) (any, error) {
			valid, err := a.Bool(0, true)
			if err != nil {
				return nil, err
			}
			layout, err := a.String(1, "01/06")
			if err != nil {
				return nil, err
			}
			return e.expiration(valid).Format(layout), nil
		},
		"creditCardDetails": func(e *Engine, a Args) (any, error) {
			valid, err := a.Bool(0, true)
			if err != nil {
				return nil, err
			}
			cardType, err := e.pick("credit card type", e.data().Payment.CardTypes)
			if err != nil {
				return nil, err
			}
			number, err := e.cardNumber(cardType, false)
			if err != nil {
				return nil, err
			}
			name, err := e.call("name")
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"type":           cardType,
				"number":         number,
				"name":           name.(string),
				"expirationDate": e.expiration(valid).Format("01/06"),
			}, nil
		},
		"iban": func(e *Engine, a Args) (any, error) {
			country, err := a.String(0, "")
			if err != nil {
				return nil, err
			}
			if country == "" {
				country = e.data().Payment.IBANCountry
			}
			if country == "" {
				return nil, e.unsupported("iban country")
			}
			return e.iban(strings.ToUpper(country))
		},
		"swiftBicNumber": func(e *Engine, _ Args) (any, error) {
			country := e.data().Payment.SwiftRegion
			if country == "" {
				var err error
				if country, err = e.pick("country code", e.data().ISO.Countries); err != nil {
					return nil, err
				}
			}
			code := upperLetters(e.bothify("????")) + country + upperLetters(e.bothify("**"))
			if e.rng.IntN(2) == 1 {
				code += upperLetters(e.bothify("***"))
			}
			return code, nil
		},
	})
}

func (e *Engine) cardNumber(cardType string, formatted bool) (string, error) {
	if cardType == "" {
		var err error
		if cardType, err = e.pick("credit card type", e.data().Payment.CardTypes); err != nil {
			return "", err
		}
	}
	id, ok := cardTypeIDs[cardType]
	if !ok {
		return "", invalidArg("unknown credit card type %q", cardType)
	}
	number := e.faker.CreditCardNumber(&gofakeit.CreditCardOptions{Types: []string{id}, Gaps: formatted})
	if formatted {
		number = strings.ReplaceAll(number, " ", "-")
	}
	return number, nil
}

// expiration returns the last day of a month within the window after now, or
// before now when valid is false.
func (e *Engine) expiration(valid bool) time.Time {
	now := e.now().UTC()
	months := e.rng.IntN(expirationWindow) + 1
	if !valid {
		months = -months
	}
	first := time.Date(now.Year(), now.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1)
}

// ibanFormats describes each country's BBAN as runs of n (digit), a (upper
// case letter) and c (letter or digit).
var ibanFormats = map[string][]ibanRun{
	"AT": {{'n', 16}},
	"BE": {{'n', 12}},
	"CH": {{'n', 5}, {'c', 12}},
	"DE": {{'n', 18}},
	"DK": {{'n', 14}},
	"ES": {{'n', 20}},
	"FI": {{'n', 14}},
	"FR": {{'n', 10}, {'c', 11}, {'n', 2}},
	"GB": {{'a', 4}, {'n', 14}},
	"IE": {{'a', 4}, {'n', 14}},
	"IT": {{'a', 1}, {'n', 10}, {'c', 12}},
	"NL": {{'a', 4}, {'n', 10}},
	"NO": {{'n', 11}},
	"PL": {{'n', 24}},
	"PT": {{'n', 21}},
	"SE": {{'n', 20}},
}

type ibanRun struct {
	class byte
	count int
}

func (e *Engine) iban(country string) (string, error) {
	runs, ok := ibanFormats[country]
	if !ok {
		return "", invalidArg("no IBAN format for country %q", country)
	}

	var bban strings.Builder
	for _, run := range runs {
		for range run.count {
			switch run.class {
			case 'n':
				bban.WriteByte(byte('0' + e.rng.IntN(10)))
			case 'a':
				bban.WriteByte(byte('A' + e.rng.IntN(26)))
			default:
				bban.WriteByte(upperLetters(string(alphanumeric[e.rng.IntN(len(alphanumeric))]))[0])
			}
		}
	}

	check := IBANChecksum(country, bban.String())
	return country + check + bban.String(), nil
}

// IBANChecksum returns the two ISO 7064 mod 97-10 check digits for an IBAN.
func IBANChecksum(country, bban string) string {
	r := mod97(bban + country + "00")
	return strconv.Itoa(100 + 98 - r)[1:]
}

// mod97 reduces an alphanumeric IBAN string with letters counted as 10..35.
func mod97(s string) int {
	r := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			r = (r*100 + int(c-'A') + 10) % 97
		}
	}
	return r
}

// ValidIBAN reports whether iban has consistent check digits.
func ValidIBAN(iban string) bool {
	if len(iban) < 5 {
		return false
	}
	return mod97(iban[4:]+iban[:4]) == 1
}
