package engine

import "math"

func init() {
	register("address", map[string]Formatter{
		"cityPrefix": func(e *Engine, _ Args) (any, error) {
			return e.pick("city prefix", e.data().Address.CityPrefixes)
		},
		"citySuffix": func(e *Engine, _ Args) (any, error) {
			return e.pick("city suffix", e.data().Address.CitySuffixes)
		},
		"streetSuffix": func(e *Engine, _ Args) (any, error) {
			return e.pick("street suffix", e.data().Address.StreetSuffixes)
		},
		"buildingNumber": func(e *Engine, _ Args) (any, error) {
			format, err := e.pick("building number", e.data().Address.BuildingNumberFormats)
			if err != nil {
				return nil, err
			}
			return e.bothify(format), nil
		},
		"city": func(e *Engine, _ Args) (any, error) {
			return e.parseOne("city", e.data().Address.CityFormats)
		},
		"streetName": func(e *Engine, _ Args) (any, error) {
			return e.parseOne("street name", e.data().Address.StreetNameFormats)
		},
		"streetAddress": func(e *Engine, _ Args) (any, error) {
			s, err := e.parseOne("street address", e.data().Address.StreetAddressFormats)
			if err != nil {
				return nil, err
			}
			return e.bothify(s), nil
		},
		"postcode": func(e *Engine, _ Args) (any, error) {
			format, err := e.pick("postcode", e.data().Address.PostcodeFormats)
			if err != nil {
				return nil, err
			}
			return upperLetters(e.bothify(format)), nil
		},
		"state": func(e *Engine, _ Args) (any, error) {
			return e.pick("state", e.data().Address.States)
		},
		"address": func(e *Engine, _ Args) (any, error) {
			return e.parseOne("address", e.data().Address.AddressFormats)
		},
		"country": func(e *Engine, _ Args) (any, error) {
			return e.pick("country", e.data().Address.Countries)
		},
		"latitude": func(e *Engine, a Args) (any, error) {
			return e.coordinate(a, 90, e.faker.LatitudeInRange)
		},
		"longitude": func(e *Engine, a Args) (any, error) {
			return e.coordinate(a, 180, e.faker.LongitudeInRange)
		},
		"localCoordinates": func(e *Engine, _ Args) (any, error) {
			box := e.data().Address.Coordinates
			if box == nil {
				return nil, e.unsupported("local coordinates")
			}
			lat, err := e.faker.LatitudeInRange(box.LatMin, box.LatMax)
			if err != nil {
				return nil, invalidArg("%s latitude box: %v", e.loc.Name, err)
			}
			lon, err := e.faker.LongitudeInRange(box.LonMin, box.LonMax)
			if err != nil {
				return nil, invalidArg("%s longitude box: %v", e.loc.Name, err)
			}
			return map[string]float64{"latitude": lat, "longitude": lon}, nil
		},
	})
}

// coordinate draws a degree value in [min, max] within [-limit, limit] using
// draw, which rounds to six decimals.
func (e *Engine) coordinate(a Args, limit float64, draw func(min, max float64) (float64, error)) (float64, error) {
	min, err := a.Float(0, -limit)
	if err != nil {
		return 0, err
	}
	max, err := a.Float(1, limit)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(min) || math.IsNaN(max) {
		return 0, invalidArg("range [%v, %v] is not a number", min, max)
	}
	if min > max {
		return 0, invalidArg("min %v is greater than max %v", min, max)
	}
	v, err := draw(min, max)
	if err != nil {
		return 0, invalidArg("range [%v, %v] exceeds [%v, %v]: %v", min, max, -limit, limit, err)
	}
	return v, nil
}

// upperLetters uppercases ASCII letters, used for postcodes such as "SW1A 1AA".
func upperLetters(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
