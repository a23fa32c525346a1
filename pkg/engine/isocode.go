package engine

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func init() {
	register("isocode", map[string]Formatter{
		"countryCode": func(e *Engine, _ Args) (any, error) {
			return e.pick("country code", e.data().ISO.Countries)
		},
		"countryISOAlpha3": func(e *Engine, _ Args) (any, error) {
			region, err := e.region()
			if err != nil {
				return nil, err
			}
			return region.ISO3(), nil
		},
		"languageCode": func(e *Engine, _ Args) (any, error) {
			return e.pick("language code", e.data().ISO.Languages)
		},
		"currencyCode": func(e *Engine, _ Args) (any, error) {
			region, err := e.region()
			if err != nil {
				return nil, err
			}
			unit, ok := currency.FromRegion(region)
			if !ok {
				return nil, fmt.Errorf("%w: region %s has no currency", ErrUnsupported, region)
			}
			return unit.String(), nil
		},
	})
}

func (e *Engine) region() (language.Region, error) {
	code, err := e.pick("country code", e.data().ISO.Countries)
	if err != nil {
		return language.Region{}, err
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return language.Region{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return region, nil
}
