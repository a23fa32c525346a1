package engine

import (
	"math"
)

// maxRandomDigits bounds randomNumber so the result fits an int64.
const maxRandomDigits = 18

func init() {
	register("boolean", map[string]Formatter{
		"boolean": func(e *Engine, a Args) (any, error) {
			chance, err := a.Int(0, 50)
			if err != nil {
				return nil, err
			}
			if chance < 0 || chance > 100 {
				return nil, invalidArg("chance of getting true %d is outside [0, 100]", chance)
			}
			return e.rng.IntN(100) < chance, nil
		},
	})

	register("character", map[string]Formatter{
		"randomLetter": func(e *Engine, _ Args) (any, error) {
			return string(lowerLetters[e.rng.IntN(len(lowerLetters))]), nil
		},
		"randomAscii": func(e *Engine, _ Args) (any, error) {
			return string(rune(33 + e.rng.IntN(94))), nil
		},
	})

	register("digit", map[string]Formatter{
		"randomDigit": func(e *Engine, _ Args) (any, error) {
			return e.rng.IntN(10), nil
		},
		"randomDigitNotNull": func(e *Engine, _ Args) (any, error) {
			return 1 + e.rng.IntN(9), nil
		},
		"randomDigitNot": func(e *Engine, a Args) (any, error) {
			except, err := a.Int(0, 0)
			if err != nil {
				return nil, err
			}
			if except < 0 || except > 9 {
				return nil, invalidArg("excluded digit %d is outside [0, 9]", except)
			}
			d := e.rng.IntN(9)
			if d >= except {
				d++
			}
			return d, nil
		},
	})

	register("integer", map[string]Formatter{
		"randomNumber": randomNumber,
		"numberBetween": func(e *Engine, a Args) (any, error) {
			min, err := a.Int(0, 0)
			if err != nil {
				return nil, err
			}
			max, err := a.Int(1, math.MaxInt32)
			if err != nil {
				return nil, err
			}
			if min > max {
				return nil, invalidArg("min %d is greater than max %d", min, max)
			}
			return e.between(min, max), nil
		},
	})

	register("decimal", map[string]Formatter{
		"randomFloat": randomFloat,
	})
}

// randomNumber returns an integer with up to nbDigits digits, or exactly
// nbDigits digits in strict mode. A missing nbDigits picks 1 to 9.
func randomNumber(e *Engine, a Args) (any, error) {
	nb, err := a.OptInt(0)
	if err != nil {
		return nil, err
	}
	strict, err := a.Bool(1, false)
	if err != nil {
		return nil, err
	}

	digits := 1 + e.rng.IntN(9)
	if nb != nil {
		digits = *nb
	}
	if digits < 0 || digits > maxRandomDigits {
		return nil, invalidArg("number of digits %d is outside [0, %d]", digits, maxRandomDigits)
	}
	if digits == 0 {
		return 0, nil
	}

	max := int64(math.Pow10(digits)) - 1
	var min int64
	if strict {
		min = int64(math.Pow10(digits - 1))
	}
	return int(e.between64(min, max)), nil
}

// randomFloat returns a float in [min, max]. A missing decimals argument picks
// a random digit; a negative one leaves the value unrounded. A missing max is
// min + MaxInt32.
func randomFloat(e *Engine, a Args) (any, error) {
	decimals, err := a.OptInt(0)
	if err != nil {
		return nil, err
	}
	min, err := a.Float(1, 0)
	if err != nil {
		return nil, err
	}
	maxArg, err := a.OptFloat(2)
	if err != nil {
		return nil, err
	}

	d := e.rng.IntN(10)
	if decimals != nil {
		d = *decimals
	}
	max := min + math.MaxInt32
	if maxArg != nil {
		max = *maxArg
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, invalidArg("range [%v, %v] is not finite", min, max)
	}
	if min > max {
		return nil, invalidArg("min %v is greater than max %v", min, max)
	}
	return e.randomFloat(d, min, max), nil
}
