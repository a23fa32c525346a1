package faker

import "math"

// AnyDigits lets the engine choose the number of digits of Integer.
const AnyDigits = -1

// DefaultMaxNumber is the default upper bound of NumberBetween.
const DefaultMaxNumber = math.MaxInt32

// Integer returns an integer with at most nbDigits digits, or exactly nbDigits
// when strict is set. Pass AnyDigits to let the engine pick 1 to 9 digits;
// zero digits always yields 0.
func (g *Generator) Integer(nbDigits int, strict bool) (int, error) {
	return call[int](g, "randomNumber", digitsArg(nbDigits), strict)
}

// RandomNumber returns an integer with at most nbDigits digits.
//
// Deprecated: use Integer.
func (g *Generator) RandomNumber(nbDigits int, strict bool) (int, error) {
	return call[int](g, "randomNumber", digitsArg(nbDigits), strict)
}

// NumberBetween returns an integer in [min, max].
func (g *Generator) NumberBetween(min, max int) (int, error) {
	return call[int](g, "numberBetween", min, max)
}

func digitsArg(n int) any {
	if n == AnyDigits {
		return nil
	}
	return n
}
