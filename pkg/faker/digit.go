package faker

// Digit returns a digit in [0, 9].
func (g *Generator) Digit() (int, error) {
	return call[int](g, "randomDigit")
}

// RandomDigit returns a digit in [0, 9].
//
// Deprecated: use Digit.
func (g *Generator) RandomDigit() (int, error) {
	return call[int](g, "randomDigit")
}

// DigitNotNull returns a digit in [1, 9].
func (g *Generator) DigitNotNull() (int, error) {
	return call[int](g, "randomDigitNotNull")
}

// RandomDigitNotNull returns a digit in [1, 9].
//
// Deprecated: use DigitNotNull.
func (g *Generator) RandomDigitNotNull() (int, error) {
	return call[int](g, "randomDigitNotNull")
}

// DigitNot returns a digit in [0, 9] other than except.
func (g *Generator) DigitNot(except int) (int, error) {
	return call[int](g, "randomDigitNot", except)
}

// RandomDigitNot returns a digit in [0, 9] other than except.
//
// Deprecated: use DigitNot.
func (g *Generator) RandomDigitNot(except int) (int, error) {
	return call[int](g, "randomDigitNot", except)
}
