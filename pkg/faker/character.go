package faker

// Letter returns a lowercase ASCII letter.
func (g *Generator) Letter() (string, error) {
	return call[string](g, "randomLetter")
}

// RandomLetter returns a lowercase ASCII letter.
//
// Deprecated: use Letter.
func (g *Generator) RandomLetter() (string, error) {
	return call[string](g, "randomLetter")
}

// ASCII returns a printable ASCII character other than space.
func (g *Generator) ASCII() (string, error) {
	return call[string](g, "randomAscii")
}

// RandomASCII returns a printable ASCII character other than space.
//
// Deprecated: use ASCII.
func (g *Generator) RandomASCII() (string, error) {
	return call[string](g, "randomAscii")
}
