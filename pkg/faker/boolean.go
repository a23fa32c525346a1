package faker

// DefaultChanceOfTrue is the default argument of Boolean.
const DefaultChanceOfTrue = 50

// Boolean returns true with the given percent chance, in [0, 100].
func (g *Generator) Boolean(chanceOfGettingTrue int) (bool, error) {
	return call[bool](g, "boolean", chanceOfGettingTrue)
}
