package faker

// AnyDecimals lets the engine choose the number of decimals.
const AnyDecimals = -1

// Float returns a float in [min, max] with at most maxDecimals decimals.
// Pass AnyDecimals to let the engine pick the precision.
func (g *Generator) Float(maxDecimals int, min, max float64) (float64, error) {
	return call[float64](g, "randomFloat", decimalsArg(maxDecimals), min, max)
}

// RandomFloat returns a float in [min, max] with at most maxDecimals decimals.
//
// Deprecated: use Float.
func (g *Generator) RandomFloat(maxDecimals int, min, max float64) (float64, error) {
	return call[float64](g, "randomFloat", decimalsArg(maxDecimals), min, max)
}

// decimalsArg maps AnyDecimals to the engine's omitted argument.
func decimalsArg(n int) any {
	if n == AnyDecimals {
		return nil
	}
	return n
}
