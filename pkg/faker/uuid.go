package faker

// UUID returns a version 4 UUID drawn from the generator's stream.
func (g *Generator) UUID() (string, error) {
	return call[string](g, "uuid")
}
