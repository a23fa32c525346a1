package faker

// Semver returns a semantic version, optionally with a pre-release and build suffix.
func (g *Generator) Semver(preRelease, build bool) (string, error) {
	return call[string](g, "semver", preRelease, build)
}
