package faker

// MD5 returns a hex encoded MD5 digest.
func (g *Generator) MD5() (string, error) {
	return call[string](g, "md5")
}

// SHA1 returns a hex encoded SHA-1 digest.
func (g *Generator) SHA1() (string, error) {
	return call[string](g, "sha1")
}

// SHA256 returns a hex encoded SHA-256 digest.
func (g *Generator) SHA256() (string, error) {
	return call[string](g, "sha256")
}
