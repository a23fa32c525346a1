package faker

// UserAgent returns a browser user agent.
func (g *Generator) UserAgent() (string, error) {
	return call[string](g, "userAgent")
}

// Chrome returns a Chrome user agent.
func (g *Generator) Chrome() (string, error) {
	return call[string](g, "chrome")
}

// Firefox returns a Firefox user agent.
func (g *Generator) Firefox() (string, error) {
	return call[string](g, "firefox")
}

// Safari returns a Safari user agent.
func (g *Generator) Safari() (string, error) {
	return call[string](g, "safari")
}

// Opera returns an Opera user agent.
func (g *Generator) Opera() (string, error) {
	return call[string](g, "opera")
}

// InternetExplorer returns an Internet Explorer user agent.
func (g *Generator) InternetExplorer() (string, error) {
	return call[string](g, "internetExplorer")
}

// MSEdge returns a Microsoft Edge user agent.
func (g *Generator) MSEdge() (string, error) {
	return call[string](g, "msedge")
}
