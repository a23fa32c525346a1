package faker

// Default arguments of RandomHTML.
const (
	DefaultHTMLMaxDepth = 4
	DefaultHTMLMaxWidth = 4
)

// RandomHTML returns an HTML document whose body nests up to maxDepth levels
// with at most maxWidth children per element.
func (g *Generator) RandomHTML(maxDepth, maxWidth int) (string, error) {
	return call[string](g, "randomHtml", maxDepth, maxWidth)
}
