package faker

// HexColor returns a hex color, e.g. "#fa3cc2".
func (g *Generator) HexColor() (string, error) {
	return call[string](g, "hexColor")
}

// SafeHexColor returns one of the 16 web-safe hex colors, e.g. "#ff0000".
func (g *Generator) SafeHexColor() (string, error) {
	return call[string](g, "safeHexColor")
}

// RGBColorAsArray returns red, green and blue components in [0, 255].
func (g *Generator) RGBColorAsArray() ([]int, error) {
	return call[[]int](g, "rgbColorAsArray")
}

// RGBColor returns comma separated components, e.g. "0,255,122".
func (g *Generator) RGBColor() (string, error) {
	return call[string](g, "rgbColor")
}

// RGBCSSColor returns a CSS rgb() color, e.g. "rgb(0,255,122)".
func (g *Generator) RGBCSSColor() (string, error) {
	return call[string](g, "rgbCssColor")
}

// RGBACSSColor returns a CSS rgba() color, e.g. "rgba(0,255,122,0.8)".
func (g *Generator) RGBACSSColor() (string, error) {
	return call[string](g, "rgbaCssColor")
}

// SafeColorName returns a web-safe color name, e.g. "fuchsia".
func (g *Generator) SafeColorName() (string, error) {
	return call[string](g, "safeColorName")
}

// ColorName returns a color name, e.g. "Gainsboro".
func (g *Generator) ColorName() (string, error) {
	return call[string](g, "colorName")
}

// HSLColor returns comma separated hue, saturation and lightness, e.g. "340,50,20".
func (g *Generator) HSLColor() (string, error) {
	return call[string](g, "hslColor")
}

// HSLColorAsArray returns hue in [0, 360], saturation and lightness in [0, 100].
func (g *Generator) HSLColorAsArray() ([]int, error) {
	return call[[]int](g, "hslColorAsArray")
}
