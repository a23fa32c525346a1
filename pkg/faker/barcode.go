package faker

// EAN13 returns an EAN-13 barcode with a valid check digit, e.g. "4006381333931".
func (g *Generator) EAN13() (string, error) {
	return call[string](g, "ean13")
}

// EAN8 returns an EAN-8 barcode with a valid check digit, e.g. "73513537".
func (g *Generator) EAN8() (string, error) {
	return call[string](g, "ean8")
}

// ISBN10 returns an ISBN-10 code, e.g. "4881416324". The check character may be "X".
func (g *Generator) ISBN10() (string, error) {
	return call[string](g, "isbn10")
}

// ISBN13 returns an ISBN-13 code, e.g. "9790404436093".
func (g *Generator) ISBN13() (string, error) {
	return call[string](g, "isbn13")
}
