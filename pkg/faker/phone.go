package faker

// PhoneNumber returns a phone number in a national format.
func (g *Generator) PhoneNumber() (string, error) {
	return call[string](g, "phoneNumber")
}

// E164PhoneNumber returns a phone number in E.164 format, e.g. "+27113456789".
func (g *Generator) E164PhoneNumber() (string, error) {
	return call[string](g, "e164PhoneNumber")
}

// IMEI returns a 15 digit IMEI with a Luhn check digit.
func (g *Generator) IMEI() (string, error) {
	return call[string](g, "imei")
}
