package faker

// BloodType returns an ABO blood type, e.g. "AB".
func (g *Generator) BloodType() (string, error) {
	return call[string](g, "bloodType")
}

// BloodRh returns a Rh factor, "+" or "-".
func (g *Generator) BloodRh() (string, error) {
	return call[string](g, "bloodRh")
}

// BloodGroup returns a blood type with its Rh factor, e.g. "AB+".
func (g *Generator) BloodGroup() (string, error) {
	return call[string](g, "bloodGroup")
}
