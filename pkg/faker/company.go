package faker

// Company returns a company name, e.g. "Acme Ltd".
func (g *Generator) Company() (string, error) {
	return call[string](g, "company")
}

// CompanySuffix returns a legal form suffix, e.g. "Ltd".
func (g *Generator) CompanySuffix() (string, error) {
	return call[string](g, "companySuffix")
}

// JobTitle returns a job title, e.g. "Cashier".
func (g *Generator) JobTitle() (string, error) {
	return call[string](g, "jobTitle")
}
