package faker

// Default arguments of Password and Slug.
const (
	DefaultPasswordMinLength = 6
	DefaultPasswordMaxLength = 20
	DefaultSlugWords         = 6
)

// Email returns an address at a free provider or a company domain.
func (g *Generator) Email() (string, error) {
	return call[string](g, "email")
}

// SafeEmail returns an address at a reserved example domain.
func (g *Generator) SafeEmail() (string, error) {
	return call[string](g, "safeEmail")
}

// FreeEmail returns an address at a free email provider.
func (g *Generator) FreeEmail() (string, error) {
	return call[string](g, "freeEmail")
}

// CompanyEmail returns an address at a company domain.
func (g *Generator) CompanyEmail() (string, error) {
	return call[string](g, "companyEmail")
}

// FreeEmailDomain returns a free email provider domain, e.g. "gmail.com".
func (g *Generator) FreeEmailDomain() (string, error) {
	return call[string](g, "freeEmailDomain")
}

// SafeEmailDomain returns a reserved example domain, e.g. "example.org".
func (g *Generator) SafeEmailDomain() (string, error) {
	return call[string](g, "safeEmailDomain")
}

// UserName returns an ASCII user name, e.g. "jdoe".
func (g *Generator) UserName() (string, error) {
	return call[string](g, "userName")
}

// Password returns a password of length in [minLength, maxLength].
func (g *Generator) Password(minLength, maxLength int) (string, error) {
	return call[string](g, "password", minLength, maxLength)
}

// DomainName returns a domain name, e.g. "wolffdeckow.net".
func (g *Generator) DomainName() (string, error) {
	return call[string](g, "domainName")
}

// DomainWord returns the first label of a domain name, e.g. "wolffdeckow".
func (g *Generator) DomainWord() (string, error) {
	return call[string](g, "domainWord")
}

// TLD returns a top level domain without the dot, e.g. "org".
func (g *Generator) TLD() (string, error) {
	return call[string](g, "tld")
}

// URL returns an http or https URL.
func (g *Generator) URL() (string, error) {
	return call[string](g, "url")
}

// Slug returns about nbWords lowercase words joined by hyphens.
// Set variable to false for exactly nbWords words.
func (g *Generator) Slug(nbWords int, variable bool) (string, error) {
	return call[string](g, "slug", nbWords, variable)
}

// IPv4 returns an IPv4 address.
func (g *Generator) IPv4() (string, error) {
	return call[string](g, "ipv4")
}

// IPv6 returns an IPv6 address.
func (g *Generator) IPv6() (string, error) {
	return call[string](g, "ipv6")
}

// LocalIPv4 returns a private IPv4 address in 10.0.0.0/8 or 192.168.0.0/16.
func (g *Generator) LocalIPv4() (string, error) {
	return call[string](g, "localIpv4")
}

// MACAddress returns a MAC address, e.g. "32:F1:39:2F:D6:18".
func (g *Generator) MACAddress() (string, error) {
	return call[string](g, "macAddress")
}
