package engine

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ligatures are letters that do not decompose into an ASCII base letter.
var ligatures = strings.NewReplacer("ß", "ss", "æ", "ae", "Æ", "AE", "ø", "o", "Ø", "O", "œ", "oe", "Œ", "OE", "ł", "l", "Ł", "L")

func init() {
	register("internet", map[string]Formatter{
		"email": func(e *Engine, _ Args) (any, error) {
			domain := "freeEmailDomain"
			if e.rng.IntN(2) == 1 {
				domain = "domainName"
			}
			return e.emailAt(domain)
		},
		"safeEmail": func(e *Engine, _ Args) (any, error) {
			return e.emailAt("safeEmailDomain")
		},
		"freeEmail": func(e *Engine, _ Args) (any, error) {
			return e.emailAt("freeEmailDomain")
		},
		"companyEmail": func(e *Engine, _ Args) (any, error) {
			return e.emailAt("domainName")
		},
		"freeEmailDomain": func(e *Engine, _ Args) (any, error) {
			return e.pick("free email domain", e.data().Internet.FreeEmailDomains)
		},
		"safeEmailDomain": func(e *Engine, _ Args) (any, error) {
			return e.pick("safe email domain", e.data().Internet.SafeEmailDomains)
		},
		"userName": func(e *Engine, _ Args) (any, error) {
			s, err := e.parseOne("user name", e.data().Internet.UserNameFormats)
			if err != nil {
				return nil, err
			}
			return asciiIdentifier(e.bothify(s), "._"), nil
		},
		"password": func(e *Engine, a Args) (any, error) {
			min, err := a.Int(0, 6)
			if err != nil {
				return nil, err
			}
			max, err := a.Int(1, 20)
			if err != nil {
				return nil, err
			}
			if min < 1 || min > max {
				return nil, invalidArg("password length range [%d, %d] is invalid", min, max)
			}
			return e.faker.Password(true, true, true, true, false, e.between(min, max)), nil
		},
		"domainWord": func(e *Engine, _ Args) (any, error) {
			return e.domainWord()
		},
		"domainName": func(e *Engine, _ Args) (any, error) {
			return e.domainName()
		},
		"tld": func(e *Engine, _ Args) (any, error) {
			return e.pick("tld", e.data().Internet.TLDs)
		},
		"url": func(e *Engine, _ Args) (any, error) {
			return e.parseOne("url", e.data().Internet.URLFormats)
		},
		"slug": func(e *Engine, a Args) (any, error) {
			nb, variable, err := countAndVariable(a, 6)
			if err != nil {
				return nil, err
			}
			if nb <= 0 {
				return "", nil
			}
			if variable {
				nb = e.randomizeCount(nb)
			}
			words, err := e.words(nb)
			if err != nil {
				return nil, err
			}
			return strings.ToLower(strings.Join(words, "-")), nil
		},
		"ipv4": func(e *Engine, _ Args) (any, error) {
			return e.faker.IPv4Address(), nil
		},
		"ipv6": func(e *Engine, _ Args) (any, error) {
			return e.faker.IPv6Address(), nil
		},
		"localIpv4": func(e *Engine, _ Args) (any, error) {
			if e.rng.IntN(2) == 0 {
				return fmt.Sprintf("10.%d.%d.%d", e.rng.IntN(256), e.rng.IntN(256), e.rng.IntN(256)), nil
			}
			return fmt.Sprintf("192.168.%d.%d", e.rng.IntN(256), e.rng.IntN(256)), nil
		},
		"macAddress": func(e *Engine, _ Args) (any, error) {
			return strings.ToUpper(e.faker.MacAddress()), nil
		},
	})
}

func (e *Engine) emailAt(domainFormatter string) (string, error) {
	user, err := e.call("userName")
	if err != nil {
		return "", err
	}
	domain, err := e.call(domainFormatter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s@%s", user, domain), nil
}

func (e *Engine) domainWord() (string, error) {
	v, err := e.call("lastName")
	if err != nil {
		return "", err
	}
	return asciiIdentifier(v.(string), "-"), nil
}

func (e *Engine) domainName() (string, error) {
	word, err := e.domainWord()
	if err != nil {
		return "", err
	}
	tld, err := e.pick("tld", e.data().Internet.TLDs)
	if err != nil {
		return "", err
	}
	return word + "." + tld, nil
}

// asciiIdentifier folds s to lowercase ASCII, dropping accents and every
// character that is not a letter, a digit or one of keep.
func asciiIdentifier(s, keep string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, ligatures.Replace(s))
	if err != nil {
		folded = s
	}

	var sb strings.Builder
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case strings.ContainsRune(keep, r):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
