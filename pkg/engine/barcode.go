package engine

import "strings"

func init() {
	register("barcode", map[string]Formatter{
		"ean13": func(e *Engine, _ Args) (any, error) {
			return e.ean(13), nil
		},
		"ean8": func(e *Engine, _ Args) (any, error) {
			return e.ean(8), nil
		},
		"isbn10": func(e *Engine, _ Args) (any, error) {
			code := e.digits(9)
			return code + string(ISBN10Checksum(code)), nil
		},
		"isbn13": func(e *Engine, _ Args) (any, error) {
			prefix := "978"
			if e.rng.IntN(2) == 1 {
				prefix = "979"
			}
			code := prefix + e.digits(9)
			return code + string(EANChecksum(code)), nil
		},
	})
}

func (e *Engine) digits(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(byte('0' + e.rng.IntN(10)))
	}
	return sb.String()
}

func (e *Engine) ean(length int) string {
	code := e.digits(length - 1)
	return code + string(EANChecksum(code))
}

// EANChecksum returns the check digit for an EAN-8 or EAN-13 body.
// Digits are weighted 3, 1, 3, ... from the right.
func EANChecksum(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		if i%2 == 0 {
			d *= 3
		}
		sum += d
	}
	return byte('0' + (10-sum%10)%10)
}

// ISBN10Checksum returns the check character for a nine-digit ISBN-10 body.
func ISBN10Checksum(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		sum += int(body[i]-'0') * (10 - i)
	}
	check := (11 - sum%11) % 11
	if check == 10 {
		return 'X'
	}
	return byte('0' + check)
}
