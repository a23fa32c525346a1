package engine

func init() {
	register("phone", map[string]Formatter{
		"phoneNumber": func(e *Engine, _ Args) (any, error) {
			format, err := e.pick("phone number", e.data().Phone.Formats)
			if err != nil {
				return nil, err
			}
			return e.bothify(format), nil
		},
		"e164PhoneNumber": func(e *Engine, _ Args) (any, error) {
			if formats := e.data().Phone.E164Formats; len(formats) > 0 {
				return e.bothify(formats[e.rng.IntN(len(formats))]), nil
			}
			// Without a national plan, any country code followed by a subscriber number.
			return "+" + e.bothify("%##########"), nil
		},
		"imei": func(e *Engine, _ Args) (any, error) {
			body := e.digits(14)
			return body + string(LuhnChecksum(body)), nil
		},
	})
}

// LuhnChecksum returns the Luhn check digit for body.
func LuhnChecksum(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[len(body)-1-i] - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return byte('0' + (10-sum%10)%10)
}
