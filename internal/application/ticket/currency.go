package ticket

import "strconv"

// FormatGs formats an amount as guaranies with the currency prefix,
// e.g. 60000 -> "Gs. 60.000".
func FormatGs(amount int64) string {
	return "Gs. " + GroupThousands(amount)
}

// GroupThousands formats an integer with dot thousands separators.
// The guarani has no subunit, so there is never a decimal part.
func GroupThousands(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) > 3 {
		var out []byte
		lead := len(s) % 3
		if lead > 0 {
			out = append(out, s[:lead]...)
		}
		for i := lead; i < len(s); i += 3 {
			if len(out) > 0 {
				out = append(out, '.')
			}
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}
