package money96

import "strings"

// String implements fmt.Stringer, returning the minimal text such that
// parsing it reproduces the same (coefficient, scale, sign): a leading '-'
// when negative, the coefficient's digits zero-padded to at least
// Scale()+1 of them, with the decimal point inserted so that exactly
// Scale() digits follow it. Trailing zeros implied by the scale are never
// trimmed; see the package documentation for why that matters (I4).
func (d Decimal) String() string {
	return string(d.append(make([]byte, 0, 40)))
}

func (d Decimal) append(buf []byte) []byte {
	if d.neg {
		buf = append(buf, '-')
	}
	digits := d.coef.decimalString()
	scale := int(d.scale)
	if want := scale + 1; len(digits) < want {
		digits = strings.Repeat("0", want-len(digits)) + digits
	}
	if scale == 0 {
		return append(buf, digits...)
	}
	split := len(digits) - scale
	buf = append(buf, digits[:split]...)
	buf = append(buf, '.')
	buf = append(buf, digits[split:]...)
	return buf
}
