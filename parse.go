package money96

import (
	"fmt"
	"strings"
)

// maxParseDigits bounds the number of coefficient digits Parse will
// accumulate before failing. It is comfortably larger than MaxDigits (the
// 29 significant digits the envelope ultimately rounds to), leaving
// headroom for the exact rounding steps in normalizeParsed, while staying
// well inside u256's ~77-digit capacity.
const maxParseDigits = 60

// Parse converts s to a Decimal, following the grammar:
//
//	number   ::= sign? ( digits ('.' digits?)? | '.' digits ) exponent?
//	sign     ::= '+' | '-'
//	digits   ::= DIGIT+
//	exponent ::= ('e'|'E') sign? digits
//
// Leading and trailing whitespace is trimmed. Underscores between two
// digits are permitted and ignored. If the input specifies more than
// MaxScale fractional digits, the excess is rounded off under HALF_EVEN;
// if the resulting coefficient exceeds 96 bits, it is likewise reduced by
// HALF_EVEN rounding, decreasing the scale accordingly. Parse fails with
// ErrConversionSyntax on malformed input and ErrOverflow when the integer
// part alone cannot fit in 96 bits. Parse also fails with
// ErrConversionSyntax when the input has more than maxParseDigits digits
// in total or an exponent whose magnitude exceeds 10000; such inputs are
// not rounded.
func Parse(s string) (Decimal, error) {
	return parse(s)
}

// MustParse is like Parse but panics instead of returning an error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money96.MustParse(%q) failed: %v", s, err))
	}
	return d
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("%w: empty input", ErrConversionSyntax)
	}

	pos, width := 0, len(s)

	var neg bool
	if pos < width && (s[pos] == '+' || s[pos] == '-') {
		neg = s[pos] == '-'
		pos++
	}

	var coef u256
	var digits, fracDigits int
	var sawDigit bool

	readDigits := func() error {
		for pos < width {
			c := s[pos]
			if c == '_' {
				if !sawDigit || !isDigit(s[pos-1]) || pos+1 >= width || !isDigit(s[pos+1]) {
					return fmt.Errorf("%w: misplaced underscore", ErrConversionSyntax)
				}
				pos++
				continue
			}
			if !isDigit(c) {
				break
			}
			if digits >= maxParseDigits {
				return fmt.Errorf("%w: too many digits", ErrConversionSyntax)
			}
			v, ok := coef.mulSmall(10)
			if !ok {
				return fmt.Errorf("%w: coefficient too large", ErrOverflow)
			}
			v, carry := v.add(u128ToU256(u128FromUint64(uint64(c - '0'))))
			if carry != 0 {
				return fmt.Errorf("%w: coefficient too large", ErrOverflow)
			}
			coef = v
			digits++
			sawDigit = true
			pos++
		}
		return nil
	}

	if err := readDigits(); err != nil {
		return Decimal{}, err
	}

	if pos < width && s[pos] == '.' {
		pos++
		before := digits
		if err := readDigits(); err != nil {
			return Decimal{}, err
		}
		fracDigits = digits - before
	}

	if !sawDigit {
		return Decimal{}, fmt.Errorf("%w: no digits", ErrConversionSyntax)
	}

	var exp int
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		var eneg bool
		if pos < width && (s[pos] == '+' || s[pos] == '-') {
			eneg = s[pos] == '-'
			pos++
		}
		start := pos
		for pos < width && isDigit(s[pos]) {
			exp = exp*10 + int(s[pos]-'0')
			if exp > 10_000 {
				return Decimal{}, fmt.Errorf("%w: exponent too large", ErrConversionSyntax)
			}
			pos++
		}
		if pos == start {
			return Decimal{}, fmt.Errorf("%w: missing exponent digits", ErrConversionSyntax)
		}
		if eneg {
			exp = -exp
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("%w: unexpected character %q", ErrConversionSyntax, s[pos])
	}

	// r is the net number of digits required to the right of the decimal
	// point: the fractional digits already parsed, minus the explicit
	// exponent (a positive exponent shifts the point right, reducing r).
	r := fracDigits - exp

	return normalizeParsed(neg, coef, r)
}

// normalizeParsed applies the parser's normalization steps to a raw
// (coefficient, net required scale) pair: clamp an over-long fractional
// part to MaxScale via HALF_EVEN rounding, grow the coefficient when the
// net scale is negative, and finally fit the result to the 96-bit
// envelope, decreasing scale as digits are shed.
func normalizeParsed(neg bool, coef u256, r int) (Decimal, error) {
	switch {
	case r > MaxScale:
		k := r - MaxScale
		n := coef.prec() - k
		if n < 0 {
			n = 0
		}
		coef = roundToDigits(coef, n, HalfEven)
		r = MaxScale
	case r < 0:
		grown, ok := coef.lsh10(-r)
		if !ok {
			return Decimal{}, fmt.Errorf("%w: coefficient too large", ErrOverflow)
		}
		coef = grown
		r = 0
	}

	coef128, removed := truncateToMaxCoefficient(coef)
	r -= removed
	if r < 0 {
		return Decimal{}, fmt.Errorf("%w: integer part exceeds 96 bits", ErrOverflow)
	}

	return newSafe(neg, coef128, r)
}
