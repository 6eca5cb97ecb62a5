package money96

import "fmt"

// RoundingMode selects how a rounding engine resolves a nonzero remainder
// that cannot be represented exactly. HalfEven (banker's rounding) is the
// default used throughout the package unless a method's name says
// otherwise (Trunc, Ceil, Floor).
type RoundingMode int

const (
	// Down truncates toward zero.
	Down RoundingMode = iota
	// HalfUp rounds half away from zero.
	HalfUp
	// HalfEven rounds half to even (banker's rounding). This is the default.
	HalfEven
	// Up rounds away from zero on any nonzero remainder.
	Up
)

func (m RoundingMode) String() string {
	switch m {
	case Down:
		return "Down"
	case HalfUp:
		return "HalfUp"
	case HalfEven:
		return "HalfEven"
	case Up:
		return "Up"
	default:
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
}

// roundToDigits keeps the top n decimal digits of v, rounding off the
// remaining digits(v)-n digits under mode m. It implements the
// round-to-first-n-digits contract: n < 0 yields 0, n >= digits(v) returns v
// unchanged, and otherwise splits v into d = v/10^k, r = v mod 10^k, where
// k = digits(v)-n, resolving r under the chosen rounding mode.
//
// Rounding up can carry a value like 99...9 into 10...0, increasing its
// digit count by one; callers that need an exact target digit count must
// re-check digits(result) after calling this.
func roundToDigits(v u256, n int, m RoundingMode) u256 {
	if n < 0 {
		return u256Zero
	}
	d := v.prec()
	if n >= d {
		return v
	}
	k := d - n
	pow, ok := pow10U256(k)
	if !ok {
		// Astronomically far outside the representable range; the result
		// is an overflow that callers must detect via digit counts, so
		// rounding to zero here is safe: it cannot be mistaken for a valid
		// in-range result.
		return u256Zero
	}
	quo, rem := v.divMod(pow)

	switch m {
	case Down:
		return quo
	case Up:
		if !rem.isZero() {
			quo, _ = quo.add(u128ToU256(u128One))
		}
		return quo
	case HalfUp:
		half, _ := halfUnit(k)
		if rem.cmp(half) >= 0 {
			quo, _ = quo.add(u128ToU256(u128One))
		}
		return quo
	case HalfEven:
		half, _ := halfUnit(k)
		switch rem.cmp(half) {
		case 1:
			quo, _ = quo.add(u128ToU256(u128One))
		case 0:
			if quo.isOdd() {
				quo, _ = quo.add(u128ToU256(u128One))
			}
		}
		return quo
	default:
		return quo
	}
}

// halfUnit returns 5*10^(k-1), the boundary value used to detect an exact
// half remainder when discarding k digits.
func halfUnit(k int) (u256, bool) {
	if k <= 0 {
		return u256Zero, false
	}
	p, ok := pow10U256(k - 1)
	if !ok {
		return u256Zero, false
	}
	return p.mulSmall(5)
}

// maxCoefU128 is the largest representable coefficient, 2^96-1.
var maxCoefU128 = u128{hi: 0xFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}

// maxCoefDigits is len("79228162514264337593543950335").
const maxCoefDigits = 29

// truncateToMaxCoefficient reduces v, a value that may exceed 96 bits, to
// the largest-precision value <= 2^96-1 using HalfEven rounding, and
// reports how many decimal digits were removed in the process; the caller
// decreases the operand's scale by that amount (but not below zero) and
// fails with ErrOverflow itself if doing so would require a negative
// scale, meaning the integer part alone does not fit.
//
// The loop first rounds v to 29 digits; if that HalfEven round carries
// into a 30th digit, it rounds to 29 digits again. A 29-digit value that
// still exceeds MAX has one further digit removed, and the check repeats.
func truncateToMaxCoefficient(v u256) (coef u128, digitsRemoved int) {
	cur := v
	for {
		d := cur.prec()
		if d > maxCoefDigits {
			cur = roundToDigits(cur, maxCoefDigits, HalfEven)
			digitsRemoved += d - maxCoefDigits
			continue
		}
		if fits128(cur) && cur.lo.cmp(maxCoefU128) <= 0 {
			return cur.lo, digitsRemoved
		}
		// d <= maxCoefDigits but the value still exceeds MAX: shed one
		// more digit and recheck.
		cur = roundToDigits(cur, d-1, HalfEven)
		digitsRemoved++
	}
}

func fits128(v u256) bool {
	return v.hi.isZero()
}
