package money96

import "fmt"

// quoTargetDigits is the significant-digit target the long-division loop
// in §4.7 runs the quotient out to before rounding down to MaxDigits-1 (28
// digits, to leave one digit of rounding headroom against the 29-digit
// coefficient ceiling).
const quoTargetDigits = MaxDigits

// quoMaxShift bounds how many extra factors of ten the dividend is scaled
// by while searching for either an exact quotient or one with
// quoTargetDigits. It is a loose backstop: the search also stops once
// cx*10^k no longer fits in a u256 (about 77 digits), and in practice it
// reaches quoTargetDigits long before either limit, since cy has at most
// MaxDigits digits.
const quoMaxShift = 96

// Quo returns d / e, computed by exact long division on the coefficients.
// An inexact quotient is run out to 29 significant digits and then
// rounded under HALF_EVEN to 28 significant digits.
// Quo fails with ErrDivisionByZero when e is zero and d is not, and with
// ErrInvalidOperation for 0/0.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	f, err := d.quo(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f, nil
}

// Inv returns 1 / d.
func (d Decimal) Inv() (Decimal, error) {
	f, err := One.quo(d)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [1 / %v]: %w", d, err)
	}
	return f, nil
}

func (d Decimal) quo(e Decimal) (Decimal, error) {
	if e.coef.isZero() {
		if d.coef.isZero() {
			return Decimal{}, ErrInvalidOperation
		}
		return Decimal{}, ErrDivisionByZero
	}

	cx := d.coef.toU256()
	cy := e.coef.toU256()
	neg := d.neg != e.neg

	var q, r u256
	k := 0
	for {
		scaled, ok := cx.lsh10(k)
		if !ok {
			break
		}
		q, r = scaled.divMod(cy)
		if r.isZero() || q.prec() >= quoTargetDigits {
			break
		}
		k++
		if k > quoMaxShift {
			break
		}
	}

	scale := int(d.scale) - int(e.scale) + k
	if !r.isZero() {
		target := quoTargetDigits - 1
		if before := q.prec(); before > target {
			q = roundToDigits(q, target, HalfEven)
			scale -= before - target
		}
	}

	coef, removed := truncateToMaxCoefficient(q)
	scale -= removed
	if scale < 0 {
		return Decimal{}, ErrOverflow
	}
	if coef.isZero() {
		neg = false
	}
	return newSafe(neg, coef, scale)
}
