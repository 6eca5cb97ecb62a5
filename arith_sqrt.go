package money96

import "fmt"

// u256DigitCapacity is the largest digit count a u256 intermediate can
// hold, i.e. the highest index present in the pow10 cache.
const u256DigitCapacity = len(pow10U256Cache) - 1

// Sqrt returns the square root of d, computed by Newton-Raphson iteration
// over the coefficient after prescaling to an even working scale of at
// least 56 (less when the integer part has more than 21 digits, see the
// clamp below). It fails with
// ErrInvalidOperation if d is negative.
func (d Decimal) Sqrt() (Decimal, error) {
	if d.neg {
		return Decimal{}, fmt.Errorf("computing sqrt(%v): %w: square root of negative", d, ErrInvalidOperation)
	}
	if d.coef.isZero() {
		return newSafe(false, u128Zero, int(d.scale)/2)
	}

	es := int(d.scale)
	n := 56
	if es > 56 {
		if es%2 == 0 {
			n = es
		} else {
			n = es + 1
		}
	}
	shift := n - es

	// c*10^shift can in principle need more digits than u256 can hold
	// (c itself may already carry MaxDigits digits); clamp shift to
	// whatever headroom is actually available, which shrinks the
	// resulting scale in that case instead of overflowing. Inputs whose
	// integer part has at most 21 digits (prec(c) - scale <= 21) never hit
	// this clamp.
	if headroom := u256DigitCapacity - d.coef.prec(); shift > headroom {
		shift = headroom
		n = es + shift
	}
	if n%2 != 0 {
		n--
		shift--
	}
	if shift < 0 {
		shift, n = 0, es
	}

	c, ok := d.coef.toU256().lsh10(shift)
	if !ok {
		return Decimal{}, fmt.Errorf("computing sqrt(%v): %w", d, ErrInternal)
	}

	x := sqrtNewton(c)

	coef, removed := truncateToMaxCoefficient(x)
	scale := n/2 - removed
	if scale < 0 {
		return Decimal{}, fmt.Errorf("computing sqrt(%v): %w", d, ErrOverflow)
	}
	result, err := newSafe(false, coef, scale)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing sqrt(%v): %w", d, err)
	}
	return result.Trim(es / 2), nil
}

// sqrtNewton computes floor(sqrt(c)) via the standard integer Newton
// iteration: start from a power-of-two overestimate, then repeatedly
// average x with c/x until the sequence stops decreasing.
func sqrtNewton(c u256) u256 {
	half := (c.bitLen() + 1) / 2
	x := u256Zero.setBit(half)

	for {
		q, _ := c.divMod(x)
		next, _ := x.add(q)
		next = next.half()
		if next.cmp(x) >= 0 {
			return x
		}
		x = next
	}
}
