package money96

import "fmt"

// Add returns d + e, rounded under HALF_EVEN and failing with ErrOverflow
// if the exact sum cannot fit the 96-bit / 28-scale envelope.
func (d Decimal) Add(e Decimal) (Decimal, error) {
	f, err := d.addAligned(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return f, nil
}

// Sub returns d - e.
func (d Decimal) Sub(e Decimal) (Decimal, error) {
	f, err := d.addAligned(e.Neg())
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return f, nil
}

// addAligned implements §4.5: align scales in 256-bit width (the smaller
// operand may transiently exceed 96 bits once scaled up), combine by sign,
// normalize zero to a positive sign, then fit the result to the envelope.
func (d Decimal) addAligned(e Decimal) (Decimal, error) {
	scale := int(d.scale)

	// Widen to 256 bits before scaling up: a 96-bit coefficient scaled by
	// as much as 10^28 can need up to ~189 bits, more than a u128 can
	// hold even though the final, narrowed result always fits 96 bits.
	dwide, ewide := d.coef.toU256(), e.coef.toU256()

	var ok bool
	switch {
	case scale < int(e.scale):
		dwide, ok = dwide.lsh10(int(e.scale) - scale)
		scale = int(e.scale)
	case scale > int(e.scale):
		ewide, ok = ewide.lsh10(scale - int(e.scale))
	default:
		ok = true
	}
	if !ok {
		return Decimal{}, ErrOverflow
	}

	var sum u256
	var neg bool
	if d.neg == e.neg {
		sum, _ = dwide.add(ewide)
		neg = d.neg
	} else {
		switch dwide.cmp(ewide) {
		case 0:
			sum, neg = u256Zero, false
		case 1:
			sum, _ = dwide.sub(ewide)
			neg = d.neg
		default:
			sum, _ = ewide.sub(dwide)
			neg = e.neg
		}
	}
	if sum.isZero() {
		neg = false
	}

	coef, removed := truncateToMaxCoefficient(sum)
	scale -= removed
	if scale < 0 {
		return Decimal{}, ErrOverflow
	}
	return newSafe(neg, coef, scale)
}
