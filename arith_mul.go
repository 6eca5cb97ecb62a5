package money96

import "fmt"

// Mul returns d * e, rounded under HALF_EVEN and failing with ErrOverflow
// if the exact product cannot fit the 96-bit / 28-scale envelope.
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	f, err := d.mul(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return f, nil
}

// mul implements §4.6: a full 96x96->192-bit product with a preliminary
// scale ex+ey, fit to the envelope by shedding low-order digits (never
// raising the scale) until it fits, or failing once scale hits 0.
func (d Decimal) mul(e Decimal) (Decimal, error) {
	product := d.coef.mul(e.coef) // u256, exact
	scale := int(d.scale) + int(e.scale)
	neg := d.neg != e.neg

	if scale > MaxScale {
		k := scale - MaxScale
		n := product.prec() - k
		if n < 0 {
			n = 0
		}
		product = roundToDigits(product, n, HalfEven)
		scale = MaxScale
	}

	coef, removed := truncateToMaxCoefficient(product)
	scale -= removed
	if scale < 0 {
		return Decimal{}, ErrOverflow
	}
	if coef.isZero() {
		neg = false
	}
	return newSafe(neg, coef, scale)
}
