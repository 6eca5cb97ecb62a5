package money96

import "fmt"

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
//
// Comparison is value-based: scales are aligned before comparing, so 5 and
// 5.00 compare equal. See also [Decimal.CmpAbs] and [Decimal.CmpTotal].
func (d Decimal) Cmp(e Decimal) int {
	switch {
	case d.Sign() > e.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}
	if d.coef.isZero() && e.coef.isZero() {
		return 0
	}

	dw, ew := d.coef.toU256(), e.coef.toU256()
	switch {
	case d.scale < e.scale:
		dw, _ = dw.lsh10(int(e.scale) - int(d.scale))
	case d.scale > e.scale:
		ew, _ = ew.lsh10(int(d.scale) - int(e.scale))
	}
	c := dw.cmp(ew)
	if d.neg {
		c = -c
	}
	return c
}

// CmpAbs compares |d| and |e|.
func (d Decimal) CmpAbs(e Decimal) int {
	return d.Abs().Cmp(e.Abs())
}

// CmpTotal compares decimal representations, breaking numeric ties by
// scale so that values that compare equal under Cmp (5 and 5.00) still
// have a total order: the one with the larger scale (more fractional
// digits) sorts first.
func (d Decimal) CmpTotal(e Decimal) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case d.scale > e.scale:
		return -1
	case d.scale < e.scale:
		return 1
	}
	return 0
}

// Equal reports whether d and e represent the same value.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less reports whether d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// Max returns the larger of d and e, breaking numeric ties via CmpTotal.
func (d Decimal) Max(e Decimal) Decimal {
	if d.CmpTotal(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller of d and e, breaking numeric ties via CmpTotal.
func (d Decimal) Min(e Decimal) Decimal {
	if d.CmpTotal(e) <= 0 {
		return d
	}
	return e
}

// Clamp returns lo if d < lo, hi if d > hi, and d otherwise. It fails if
// lo is numerically greater than hi.
func (d Decimal) Clamp(lo, hi Decimal) (Decimal, error) {
	if lo.Cmp(hi) > 0 {
		return Decimal{}, fmt.Errorf("clamping %v: invalid range [%v, %v]", d, lo, hi)
	}
	if lo.CmpTotal(hi) > 0 {
		lo, hi = hi, lo
	}
	if d.CmpTotal(lo) < 0 {
		return lo, nil
	}
	if d.CmpTotal(hi) > 0 {
		return hi, nil
	}
	return d, nil
}

// roundTo drops digits from d's coefficient until its scale is exactly
// scale, rounding the removed digits under mode. It never raises the
// scale; callers needing to grow the scale use Pad. A HALF_EVEN carry can
// in rare cases still push the coefficient one digit past MaxCoef (e.g.
// rounding 99...9 up to 100...0 when d was already at 29 digits); the
// result is then narrowed again via truncateToMaxCoefficient, which may
// shed a further digit and reduce the scale below the requested value.
func (d Decimal) roundTo(scale int, mode RoundingMode) Decimal {
	if scale >= int(d.scale) {
		return d
	}
	k := int(d.scale) - scale
	wide := d.coef.toU256()
	n := wide.prec() - k
	if n < 0 {
		n = 0
	}
	wide = roundToDigits(wide, n, mode)
	coef, removed := truncateToMaxCoefficient(wide)
	finalScale := scale - removed
	if finalScale < 0 {
		finalScale = 0
	}
	return newUnsafe(d.neg, coef, finalScale)
}

// Round returns d rounded to scale digits after the decimal point using
// HALF_EVEN, or grown via zero-padding if scale exceeds the current
// scale. It fails with ErrInvalidOperation if scale is outside [0,
// MaxScale], and ErrOverflow if padding would exceed 96 bits.
func (d Decimal) Round(scale int) (Decimal, error) {
	if scale < MinScale || scale > MaxScale {
		return Decimal{}, fmt.Errorf("rounding %v to scale %d: %w", d, scale, ErrInvalidOperation)
	}
	if scale > int(d.scale) {
		wide, ok := d.coef.lsh10(scale - int(d.scale))
		if !ok || wide.cmp(MaxCoef) > 0 {
			return Decimal{}, fmt.Errorf("rounding %v to scale %d: %w", d, scale, ErrOverflow)
		}
		return newUnsafe(d.neg, wide, scale), nil
	}
	return d.roundTo(scale, HalfEven), nil
}

// Trunc returns d truncated (rounded toward zero) to scale digits after
// the decimal point. A negative scale is treated as zero; a scale beyond
// the current one leaves d unchanged.
func (d Decimal) Trunc(scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	return d.roundTo(scale, Down)
}

// Trim removes trailing zero digits down to, at most, scale digits after
// the decimal point.
func (d Decimal) Trim(scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	for int(d.scale) > scale {
		q, r := d.coef.quoRem(u128FromUint64(10))
		if !r.isZero() {
			break
		}
		d = newUnsafe(d.neg, q, int(d.scale)-1)
	}
	return d
}

// Ceil returns d rounded toward positive infinity to scale digits after
// the decimal point.
func (d Decimal) Ceil(scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	if d.neg {
		return d.roundTo(scale, Down)
	}
	return d.roundTo(scale, Up)
}

// Floor returns d rounded toward negative infinity to scale digits after
// the decimal point.
func (d Decimal) Floor(scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	if d.neg {
		return d.roundTo(scale, Up)
	}
	return d.roundTo(scale, Down)
}

// Pad zero-pads d to the given number of digits after the decimal point,
// capped at MaxScale; it returns d unchanged if doing so would overflow
// the 96-bit coefficient.
func (d Decimal) Pad(scale int) Decimal {
	if scale > MaxScale {
		scale = MaxScale
	}
	if scale <= int(d.scale) {
		return d
	}
	coef, ok := d.coef.lsh10(scale - int(d.scale))
	if !ok || coef.cmp(MaxCoef) > 0 {
		return d
	}
	return newUnsafe(d.neg, coef, scale)
}

// Rescale rounds or zero-pads d to scale digits after the decimal point.
// A negative scale is treated as zero. Zero-padding follows [Decimal.Pad]:
// the scale is capped at MaxScale, and d is returned unchanged if padding
// would overflow the 96-bit coefficient, so callers needing an exact scale
// check Scale() of the result.
func (d Decimal) Rescale(scale int) Decimal {
	if scale < 0 {
		scale = 0
	}
	if scale > int(d.scale) {
		return d.Pad(scale)
	}
	return d.roundTo(scale, HalfEven)
}

// Quantize rescales d to the same scale as e; e's sign and coefficient are
// ignored.
func (d Decimal) Quantize(e Decimal) Decimal {
	return d.Rescale(int(e.scale))
}
