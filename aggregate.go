package money96

import "fmt"

// Sum returns the sum of the given decimals, computed by folding
// [Decimal.Add] left to right. It fails with ErrInvalidOperation if no
// arguments are given, or with whatever error the first overflowing
// addition produces.
func Sum(d ...Decimal) (Decimal, error) {
	switch len(d) {
	case 0:
		return Decimal{}, fmt.Errorf("computing sum([]): %w", ErrInvalidOperation)
	case 1:
		return d[0], nil
	}
	acc := d[0]
	for _, f := range d[1:] {
		var err error
		acc, err = acc.Add(f)
		if err != nil {
			return Decimal{}, fmt.Errorf("computing sum(%v): %w", d, err)
		}
	}
	return acc, nil
}

// Mean returns the arithmetic mean of the given decimals: Sum(d...) / len(d).
func Mean(d ...Decimal) (Decimal, error) {
	sum, err := Sum(d...)
	if err != nil {
		return Decimal{}, err
	}
	n := NewFromInt64(int64(len(d)))
	mean, err := sum.Quo(n)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing mean(%v): %w", d, err)
	}
	return mean, nil
}

// Prod returns the product of the given decimals, computed by folding
// [Decimal.Mul] left to right.
func Prod(d ...Decimal) (Decimal, error) {
	switch len(d) {
	case 0:
		return Decimal{}, fmt.Errorf("computing prod([]): %w", ErrInvalidOperation)
	case 1:
		return d[0], nil
	}
	acc := d[0]
	for _, f := range d[1:] {
		var err error
		acc, err = acc.Mul(f)
		if err != nil {
			return Decimal{}, fmt.Errorf("computing prod(%v): %w", d, err)
		}
	}
	return acc, nil
}

// AddMul returns d + e*f, computed as [Decimal.Mul] followed by
// [Decimal.Add]; the product is rounded to the 96-bit / 28-scale envelope
// before the addition, so the operation is not fused.
func (d Decimal) AddMul(e, f Decimal) (Decimal, error) {
	ef, err := e.Mul(f)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v * %v]: %w", d, e, f, err)
	}
	sum, err := d.Add(ef)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v * %v]: %w", d, e, f, err)
	}
	return sum, nil
}

// SubMul returns d - e*f.
func (d Decimal) SubMul(e, f Decimal) (Decimal, error) {
	ef, err := e.Mul(f)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v * %v]: %w", d, e, f, err)
	}
	diff, err := d.Sub(ef)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v * %v]: %w", d, e, f, err)
	}
	return diff, nil
}

// AddQuo returns d + e/f.
func (d Decimal) AddQuo(e, f Decimal) (Decimal, error) {
	ef, err := e.Quo(f)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v / %v]: %w", d, e, f, err)
	}
	sum, err := d.Add(ef)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v / %v]: %w", d, e, f, err)
	}
	return sum, nil
}

// SubQuo returns d - e/f.
func (d Decimal) SubQuo(e, f Decimal) (Decimal, error) {
	ef, err := e.Quo(f)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v / %v]: %w", d, e, f, err)
	}
	diff, err := d.Sub(ef)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v / %v]: %w", d, e, f, err)
	}
	return diff, nil
}
