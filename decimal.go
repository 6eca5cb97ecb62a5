package money96

import "fmt"

// Decimal represents a finite fixed-point decimal number of the form
// (-1)^neg * coef * 10^(-scale). Its zero value is the numeric value 0.
// Decimal is immutable and safe for concurrent use by multiple goroutines.
type Decimal struct {
	neg   bool // sign bit; false for a zero coefficient unless set by Neg
	scale int8 // digits to the right of the decimal point, 0..MaxScale
	coef  u128 // unsigned coefficient, at most MaxCoef
}

const (
	// MinScale is the minimum number of digits after the decimal point.
	MinScale = 0
	// MaxScale is the maximum number of digits after the decimal point.
	MaxScale = 28
	// MaxDigits is the maximum number of decimal digits a coefficient can
	// have; not every MaxDigits-digit value is representable, since
	// MaxCoef itself has MaxDigits digits.
	MaxDigits = maxCoefDigits
)

// MaxCoef is the largest representable coefficient, 2^96-1.
var MaxCoef = maxCoefU128

var (
	Zero = MustNew(0, 0)
	One  = MustNew(1, 0)
	Two  = MustNew(2, 0)
	Ten  = MustNew(10, 0)
)

// newUnsafe builds a Decimal without validating scale or coefficient. Use
// only when both are already known to satisfy I1 and I2.
func newUnsafe(neg bool, coef u128, scale int) Decimal {
	if coef.isZero() {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: int8(scale)}
}

// newSafe builds a Decimal, validating I1 (scale range) and I2 (coefficient
// range).
func newSafe(neg bool, coef u128, scale int) (Decimal, error) {
	switch {
	case scale < MinScale || scale > MaxScale:
		return Decimal{}, fmt.Errorf("%w: scale %d out of range [%d, %d]", ErrInvalidOperation, scale, MinScale, MaxScale)
	case coef.cmp(MaxCoef) > 0:
		return Decimal{}, fmt.Errorf("%w: coefficient %s exceeds maximum %s", ErrOverflow, coef.decimalString(), MaxCoef.decimalString())
	}
	return newUnsafe(neg, coef, scale), nil
}

// NewFromInt64 builds a Decimal from a signed 64-bit integer at scale 0.
func NewFromInt64(v int64) Decimal {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = uint64(-v)
	}
	return newUnsafe(neg, u128FromUint64(mag), 0)
}

// NewFromComponents builds a Decimal from its raw parts, validating I1–I3.
// coef is given as three 32-bit words matching the in-memory layout (low,
// mid, high) so callers constructing from an external 96-bit coefficient
// need no further packing.
func NewFromComponents(neg bool, low, mid, high uint32, scale int) (Decimal, error) {
	coef := u128{
		hi: uint64(high),
		lo: uint64(mid)<<32 | uint64(low),
	}
	return newSafe(neg, coef, scale)
}

// New builds a Decimal from an unsigned integer coefficient and a scale,
// failing if the scale is out of range. The sign is always non-negative;
// use Neg to obtain a negative value.
func New(coef uint64, scale int) (Decimal, error) {
	return newSafe(false, u128FromUint64(coef), scale)
}

// MustNew is like New but panics instead of returning an error.
func MustNew(coef uint64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("money96.MustNew(%d, %d) failed: %v", coef, scale, err))
	}
	return d
}

// Coefficient returns the unsigned coefficient of d, split into 32-bit
// words matching the external layout (low, mid, high).
func (d Decimal) Coefficient() (low, mid, high uint32) {
	low = uint32(d.coef.lo)
	mid = uint32(d.coef.lo >> 32)
	high = uint32(d.coef.hi)
	return
}

// Scale returns the number of digits to the right of the decimal point,
// always within [MinScale, MaxScale].
func (d Decimal) Scale() int {
	return int(d.scale)
}

// IsNegative reports whether d's sign bit is set. A zero coefficient has
// IsNegative false, per the package's signed-zero policy, except for a
// zero whose sign bit was flipped by [Decimal.Neg].
func (d Decimal) IsNegative() bool {
	return d.neg
}

// IsZero reports whether d represents the numeric value 0, regardless of
// scale.
func (d Decimal) IsZero() bool {
	return d.coef.isZero()
}

// Sign returns -1, 0, or 1 depending on whether d is negative, zero, or
// positive.
func (d Decimal) Sign() int {
	switch {
	case d.coef.isZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -d. Neg of zero flips the sign bit, the one place the
// package's otherwise-always-positive-zero policy is intentionally broken
// (see the package documentation).
func (d Decimal) Neg() Decimal {
	return Decimal{neg: !d.neg, scale: d.scale, coef: d.coef}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	return newUnsafe(false, d.coef, int(d.scale))
}

// flagsAllowedMask selects the only bits the flags word of the 128-bit
// layout may set: bit 31 (sign) and bits 16-20 (scale).
const flagsAllowedMask = 0x801F0000

// Bits packs d into the Microsoft DECIMAL / .NET System.Decimal-compatible
// 128-bit layout (see the package documentation), returned as two 64-bit
// words: lo64 holds bits 0-63 of the coefficient (low, mid); hi64 holds
// bits 64-95 (high) in its low 32 bits and the flags word in its high 32
// bits.
func (d Decimal) Bits() (lo64, hi64 uint64) {
	var flags uint32
	flags |= uint32(d.scale) << 16
	if d.neg {
		flags |= 0x80000000
	}
	lo64 = d.coef.lo
	hi64 = uint64(flags)<<32 | d.coef.hi
	return lo64, hi64
}

// FromBits unpacks a Decimal from the Microsoft DECIMAL-compatible 128-bit
// layout produced by Bits, validating I1 (scale range) and I3 (reserved
// bits zero).
func FromBits(lo64, hi64 uint64) (Decimal, error) {
	flags := uint32(hi64 >> 32)
	if flags&^uint32(flagsAllowedMask) != 0 {
		return Decimal{}, fmt.Errorf("%w: reserved flag bits set (0x%08x)", ErrInvalidOperation, flags)
	}
	scale := int((flags >> 16) & 0x1F)
	neg := flags&0x80000000 != 0
	coef := u128{hi: hi64 & 0xFFFFFFFF, lo: lo64}
	return newSafe(neg, coef, scale)
}

// decimalString renders x in plain base-10 digits; used by error messages
// and as the core of the public text formatter in format.go.
func (x u128) decimalString() string {
	if x.isZero() {
		return "0"
	}
	var buf [40]byte
	i := len(buf)
	cur := x
	ten := u128FromUint64(10)
	for !cur.isZero() {
		q, r := cur.quoRem(ten)
		i--
		buf[i] = byte('0' + r.lo)
		cur = q
	}
	return string(buf[i:])
}
