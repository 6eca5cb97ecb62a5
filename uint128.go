package money96

import "math/bits"

// u128 is a fixed-width unsigned 128-bit integer. It is used to hold the
// 96-bit coefficient of a Decimal; operations that need more room, such
// as aligning two operands to a common scale, widen to u256.
type u128 struct {
	hi, lo uint64
}

var (
	u128Zero = u128{}
	u128One  = u128{hi: 0, lo: 1}
)

func u128FromUint64(x uint64) u128 {
	return u128{lo: x}
}

func (x u128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x u128) cmp(y u128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	}
	return 0
}

// add returns x+y along with a carry-out of 1 if the sum overflows 128 bits.
func (x u128) add(y u128) (z u128, carry uint64) {
	var c uint64
	z.lo, c = bits.Add64(x.lo, y.lo, 0)
	z.hi, carry = bits.Add64(x.hi, y.hi, c)
	return z, carry
}

// sub returns x-y along with a borrow-out of 1 if y is greater than x.
func (x u128) sub(y u128) (z u128, borrow uint64) {
	var b uint64
	z.lo, b = bits.Sub64(x.lo, y.lo, 0)
	z.hi, borrow = bits.Sub64(x.hi, y.hi, b)
	return z, borrow
}

// subAbs returns |x-y|, assuming the caller has already determined the
// larger of the two operands is not needed separately.
func (x u128) subAbs(y u128) u128 {
	if x.cmp(y) >= 0 {
		z, _ := x.sub(y)
		return z
	}
	z, _ := y.sub(x)
	return z
}

// mul returns the full 256-bit product of x and y, using the schoolbook
// decomposition x = xHi*2^64+xLo, y = yHi*2^64+yLo.
func (x u128) mul(y u128) u256 {
	uHi, uLo := bits.Mul64(x.hi, y.hi)
	v1Hi, v1Lo := bits.Mul64(x.hi, y.lo)
	v2Hi, v2Lo := bits.Mul64(x.lo, y.hi)
	v, vCarry := u128{hi: v1Hi, lo: v1Lo}.add(u128{hi: v2Hi, lo: v2Lo})
	wHi, loLo := bits.Mul64(x.lo, y.lo)

	loHi, midCarry := bits.Add64(v.lo, wHi, 0)
	hiLo, hiCarry := bits.Add64(uLo, v.hi, midCarry)
	hiHi, _ := bits.Add64(uHi, vCarry, hiCarry)

	return u256{
		hi: u128{hi: hiHi, lo: hiLo},
		lo: u128{hi: loHi, lo: loLo},
	}
}

// mulSmall multiplies x by a uint64 multiplier and reports whether the
// product still fits in 128 bits.
func (x u128) mulSmall(m uint64) (z u128, ok bool) {
	p := x.mul(u128FromUint64(m))
	return p.lo, p.hi.isZero()
}

func (x u128) toU256() u256 {
	return u256{lo: x}
}

// lsh shifts x left by n bits (0 <= n < 128), discarding bits shifted past
// bit 127.
func (x u128) lsh(n uint) u128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return u128{hi: x.hi<<n | x.lo>>(64-n), lo: x.lo << n}
	case n < 128:
		return u128{hi: x.lo << (n - 64), lo: 0}
	default:
		return u128{}
	}
}

// rsh shifts x right by n bits (0 <= n < 128).
func (x u128) rsh(n uint) u128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return u128{hi: x.hi >> n, lo: x.lo>>n | x.hi<<(64-n)}
	case n < 128:
		return u128{hi: 0, lo: x.hi >> (n - 64)}
	default:
		return u128{}
	}
}

// lsh10 multiplies x by 10^n and reports whether the result still fits in
// 128 bits. It is the coefficient-scaling primitive used when zero-padding
// a coefficient to a larger scale (Round, Pad).
func (x u128) lsh10(n int) (u128, bool) {
	if n == 0 {
		return x, true
	}
	p, ok := pow10U128(n)
	if !ok {
		return u128{}, false
	}
	prod := x.mul(p)
	return prod.lo, prod.hi.isZero()
}

// quoRem computes q = x/y, r = x%y. The caller must ensure y is nonzero.
func (x u128) quoRem(y u128) (q, r u128) {
	qq, rr := x.toU256().divMod(y.toU256())
	return qq.lo, rr.lo
}

// bitLen returns the position of the most significant set bit plus one, or
// 0 if x is zero.
func (x u128) bitLen() int {
	if x.hi != 0 {
		return 128 - bits.LeadingZeros64(x.hi)
	}
	return 64 - bits.LeadingZeros64(x.lo)
}

// prec returns the number of decimal digits needed to represent x, with
// prec(0) == 0.
func (x u128) prec() int {
	left, right := 0, len(pow10U128Cache)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(pow10U128Cache[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// pow10U128Cache is pre-filled at package initialization (rather than grown
// lazily behind a mutex) since its size is bounded: any 128-bit value has at
// most 39 decimal digits, so the whole useful cache is small and constant.
var pow10U128Cache [39]u128

func init() {
	pow10U128Cache[0] = u128One
	for i := 1; i < len(pow10U128Cache); i++ {
		v, ok := pow10U128Cache[i-1].mulSmall(10)
		if !ok {
			panic("money96: pow10U128Cache overflowed during initialization")
		}
		pow10U128Cache[i] = v
	}
}

// pow10U128 returns 10^n as a u128 and reports whether n is within the
// representable range for this width.
func pow10U128(n int) (u128, bool) {
	if n < 0 || n >= len(pow10U128Cache) {
		return u128{}, false
	}
	return pow10U128Cache[n], true
}
