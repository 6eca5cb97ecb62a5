package money96

import "math/bits"

// u256 is a fixed-width unsigned 256-bit integer, composed of two u128
// halves. It is the intermediate width used while multiplying two 96-bit
// coefficients (a 192-bit product), long-dividing a scaled-up dividend, and
// iterating square roots.
type u256 struct {
	hi, lo u128
}

var u256Zero = u256{}

func u128ToU256(x u128) u256 { return u256{lo: x} }

func (x u256) isZero() bool {
	return x.hi.isZero() && x.lo.isZero()
}

func (x u256) cmp(y u256) int {
	if c := x.hi.cmp(y.hi); c != 0 {
		return c
	}
	return x.lo.cmp(y.lo)
}

func (x u256) add(y u256) (z u256, carry uint64) {
	lo, c1 := x.lo.add(y.lo)
	hi, c2 := x.hi.add(y.hi)
	hi, c3 := hi.add(u128FromUint64(c1))
	return u256{hi: hi, lo: lo}, c2 + c3
}

func (x u256) sub(y u256) (z u256, borrow uint64) {
	lo, b1 := x.lo.sub(y.lo)
	hi, b2 := x.hi.sub(y.hi)
	hi, b3 := hi.sub(u128FromUint64(b1))
	return u256{hi: hi, lo: lo}, b2 + b3
}

// half computes x/2 (floor), used by the square root iteration in place of
// a general division.
func (x u256) half() u256 {
	carryBit := x.hi.lo & 1
	hi := x.hi.rsh(1)
	lo := x.lo.rsh(1)
	if carryBit != 0 {
		lo.hi |= 1 << 63
	}
	return u256{hi: hi, lo: lo}
}

// mulSmall multiplies x by a uint64 multiplier and reports whether the
// product still fits in 256 bits.
func (x u256) mulSmall(m uint64) (u256, bool) {
	loProd := x.lo.mul(u128FromUint64(m))
	hiProd := x.hi.mul(u128FromUint64(m))
	sumHi, carry := loProd.hi.add(hiProd.lo)
	overflow := !hiProd.hi.isZero() || carry != 0
	return u256{hi: sumHi, lo: loProd.lo}, !overflow
}

// lsh10 multiplies x by 10^n and reports whether the result still fits in
// 256 bits.
func (x u256) lsh10(n int) (u256, bool) {
	if n == 0 {
		return x, true
	}
	p, ok := pow10U256(n)
	if !ok {
		return u256{}, false
	}
	return mulU256(x, p)
}

// mulU256 multiplies two u256 values, reporting whether the product
// (which can in principle need up to 512 bits) fits back in 256 bits. It is
// only used by lsh10 above, where the multiplier is always a power of ten
// from the bounded cache, so the "does it fit" check is the only thing that
// matters to callers.
func mulU256(x, y u256) (u256, bool) {
	// x = x.hi*2^128 + x.lo, y = y.hi*2^128 + y.lo.
	// x*y = x.hi*y.hi*2^256 + (x.hi*y.lo+x.lo*y.hi)*2^128 + x.lo*y.lo
	// The result fits in 256 bits only if the 2^256 term is zero and the
	// 2^128 term does not itself overflow 128 bits once added to the high
	// half of the low product.
	if !x.hi.isZero() && !y.hi.isZero() {
		return u256{}, false
	}
	cross1 := x.hi.mul(y.lo) // contributes at 2^128
	cross2 := x.lo.mul(y.hi) // contributes at 2^128
	if !cross1.hi.isZero() || !cross2.hi.isZero() {
		return u256{}, false
	}
	low := x.lo.mul(y.lo) // full 256-bit low*low product
	mid, c1 := cross1.lo.add(cross2.lo)
	hi, c2 := low.hi.add(mid)
	if c1 != 0 || c2 != 0 {
		return u256{}, false
	}
	return u256{hi: hi, lo: low.lo}, true
}

func (x u256) words() [4]uint64 {
	return [4]uint64{x.lo.lo, x.lo.hi, x.hi.lo, x.hi.hi}
}

func u256FromWords(w [4]uint64) u256 {
	return u256{hi: u128{hi: w[3], lo: w[2]}, lo: u128{hi: w[1], lo: w[0]}}
}

// bitLen returns the position of the most significant set bit plus one, or
// 0 if x is zero.
func (x u256) bitLen() int {
	w := x.words()
	for i := 3; i >= 0; i-- {
		if w[i] != 0 {
			return i*64 + (64 - bits.LeadingZeros64(w[i]))
		}
	}
	return 0
}

func (x u256) bit(i int) uint64 {
	w := x.words()
	return (w[i/64] >> uint(i%64)) & 1
}

func (x u256) setBit(i int) u256 {
	w := x.words()
	w[i/64] |= 1 << uint(i%64)
	return u256FromWords(w)
}

// shl1 shifts x left by one bit, inserting lsb as the new least significant
// bit.
func (x u256) shl1(lsb uint64) u256 {
	w := x.words()
	carry := lsb
	for i := 0; i < 4; i++ {
		newCarry := w[i] >> 63
		w[i] = w[i]<<1 | carry
		carry = newCarry
	}
	return u256FromWords(w)
}

// divMod computes q = x/y, r = x - y*q using simple binary long division
// (schoolbook restoring division, one bit of quotient per iteration). It
// favors clarity over raw throughput; the widths involved here (at most
// 256 bits) keep the iteration count bounded and cheap in practice.
//
// The caller must ensure y is nonzero.
func (x u256) divMod(y u256) (q, r u256) {
	if y.isZero() {
		panic("money96: u256 division by zero")
	}
	if x.cmp(y) < 0 {
		return u256Zero, x
	}
	n := x.bitLen()
	for i := n - 1; i >= 0; i-- {
		r = r.shl1(x.bit(i))
		if r.cmp(y) >= 0 {
			r, _ = r.sub(y)
			q = q.setBit(i)
		}
	}
	return q, r
}

// prec returns the number of decimal digits needed to represent x, with
// prec(0) == 0.
func (x u256) prec() int {
	left, right := 0, len(pow10U256Cache)
	for left < right {
		mid := (left + right) / 2
		if x.cmp(pow10U256Cache[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

func (x u256) isOdd() bool {
	return x.lo.lo&1 != 0
}

// pow10U256Cache is pre-filled at package initialization up to the largest
// power of ten that still fits in 256 bits (10^77), as a read-mostly,
// eagerly-filled cache rather than a lazily-extended one guarded by a
// mutex.
var pow10U256Cache [78]u256

func init() {
	pow10U256Cache[0] = u128ToU256(u128One)
	for i := 1; i < len(pow10U256Cache); i++ {
		v, ok := pow10U256Cache[i-1].mulSmall(10)
		if !ok {
			panic("money96: pow10U256Cache overflowed during initialization")
		}
		pow10U256Cache[i] = v
	}
}

// pow10U256 returns 10^n as a u256 and reports whether n is within the
// representable range for this width.
func pow10U256(n int) (u256, bool) {
	if n < 0 || n >= len(pow10U256Cache) {
		return u256{}, false
	}
	return pow10U256Cache[n], true
}
