/*
Package money96 implements fixed-point decimal numbers compatible with the
Microsoft DECIMAL / .NET System.Decimal binary layout, for transactional
financial systems where binary floating point is unacceptable.

# Internal Representation

Decimal is a struct with three fields:

  - Sign:
    A boolean indicating whether the decimal is negative.
  - Coefficient:
    An unsigned 96-bit integer representing the numeric value of the decimal
    without the decimal point.
  - Scale:
    A non-negative integer indicating the position of the decimal point
    within the coefficient. For example, a decimal with a coefficient of
    12345 and a scale of 2 represents the value 123.45. The range of
    allowed values for the scale is from 0 to 28.

The numerical value of a decimal is calculated as follows:

  - -Coefficient / 10^Scale if Sign is true.
  - Coefficient / 10^Scale if Sign is false.

This allows the same numeric value to have multiple representations — 1,
1.0, and 1.00 represent the same value but have different scales and
coefficients (see [Decimal.Trim], [Decimal.Pad]).

# Constraints Overview

The coefficient is bounded by 2^96-1 = 79228162514264337593543950335, which
has 29 decimal digits, though not every 29-digit value is representable.
Scale ranges over 0..28. Here are the ranges for a few scales:

	| Example      | Scale | Maximum                                        |
	| ------------ | ----- | ----------------------------------------------- |
	| Japanese Yen | 0     | 79,228,162,514,264,337,593,543,950,335          |
	| US Dollar    | 2     | 792,281,625,142,643,375,935,439,503.35          |
	| Bitcoin      | 8     | 792,281,625,142,643,375,935.43950335            |

Special values such as NaN, Infinity, or subnormal numbers are not
supported. A zero coefficient always compares and formats as non-negative
unless its sign bit was set explicitly by [Decimal.Neg] (see "Signed Zero"
below).

# Arithmetic Operations

Each arithmetic operation widens its operands into a fixed-width 128- or
256-bit intermediate — never a variable-length big integer — computes the
exact result there, and narrows back to the 96-bit coefficient using
HALF_EVEN rounding (banker's rounding) when the intermediate does not fit.
Low-order digits removed by that rounding are dropped without an error;
operations return an error in the following cases:

  - [ErrOverflow]: the result does not fit the 96-bit / scale-0 envelope.
  - [ErrDivisionByZero]: division by zero with a nonzero dividend.
  - [ErrInvalidOperation]: 0/0, the square root of a negative number, or a
    constructor given an invalid scale or reserved flag bits.
  - [ErrConversionSyntax]: malformed input to [Parse].

# Rounding Modes

[RoundingMode] controls how a rounding engine resolves a nonzero remainder
that cannot be represented exactly: [Down] truncates toward zero, [Up]
rounds away from zero on any remainder, [HalfUp] rounds half away from
zero, and [HalfEven] (the default used by [Decimal.Round] and throughout
scale alignment) rounds half to even.

In addition to implicit rounding during arithmetic, the package provides
several methods for explicit rounding:

  - Half-to-even rounding: [Decimal.Round], [Decimal.Quantize], [Decimal.Rescale].
  - Rounding towards positive infinity: [Decimal.Ceil].
  - Rounding towards negative infinity: [Decimal.Floor].
  - Rounding towards zero: [Decimal.Trunc].

# Signed Zero

The simplest consistent policy is used throughout: every operation other
than [Decimal.Neg] normalizes a zero result to a positive sign, regardless
of the signs of its operands. [Decimal.Neg] of zero is the one place this
is intentionally broken, flipping the sign bit so callers that explicitly
ask for -0 get it back from [Decimal.String].

# Error Handling

All methods are panic-free and pure; the corresponding Must* variants
([Decimal.MustAdd], [Decimal.MustSub], [Decimal.MustMul], [Decimal.MustQuo],
[Decimal.MustSqrt], [MustNew], [MustParse]) panic instead, for use during
package-level initialization.

# Data Conversion

The package integrates with [encoding/json] through [Decimal.MarshalJSON] /
[Decimal.UnmarshalJSON], with [encoding/encoding] via [Decimal.MarshalText]
/ [Decimal.UnmarshalText], with [database/sql] via [Decimal.Scan] /
[Decimal.Value], and with [fmt] via [Decimal.Format] (supporting %s, %v,
%q, %f, %F; scientific notation verbs such as %e and %E are not
supported).

# Money

The money subpackage builds a currency-tagged amount on top of Decimal,
rescaling to the currency's minor-unit scale on construction and rejecting
arithmetic between mismatched currencies.

[database/sql]: https://pkg.go.dev/database/sql
[encoding/json]: https://pkg.go.dev/encoding/json
[encoding/encoding]: https://pkg.go.dev/encoding
*/
package money96
