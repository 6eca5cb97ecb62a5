package money96

import "errors"

// Sentinel errors corresponding to the error taxonomy of the decimal
// arithmetic model. Operations wrap one of these with operation-specific
// context via fmt.Errorf("%w: ...", ...), so callers can test the kind of
// failure with errors.Is regardless of the message text.
var (
	// ErrConversionSyntax is returned by the parser on malformed input.
	ErrConversionSyntax = errors.New("conversion syntax")

	// ErrOverflow is returned by any arithmetic operation whose result
	// cannot fit the 96-bit coefficient / scale envelope.
	ErrOverflow = errors.New("overflow")

	// ErrDivisionByZero is returned by division with a zero divisor and a
	// nonzero dividend.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidOperation is returned for 0/0, square root of a negative
	// number, Round with an out-of-range scale, or a constructor given an
	// out-of-range scale or set reserved bits.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInternal signals a wide-integer invariant violation; it should
	// never surface from correct calling code.
	ErrInternal = errors.New("internal error")
)
