package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopgraph/money96"
)

// Amount is an immutable amount of a given currency. Its zero value is
// zero [XXX], an intentionally unusable placeholder — construct amounts
// through [NewAmount], [NewAmountFromDecimal], or [ParseAmount].
type Amount struct {
	currency Currency
	amount   money96.Decimal
}

// NewAmountFromDecimal returns an [Amount] with the given currency and
// value, rescaling the value to the currency's minor-unit scale using
// [money96.Decimal.Rescale]. It fails if rescaling would overflow.
func NewAmountFromDecimal(curr Currency, amount money96.Decimal) (Amount, error) {
	rescaled := amount.Rescale(curr.Scale())
	if rescaled.Scale() != curr.Scale() {
		return Amount{}, fmt.Errorf("converting [%v %v] to amount: %w", curr, amount, money96.ErrOverflow)
	}
	return Amount{currency: curr, amount: rescaled}, nil
}

// NewAmount returns an [Amount] equal to coef / 10^scale, denominated in
// curr.
func NewAmount(curr Currency, coef uint64, scale int) (Amount, error) {
	d, err := money96.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("constructing amount: %w", err)
	}
	return NewAmountFromDecimal(curr, d)
}

// NewAmountFromInt64 returns an [Amount] equal to the integer v,
// denominated in curr.
func NewAmountFromInt64(curr Currency, v int64) (Amount, error) {
	return NewAmountFromDecimal(curr, money96.NewFromInt64(v))
}

// NewAmountFromMinorUnits returns an [Amount] equal to v minor units
// (e.g. cents) of curr.
func NewAmountFromMinorUnits(curr Currency, v int64) (Amount, error) {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	d, err := money96.New(u, curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("constructing amount: %w", err)
	}
	if neg {
		d = d.Neg()
	}
	return Amount{currency: curr, amount: d}, nil
}

// ParseAmount converts a currency code and a decimal string, such as
// ("USD", "24.99"), to an [Amount].
func ParseAmount(currCode, amount string) (Amount, error) {
	curr, err := ParseCurrency(currCode)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	d, err := money96.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmountFromDecimal(curr, d)
}

// MustParseAmount is like [ParseAmount] but panics on error.
func MustParseAmount(currCode, amount string) Amount {
	a, err := ParseAmount(currCode, amount)
	if err != nil {
		panic(fmt.Sprintf("MustParseAmount(%q, %q) failed: %v", currCode, amount, err))
	}
	return a
}

// Currency returns the amount's currency.
func (a Amount) Currency() Currency { return a.currency }

// Decimal returns the amount's numeric value.
func (a Amount) Decimal() money96.Decimal { return a.amount }

// Scale returns the number of digits after the decimal point, which for
// a well-formed Amount always equals its currency's scale.
func (a Amount) Scale() int { return a.amount.Scale() }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.amount.IsZero() }

// Sign returns -1, 0, or +1 depending on the sign of the amount.
func (a Amount) Sign() int { return a.amount.Sign() }

// Neg returns the amount with its sign flipped.
func (a Amount) Neg() Amount { return Amount{currency: a.currency, amount: a.amount.Neg()} }

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount { return Amount{currency: a.currency, amount: a.amount.Abs()} }

func (a Amount) String() string {
	return fmt.Sprintf("%v %v", a.currency, a.amount)
}

// Format implements the [fmt.Formatter] interface, delegating the
// numeric verbs to the underlying decimal and prefixing the currency
// code.
func (a Amount) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, "%v ", a.currency)
	a.amount.Format(state, verb)
}

func mismatch(op string, a, b Currency) error {
	return fmt.Errorf("computing [%s]: %w: %v and %v", op, ErrCurrencyMismatch, a, b)
}

// Add returns a + b. It fails if a and b use different currencies, or if
// the result overflows.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.currency != b.currency {
		return Amount{}, mismatch(fmt.Sprintf("%v + %v", a, b), a.currency, b.currency)
	}
	sum, err := a.amount.Add(b.amount)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return Amount{currency: a.currency, amount: sum}, nil
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.currency != b.currency {
		return Amount{}, mismatch(fmt.Sprintf("%v - %v", a, b), a.currency, b.currency)
	}
	diff, err := a.amount.Sub(b.amount)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return Amount{currency: a.currency, amount: diff}, nil
}

// Mul returns a * e, where e is a dimensionless decimal factor.
func (a Amount) Mul(e money96.Decimal) (Amount, error) {
	prod, err := a.amount.Mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return NewAmountFromDecimal(a.currency, prod)
}

// Quo returns a / e.
func (a Amount) Quo(e money96.Decimal) (Amount, error) {
	quo, err := a.amount.Quo(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return NewAmountFromDecimal(a.currency, quo)
}

// AddMul returns a + b*e.
func (a Amount) AddMul(b Amount, e money96.Decimal) (Amount, error) {
	if a.currency != b.currency {
		return Amount{}, mismatch(fmt.Sprintf("%v + %v * %v", a, b, e), a.currency, b.currency)
	}
	sum, err := a.amount.AddMul(b.amount, e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v * %v]: %w", a, b, e, err)
	}
	return NewAmountFromDecimal(a.currency, sum)
}

// SubMul returns a - b*e.
func (a Amount) SubMul(b Amount, e money96.Decimal) (Amount, error) {
	if a.currency != b.currency {
		return Amount{}, mismatch(fmt.Sprintf("%v - %v * %v", a, b, e), a.currency, b.currency)
	}
	diff, err := a.amount.SubMul(b.amount, e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v * %v]: %w", a, b, e, err)
	}
	return NewAmountFromDecimal(a.currency, diff)
}

// Cmp compares a and b, returning -1, 0, or +1. It fails if they use
// different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if a.currency != b.currency {
		return 0, mismatch(fmt.Sprintf("%v cmp %v", a, b), a.currency, b.currency)
	}
	return a.amount.Cmp(b.amount), nil
}

// Equal reports whether a and b have the same currency and numeric value.
func (a Amount) Equal(b Amount) bool {
	return a.currency == b.currency && a.amount.Equal(b.amount)
}

// Round rounds the amount to scale digits after the decimal point using
// half-to-even rounding, which must not exceed the currency's scale.
func (a Amount) Round(scale int) (Amount, error) {
	r, err := a.amount.Round(scale)
	if err != nil {
		return Amount{}, fmt.Errorf("rounding %v: %w", a, err)
	}
	return Amount{currency: a.currency, amount: r}, nil
}

// Value implements the [driver.Valuer] interface, storing the amount as
// "CUR 123.45".
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// MarshalJSON implements the [json.Marshaler] interface, encoding the
// amount as {"currency":"USD","amount":"24.99"}.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"currency":%q,"amount":%q}`, a.currency, a.amount)), nil
}

// ErrCurrencyMismatch is returned by arithmetic and comparison operations
// given operands denominated in different currencies.
var ErrCurrencyMismatch = fmt.Errorf("currency mismatch")
