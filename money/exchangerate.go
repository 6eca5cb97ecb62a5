package money

import (
	"fmt"

	"github.com/shopgraph/money96"
)

// ExchangeRate records how many units of Quote are needed to exchange
// for 1 unit of Base.
type ExchangeRate struct {
	base  Currency
	quote Currency
	rate  money96.Decimal
}

// NewExchRateFromDecimal returns an [ExchangeRate] for converting base to
// quote, rescaling rate to the quote currency's scale. rate must be
// positive.
func NewExchRateFromDecimal(base, quote Currency, rate money96.Decimal) (ExchangeRate, error) {
	if rate.Sign() <= 0 {
		return ExchangeRate{}, fmt.Errorf("constructing exchange rate %v/%v: %w: rate must be positive", base, quote, money96.ErrInvalidOperation)
	}
	rescaled := rate.Rescale(quote.Scale())
	if rescaled.Scale() != quote.Scale() {
		return ExchangeRate{}, fmt.Errorf("constructing exchange rate %v/%v: %w", base, quote, money96.ErrOverflow)
	}
	return ExchangeRate{base: base, quote: quote, rate: rescaled}, nil
}

// ParseExchRate converts currency codes and a decimal rate string to an
// [ExchangeRate].
func ParseExchRate(baseCode, quoteCode, rate string) (ExchangeRate, error) {
	base, err := ParseCurrency(baseCode)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate: %w", err)
	}
	quote, err := ParseCurrency(quoteCode)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate: %w", err)
	}
	d, err := money96.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing exchange rate: %w", err)
	}
	return NewExchRateFromDecimal(base, quote, d)
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency { return r.base }

// Quote returns the currency being obtained in exchange for the base
// currency.
func (r ExchangeRate) Quote() Currency { return r.quote }

// Decimal returns the numeric value of the rate.
func (r ExchangeRate) Decimal() money96.Decimal { return r.rate }

func (r ExchangeRate) String() string {
	return fmt.Sprintf("%v/%v %v", r.base, r.quote, r.rate)
}

// Conv converts an amount denominated in the rate's base currency to an
// amount in the quote currency. It fails if a is not denominated in
// [ExchangeRate.Base].
func (r ExchangeRate) Conv(a Amount) (Amount, error) {
	if a.currency != r.base {
		return Amount{}, fmt.Errorf("converting %v using %v: %w: %v and %v", a, r, ErrCurrencyMismatch, a.currency, r.base)
	}
	converted, err := a.amount.Mul(r.rate)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v using %v: %w", a, r, err)
	}
	return NewAmountFromDecimal(r.quote, converted)
}

// Inv returns the inverse exchange rate, converting from Quote back to
// Base.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	inv, err := r.rate.Inv()
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRateFromDecimal(r.quote, r.base, inv)
}

// Mul returns a new exchange rate with the same base and quote
// currencies, scaled by the dimensionless factor e.
func (r ExchangeRate) Mul(e money96.Decimal) (ExchangeRate, error) {
	rate, err := r.rate.Mul(e)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("computing [%v * %v]: %w", r, e, err)
	}
	return NewExchRateFromDecimal(r.base, r.quote, rate)
}

// Round rounds the rate to scale digits using half-to-even rounding.
func (r ExchangeRate) Round(scale int) (ExchangeRate, error) {
	rounded, err := r.rate.Round(scale)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rounding %v: %w", r, err)
	}
	return ExchangeRate{base: r.base, quote: r.quote, rate: rounded}, nil
}

// Cmp compares two exchange rates with the same base and quote
// currencies.
func (r ExchangeRate) Cmp(other ExchangeRate) (int, error) {
	if r.base != other.base || r.quote != other.quote {
		return 0, fmt.Errorf("comparing %v and %v: %w", r, other, ErrCurrencyMismatch)
	}
	return r.rate.Cmp(other.rate), nil
}
