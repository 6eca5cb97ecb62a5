// Package money implements currency-tagged amounts and exchange rates on
// top of the root module's [money96.Decimal], rescaling to a currency's
// ISO 4217 minor-unit scale on construction and rejecting arithmetic
// between mismatched currencies.
//
// [money96.Decimal]: https://pkg.go.dev/github.com/shopgraph/money96#Decimal
package money

import "fmt"

// Currency is a denomination registered in the package's currency table,
// represented as a small integer index rather than a string so that
// [Amount] stays a cheap value type.
type Currency int16

type currencyInfo struct {
	code  string
	num   int16
	scale int
}

// currencyTable is indexed by Currency. Scales follow ISO 4217: most
// currencies use 2 minor-unit digits, a handful use 0 or 3.
var currencyTable = []currencyInfo{
	{"XXX", 999, 2}, // zero value: no currency
	{"USD", 840, 2},
	{"EUR", 978, 2},
	{"GBP", 826, 2},
	{"CHF", 756, 2},
	{"JPY", 392, 0},
	{"CNY", 156, 2},
	{"AUD", 36, 2},
	{"CAD", 124, 2},
	{"SEK", 752, 2},
	{"NOK", 578, 2},
	{"NZD", 554, 2},
	{"INR", 356, 2},
	{"KRW", 410, 0},
	{"KWD", 414, 3},
	{"BHD", 48, 3},
	{"OMR", 512, 3},
	{"JOD", 400, 3},
	{"TND", 788, 3},
}

var currencyByCode = func() map[string]Currency {
	m := make(map[string]Currency, len(currencyTable))
	for i, c := range currencyTable {
		m[c.code] = Currency(i)
	}
	return m
}()

// XXX is the zero value of Currency: no currency, used as the zero value
// of [Amount] and [ExchangeRate].
const XXX Currency = 0

// ParseCurrency converts a three-letter ISO 4217 alphabetic code, such as
// "USD" or "JPY", to a Currency.
func ParseCurrency(code string) (Currency, error) {
	if c, ok := currencyByCode[code]; ok {
		return c, nil
	}
	return XXX, fmt.Errorf("parsing currency %q: unknown code", code)
}

// MustParseCurrency is like [ParseCurrency] but panics on error.
func MustParseCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(fmt.Sprintf("MustParseCurrency(%q) failed: %v", code, err))
	}
	return c
}

// String implements the [fmt.Stringer] interface, returning the
// currency's three-letter alphabetic code.
func (c Currency) String() string {
	if int(c) < 0 || int(c) >= len(currencyTable) {
		return "XXX"
	}
	return currencyTable[c].code
}

// Num returns the currency's three-digit ISO 4217 numeric code.
func (c Currency) Num() int {
	if int(c) < 0 || int(c) >= len(currencyTable) {
		return 999
	}
	return int(currencyTable[c].num)
}

// Scale returns the number of digits after the decimal point used to
// represent the currency's minor units.
func (c Currency) Scale() int {
	if int(c) < 0 || int(c) >= len(currencyTable) {
		return 2
	}
	return currencyTable[c].scale
}

func (c Currency) valid() bool {
	return int(c) > 0 && int(c) < len(currencyTable)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (c *Currency) UnmarshalText(text []byte) error {
	v, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
