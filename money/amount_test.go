package money

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopgraph/money96"
)

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("USD", "24.9")
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if a.Scale() != 2 {
		t.Errorf("Scale() = %v, want 2 (rescaled to USD minor units)", a.Scale())
	}
	if a.String() != "USD 24.90" {
		t.Errorf("String() = %q, want \"USD 24.90\"", a.String())
	}
}

func TestParseAmount_JPY_NoMinorUnits(t *testing.T) {
	a, err := ParseAmount("JPY", "1500")
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if a.Scale() != 0 {
		t.Errorf("Scale() = %v, want 0", a.Scale())
	}
	if a.String() != "JPY 1500" {
		t.Errorf("String() = %q", a.String())
	}
}

func TestParseAmount_UnknownCurrency(t *testing.T) {
	if _, err := ParseAmount("ZZZ", "1"); err == nil {
		t.Errorf("ParseAmount with unknown currency succeeded, want error")
	}
}

func TestAmount_Add_CurrencyMismatch(t *testing.T) {
	usd := MustParseAmount("USD", "10.00")
	eur := MustParseAmount("EUR", "10.00")
	if _, err := usd.Add(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Add(USD, EUR) error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestAmount_Add(t *testing.T) {
	a := MustParseAmount("USD", "10.50")
	b := MustParseAmount("USD", "5.25")
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.String() != "USD 15.75" {
		t.Errorf("Add = %q, want \"USD 15.75\"", sum)
	}
}

func TestAmount_Mul(t *testing.T) {
	a := MustParseAmount("USD", "10.00")
	prod, err := a.Mul(money96.MustParse("1.0825")) // e.g. tax rate
	if err != nil {
		t.Fatal(err)
	}
	if prod.String() != "USD 10.82" {
		t.Errorf("Mul = %q, want \"USD 10.82\" (HALF_EVEN keeps the even digit)", prod)
	}
}

func TestAmount_Cmp(t *testing.T) {
	a := MustParseAmount("USD", "10.00")
	b := MustParseAmount("USD", "20.00")
	c, err := a.Cmp(b)
	if err != nil || c != -1 {
		t.Errorf("Cmp = %v, %v, want -1, nil", c, err)
	}
	eur := MustParseAmount("EUR", "10.00")
	if _, err := a.Cmp(eur); err == nil {
		t.Errorf("Cmp(USD, EUR) succeeded, want error")
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	a := MustParseAmount("USD", "9.5")
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"currency":"USD","amount":"9.50"}`
	if string(data) != want {
		t.Errorf("MarshalJSON = %s, want %s", data, want)
	}
}

func TestNewAmountFromMinorUnits(t *testing.T) {
	a, err := NewAmountFromMinorUnits(MustParseCurrency("USD"), -150)
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "USD -1.50" {
		t.Errorf("NewAmountFromMinorUnits(-150) = %q, want \"USD -1.50\"", a)
	}
}
