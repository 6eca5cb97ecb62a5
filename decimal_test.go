package money96

import (
	"encoding"
	"encoding/json"
	"fmt"
	"testing"
)

func TestDecimal_ZeroValue(t *testing.T) {
	got := Decimal{}
	want := MustNew(0, 0)
	if !got.Equal(want) {
		t.Errorf("Decimal{} = %q, want %q", got, want)
	}
}

func TestDecimal_Interfaces(t *testing.T) {
	var d any = Decimal{}
	if _, ok := d.(fmt.Stringer); !ok {
		t.Errorf("%T does not implement fmt.Stringer", d)
	}
	if _, ok := d.(fmt.Formatter); !ok {
		t.Errorf("%T does not implement fmt.Formatter", d)
	}
	if _, ok := d.(json.Marshaler); !ok {
		t.Errorf("%T does not implement json.Marshaler", d)
	}
	if _, ok := d.(encoding.TextMarshaler); !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", d)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		coef  uint64
		scale int
		want  string
	}{
		{0, 0, "0"},
		{1, 0, "1"},
		{1, 28, "0.0000000000000000000000000001"},
		{12345, 2, "123.45"},
	}
	for _, tt := range tests {
		got, err := New(tt.coef, tt.scale)
		if err != nil {
			t.Errorf("New(%v, %v) failed: %v", tt.coef, tt.scale, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("New(%v, %v) = %q, want %q", tt.coef, tt.scale, got, tt.want)
		}
	}
}

func TestNew_InvalidScale(t *testing.T) {
	if _, err := New(1, -1); err == nil {
		t.Errorf("New(1, -1) succeeded, want error")
	}
	if _, err := New(1, MaxScale+1); err == nil {
		t.Errorf("New(1, %v) succeeded, want error", MaxScale+1)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	// P1: parse(format(x)) == x
	tests := []string{
		"0", "1", "-1", "1.1", "2.2", "3.3", "0.01",
		"79228162514264337593543950335",
		"-79228162514264337593543950335",
		"0.0000000000000000000000000001",
		"123456789.987654321",
	}
	for _, s := range tests {
		d, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", s, err)
			continue
		}
		if d.String() != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, d.String(), s)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []string{"", "   ", "abc", "1.2.3", "-", ".", "1e", "1_", "_1"}
	for _, s := range tests {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}

func TestParse_Underscores(t *testing.T) {
	got, err := Parse("1_000_000.50")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := MustParse("1000000.50")
	if !got.Equal(want) {
		t.Errorf("Parse(1_000_000.50) = %q, want %q", got, want)
	}
}

func TestDecimal_Add_Commutative(t *testing.T) {
	// P2
	x := MustParse("12.34")
	y := MustParse("56.789")
	xy, err := x.Add(y)
	if err != nil {
		t.Fatal(err)
	}
	yx, err := y.Add(x)
	if err != nil {
		t.Fatal(err)
	}
	if !xy.Equal(yx) {
		t.Errorf("x+y = %q, y+x = %q, want equal", xy, yx)
	}
}

func TestDecimal_Mul_Commutative(t *testing.T) {
	x := MustParse("12.34")
	y := MustParse("5.6")
	xy, err := x.Mul(y)
	if err != nil {
		t.Fatal(err)
	}
	yx, err := y.Mul(x)
	if err != nil {
		t.Fatal(err)
	}
	if !xy.Equal(yx) {
		t.Errorf("x*y = %q, y*x = %q, want equal", xy, yx)
	}
}

func TestDecimal_Identities(t *testing.T) {
	// P3
	x := MustParse("42.5")
	if got := x.MustAdd(Zero); !got.Equal(x) {
		t.Errorf("x + 0 = %q, want %q", got, x)
	}
	if got := x.MustMul(One); !got.Equal(x) {
		t.Errorf("x * 1 = %q, want %q", got, x)
	}
	if got := x.MustSub(x); !got.IsZero() {
		t.Errorf("x - x = %q, want 0", got)
	}
}

func TestDecimal_MulQuo_Inverse(t *testing.T) {
	// P4
	x := MustParse("7")
	y := MustParse("3")
	xy := x.MustMul(y)
	got, err := xy.Quo(y)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(x) {
		t.Errorf("(x*y)/y = %q, want %q", got, x)
	}
}

func TestDecimal_Round_Idempotent(t *testing.T) {
	// P6
	x := MustParse("123.456")
	for _, mode := range []RoundingMode{Down, Up, HalfUp, HalfEven} {
		got := x.roundTo(x.Scale(), mode)
		if !got.Equal(x) {
			t.Errorf("round(x, scale(x), %v) = %q, want %q", mode, got, x)
		}
	}
}

func TestDecimal_HalfEven_Parity(t *testing.T) {
	// P7
	tests := []struct{ in, want string }{
		{"2.5", "2"},
		{"3.5", "4"},
		{"0.5", "0"},
		{"1.5", "2"},
		{"-2.5", "-2"},
	}
	for _, tt := range tests {
		d := MustParse(tt.in)
		got, err := d.Round(0)
		if err != nil {
			t.Fatalf("Round(%q) failed: %v", tt.in, err)
		}
		if got.String() != tt.want {
			t.Errorf("round(%q, 0, HALF_EVEN) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecimal_Scenarios(t *testing.T) {
	t.Run("1.1+2.2", func(t *testing.T) {
		got, err := MustParse("1.1").Add(MustParse("2.2"))
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != "3.3" || got.Scale() != 1 {
			t.Errorf("got %q (scale %d), want 3.3 (scale 1)", got, got.Scale())
		}
	})
	t.Run("0.1*0.1", func(t *testing.T) {
		got, err := MustParse("0.1").Mul(MustParse("0.1"))
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != "0.01" || got.Scale() != 2 {
			t.Errorf("got %q (scale %d), want 0.01 (scale 2)", got, got.Scale())
		}
	})
	t.Run("1/3", func(t *testing.T) {
		got, err := MustParse("1").Quo(MustParse("3"))
		if err != nil {
			t.Fatal(err)
		}
		want := "0.3333333333333333333333333333"
		if got.String() != want || got.Scale() != 28 {
			t.Errorf("got %q (scale %d), want %q (scale 28)", got, got.Scale(), want)
		}
	})
	t.Run("sqrt(2)", func(t *testing.T) {
		got, err := MustParse("2").Sqrt()
		if err != nil {
			t.Fatal(err)
		}
		want := "1.4142135623730950488016887242"
		if got.String() != want {
			t.Errorf("sqrt(2) = %q, want %q", got, want)
		}
	})
	t.Run("overflow", func(t *testing.T) {
		max := MustParse("79228162514264337593543950335")
		_, err := max.Add(One)
		if err == nil {
			t.Errorf("MAX + 1 succeeded, want Overflow")
		}
	})
	t.Run("round 2.5 and 3.5", func(t *testing.T) {
		got, err := MustParse("2.5").Round(0)
		if err != nil || got.String() != "2" {
			t.Errorf("round(2.5, 0, HALF_EVEN) = %q, err=%v, want 2", got, err)
		}
		got, err = MustParse("3.5").Round(0)
		if err != nil || got.String() != "4" {
			t.Errorf("round(3.5, 0, HALF_EVEN) = %q, err=%v, want 4", got, err)
		}
	})
	t.Run("-0*1", func(t *testing.T) {
		negZero := Zero.Neg()
		got, err := negZero.Mul(One)
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != "0" {
			t.Errorf("-0 * 1 = %q, want 0", got)
		}
	})
}

func TestDecimal_Boundaries(t *testing.T) {
	max := MustParse("79228162514264337593543950335")
	if max.String() != "79228162514264337593543950335" {
		t.Errorf("MAX = %q", max)
	}
	if _, err := max.Add(One); err == nil {
		t.Errorf("MAX + 1 succeeded, want Overflow")
	}

	zero := MustNew(0, 0)
	negZero := zero.Neg()
	if negZero.String() != "-0" {
		t.Errorf("Neg(0) = %q, want -0", negZero)
	}
	if !negZero.IsZero() {
		t.Errorf("Neg(0).IsZero() = false, want true")
	}
	if negZero.Cmp(zero) != 0 {
		t.Errorf("Neg(0).Cmp(0) = %v, want 0", negZero.Cmp(zero))
	}

	smallest := MustNew(1, 28)
	if smallest.String() != "0.0000000000000000000000000001" {
		t.Errorf("smallest positive = %q", smallest)
	}
}

func TestDecimal_Mul_Exact96Bit(t *testing.T) {
	x := MustParse("999999999999999999")
	y := MustParse("79228162514")
	got, err := x.Mul(y)
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	if got.IsZero() {
		t.Errorf("Mul produced zero unexpectedly")
	}
}

func TestDecimal_Quo_DivisionByZero(t *testing.T) {
	if _, err := One.Quo(Zero); err == nil {
		t.Errorf("1/0 succeeded, want DivisionByZero")
	}
	if _, err := Zero.Quo(Zero); err == nil {
		t.Errorf("0/0 succeeded, want InvalidOperation")
	}
}

func TestDecimal_Quo_Exact(t *testing.T) {
	got, err := MustParse("10").Quo(MustParse("4"))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2.5" {
		t.Errorf("10/4 = %q, want 2.5", got)
	}
}

func TestDecimal_Sqrt_Negative(t *testing.T) {
	if _, err := MustParse("-1").Sqrt(); err == nil {
		t.Errorf("Sqrt(-1) succeeded, want InvalidOperation")
	}
}

func TestDecimal_Sum_Mean_Prod(t *testing.T) {
	a, b, c := MustParse("1.5"), MustParse("2.5"), MustParse("3")
	sum, err := Sum(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	if sum.String() != "7.0" {
		t.Errorf("Sum = %q, want 7.0", sum)
	}
	mean, err := Mean(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	if mean.Scale() != 27 || mean.String()[:3] != "2.3" {
		t.Errorf("Mean = %q, want scale 27 starting 2.3...", mean)
	}
	prod, err := Prod(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	if prod.String() != "11.25" {
		t.Errorf("Prod = %q, want 11.25", prod)
	}
}

func TestDecimal_Compare(t *testing.T) {
	a := MustParse("5")
	b := MustParse("5.00")
	if a.Cmp(b) != 0 {
		t.Errorf("Cmp(5, 5.00) = %v, want 0", a.Cmp(b))
	}
	if a.CmpTotal(b) == 0 {
		t.Errorf("CmpTotal(5, 5.00) = 0, want nonzero")
	}
	if !MustParse("1").Less(MustParse("2")) {
		t.Errorf("1 < 2 failed")
	}
	if MustParse("1").Max(MustParse("2")).String() != "2" {
		t.Errorf("Max(1,2) != 2")
	}
	if MustParse("1").Min(MustParse("2")).String() != "1" {
		t.Errorf("Min(1,2) != 1")
	}
	clamped, err := MustParse("10").Clamp(MustParse("0"), MustParse("5"))
	if err != nil || clamped.String() != "5" {
		t.Errorf("Clamp(10, 0, 5) = %q, err=%v, want 5", clamped, err)
	}
}

func TestDecimal_RoundingHelpers(t *testing.T) {
	x := MustParse("2.345")
	if got := x.Trunc(2); got.String() != "2.34" {
		t.Errorf("Trunc(2.345, 2) = %q, want 2.34", got)
	}
	if got := x.Ceil(2); got.String() != "2.35" {
		t.Errorf("Ceil(2.345, 2) = %q, want 2.35", got)
	}
	if got := x.Floor(2); got.String() != "2.34" {
		t.Errorf("Floor(2.345, 2) = %q, want 2.34", got)
	}
	if got := MustParse("2.340").Trim(0); got.String() != "2.34" {
		t.Errorf("Trim(2.340) = %q, want 2.34", got)
	}
	if got := MustParse("2.3").Pad(5); got.String() != "2.30000" {
		t.Errorf("Pad(2.3, 5) = %q, want 2.30000", got)
	}
	if got := MustParse("2.3").Rescale(1); got.String() != "2.3" {
		t.Errorf("Rescale(2.3, 1) = %q, want 2.3", got)
	}
	if got := MustParse("2.345").Quantize(MustParse("0.00")); got.String() != "2.34" {
		t.Errorf("Quantize(2.345, 0.00) = %q, want 2.34 (HALF_EVEN keeps the even digit 4)", got)
	}
}

func TestDecimal_Bits_RoundTrip(t *testing.T) {
	d := MustParse("123456789012345.6789")
	lo, hi := d.Bits()
	got, err := FromBits(lo, hi)
	if err != nil {
		t.Fatalf("FromBits failed: %v", err)
	}
	if !got.Equal(d) || got.Scale() != d.Scale() {
		t.Errorf("FromBits(Bits(%q)) = %q, want exact round-trip", d, got)
	}
}

func TestDecimal_JSON(t *testing.T) {
	d := MustParse("19.99")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"19.99"` {
		t.Errorf("MarshalJSON = %s, want \"19.99\"", data)
	}
	var got Decimal
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if !got.Equal(d) {
		t.Errorf("round-tripped %q, want %q", got, d)
	}
}

func TestDecimal_Format(t *testing.T) {
	d := MustParse("3.5")
	if got := fmt.Sprintf("%v", d); got != "3.5" {
		t.Errorf("%%v = %q, want 3.5", got)
	}
	if got := fmt.Sprintf("%8v", d); got != "     3.5" {
		t.Errorf("%%8v = %q, want right-aligned in width 8", got)
	}
	if got := fmt.Sprintf("%-8v|", d); got != "3.5     |" {
		t.Errorf("%%-8v = %q", got)
	}
	if got := fmt.Sprintf("%q", d); got != `"3.5"` {
		t.Errorf("%%q = %q, want \"3.5\"", got)
	}
}

func TestNullDecimal(t *testing.T) {
	var n NullDecimal
	if err := n.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if n.Valid {
		t.Errorf("Scan(nil) set Valid = true")
	}
	if err := n.Scan("12.5"); err != nil {
		t.Fatal(err)
	}
	if !n.Valid || n.Decimal.String() != "12.5" {
		t.Errorf("Scan(12.5) = %+v", n)
	}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"12.5"` {
		t.Errorf("MarshalJSON = %s", data)
	}
	var empty NullDecimal
	data, err = json.Marshal(empty)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Errorf("MarshalJSON(invalid) = %s, want null", data)
	}
}
