package money96

import (
	"database/sql/driver"
	"fmt"
)

// MarshalJSON implements the [json.Marshaler] interface. It always returns
// a quoted numeric string, preserving the exact scale and value.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 40)
	text = append(text, '"')
	text = d.append(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface. It accepts
// both a bare JSON number and a quoted numeric string.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, err := parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	*d = v
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return d.append(make([]byte, 0, 40)), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	*d = v
	return nil
}

// Scan implements the [sql.Scanner] interface, accepting the value types
// common database drivers hand back for a numeric or text column.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var v Decimal
	var err error
	switch value := value.(type) {
	case string:
		v, err = Parse(value)
	case []byte:
		v, err = parse(string(value))
	case int64:
		v, err = New(uint64(value), 0)
		if value < 0 {
			v = v.Neg()
		}
	case float64:
		v, err = Parse(fmt.Sprintf("%g", value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Decimal{}, NullDecimal{}, Decimal{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		return fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, err)
	}
	*d = v
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Format implements the [fmt.Formatter] interface, supporting the verbs
// %s, %v, %q (quoted), and %f (fixed notation, explicit since the native
// representation already is fixed-point: an explicit precision rescales
// via [Decimal.Round]/[Decimal.Pad]).
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'f', 'F':
		if p, ok := state.Precision(); ok {
			d = d.Rescale(p)
		}
		pad(state, d.String())
	case 'q':
		pad(state, fmt.Sprintf("%q", d.String()))
	default:
		fmt.Fprintf(state, "%%!%c(%T=%s)", verb, d, d.String())
	}
}

// pad writes text to state, applying width and the '-' (left-justify)
// flag; money96 decimals are already fixed-point, so no other flag
// affects the rendered digits.
func pad(state fmt.State, text string) {
	w, ok := state.Width()
	if !ok || w <= len(text) {
		fmt.Fprint(state, text)
		return
	}
	padding := make([]byte, w-len(text))
	for i := range padding {
		padding[i] = ' '
	}
	if state.Flag('-') {
		fmt.Fprint(state, text, string(padding))
	} else {
		fmt.Fprint(state, string(padding), text)
	}
}
