package decimal64

import "encoding/json"

// MarshalText implements encoding.TextMarshaler, using the trimmed format.
func (d Decimal[P, R]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing permissively
// (spaces, boundary dots, and silent rounding are all accepted), since
// text arriving from a structured-format collaborator is rarely hand-typed
// and usually worth accepting even if slightly loose.
func (d *Decimal[P, R]) UnmarshalText(text []byte) error {
	v, err := ParsePermissive[P, R](string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseFromString is the value-level hook an external collaborator (a
// structured-format parser, a config loader, ...) calls to turn a string
// into a Decimal. It is strict; use ParsePermissive directly for
// permissive parsing.
func ParseFromString[P Precision, R Rounding](s string) (Decimal[P, R], error) {
	return Parse[P, R](s)
}

// FormatToString is the value-level hook an external collaborator calls to
// render a Decimal.
func FormatToString[P Precision, R Rounding](d Decimal[P, R]) string {
	return d.String()
}

// FromJSONNumber adapts encoding/json.Number, the standard library's
// string-backed structured numeric value, into a Decimal. It parses
// strictly, via Parse: a json.Number with more fractional digits than P
// reports a Rounding error rather than rounding silently, since the caller
// can always round deliberately by going through ParsePermissive instead.
func FromJSONNumber[P Precision, R Rounding](n json.Number) (Decimal[P, R], error) {
	return Parse[P, R](n.String())
}
