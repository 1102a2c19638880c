package decimal64

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// MarshalJSON implements json.Marshaler, encoding d as its trimmed String
// form in quotes (e.g. "1.5") so that round-tripping through JSON never goes
// through a float64 and loses precision. Encoding is delegated to
// goccy/go-json rather than encoding/json, matching how
// coachpo-meltica-gateway encodes its own gateway message bodies.
func (d Decimal[P, R]) MarshalJSON() ([]byte, error) {
	b, err := gojson.Marshal(d.String())
	if err != nil {
		return nil, fmt.Errorf("decimal64: marshal JSON: %w", err)
	}
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts both a quoted
// decimal string ("1.50") and a bare JSON number (1.50), the latter
// decoded through goccy/go-json's json.Number to avoid a float64
// round-trip before parsing.
func (d *Decimal[P, R]) UnmarshalJSON(data []byte) error {
	var s string
	if err := gojson.Unmarshal(data, &s); err == nil {
		v, err := ParsePermissive[P, R](s)
		if err != nil {
			return fmt.Errorf("decimal64: unmarshal JSON %q: %w", data, err)
		}
		*d = v
		return nil
	}

	var n gojson.Number
	if err := gojson.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decimal64: unmarshal JSON %q: %w", data, err)
	}
	v, err := ParsePermissive[P, R](n.String())
	if err != nil {
		return fmt.Errorf("decimal64: unmarshal JSON %q: %w", data, err)
	}
	*d = v
	return nil
}
