package decimal64

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.v3's Marshaler interface, encoding d as its
// trimmed string form so a YAML-configured service can hold Decimal-valued
// fields directly (gopkg.in/yaml.v3 is a direct dependency of
// coachpo-meltica-gateway, which configures itself this way).
func (d Decimal[P, R]) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.v3's node-based Unmarshaler interface,
// accepting any YAML scalar — a quoted string or a bare number — by
// parsing the node's raw text permissively.
func (d *Decimal[P, R]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("decimal64: unmarshal YAML: not a scalar")
	}
	v, err := ParsePermissive[P, R](value.Value)
	if err != nil {
		return fmt.Errorf("decimal64: unmarshal YAML %q: %w", value.Value, err)
	}
	*d = v
	return nil
}
