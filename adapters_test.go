package decimal64

import (
	"encoding/json"
	"testing"
)

func TestMarshalUnmarshalText_RoundTrip(t *testing.T) {
	d := MustParse[P4, HalfEven]("1.5")
	b, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var got Decimal[P4, HalfEven]
	if err := got.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", b, err)
	}
	if got != d {
		t.Errorf("UnmarshalText round-trip = %v, want %v", got, d)
	}
}

func TestUnmarshalText_RoundsExcessDigits(t *testing.T) {
	var d Decimal[P4, HalfEven]
	if err := d.UnmarshalText([]byte("1.23456")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if want := "1.2346"; d.String() != want {
		t.Errorf("UnmarshalText(\"1.23456\").String() = %q, want %q", d.String(), want)
	}
}

func TestParseFromString_Strict(t *testing.T) {
	if _, err := ParseFromString[P4, HalfEven]("1.23456"); err == nil {
		t.Errorf("ParseFromString(%q) did not error on excess fractional digits", "1.23456")
	}

	d, err := ParseFromString[P4, HalfEven]("1.5")
	if err != nil {
		t.Fatalf("ParseFromString(%q): %v", "1.5", err)
	}
	if d.String() != "1.5" {
		t.Errorf("ParseFromString(%q).String() = %q, want %q", "1.5", d.String(), "1.5")
	}
}

func TestFormatToString(t *testing.T) {
	d := MustParse[P4, HalfEven]("1.5000")
	if got := FormatToString(d); got != "1.5" {
		t.Errorf("FormatToString(%v) = %q, want %q", d, got, "1.5")
	}
}

func TestFromJSONNumber_Strict(t *testing.T) {
	_, err := FromJSONNumber[P4, HalfEven](json.Number("1.23456"))
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("FromJSONNumber(%q) error = %v (%T), want *ParseError", "1.23456", err, err)
	}
	if pe.Code != Rounding {
		t.Errorf("FromJSONNumber(%q).Code = %s, want Rounding", "1.23456", pe.Code)
	}

	d, err := FromJSONNumber[P4, HalfEven](json.Number("1.5"))
	if err != nil {
		t.Fatalf("FromJSONNumber(%q): %v", "1.5", err)
	}
	if d.String() != "1.5" {
		t.Errorf("FromJSONNumber(%q).String() = %q, want %q", "1.5", d.String(), "1.5")
	}
}
