package decimal64

import (
	"errors"
	"testing"
)

func TestPow10(t *testing.T) {
	tests := []struct {
		k    int
		want int64
	}{
		{0, 1},
		{1, 10},
		{2, 100},
		{6, 1_000_000},
		{18, 1_000_000_000_000_000_000},
	}
	for _, tt := range tests {
		got, err := Pow10(tt.k)
		if err != nil {
			t.Errorf("Pow10(%d) returned error %v, want nil", tt.k, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Pow10(%d) = %d, want %d", tt.k, got, tt.want)
		}
	}
}

func TestPow10_OutOfRange(t *testing.T) {
	for _, k := range []int{-1, 19, 100} {
		_, err := Pow10(k)
		if err == nil {
			t.Errorf("Pow10(%d) returned nil error, want ErrInvalidPower", k)
			continue
		}
		if !errors.Is(err, ErrInvalidPower) {
			t.Errorf("Pow10(%d) error = %v, want wrapping ErrInvalidPower", k, err)
		}
	}
}
