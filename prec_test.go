package decimal64

import "testing"

func TestPrecOf(t *testing.T) {
	if got := precOf[P0](); got != 0 {
		t.Errorf("precOf[P0]() = %d, want 0", got)
	}
	if got := precOf[P6](); got != 6 {
		t.Errorf("precOf[P6]() = %d, want 6", got)
	}
	if got := precOf[P18](); got != 18 {
		t.Errorf("precOf[P18]() = %d, want 18", got)
	}
}

func TestFactorOf(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"P0", factorOf[P0](), 1},
		{"P4", factorOf[P4](), 10_000},
		{"P8", factorOf[P8](), 100_000_000},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("factorOf[%s]() = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
