package decimal64

import "testing"

func TestCast_Widen(t *testing.T) {
	src := MustParse[P2, HalfEven]("1.5")
	got := Cast[P4, HalfEven](src)
	if want := "1.5"; got.String() != want {
		t.Errorf("Cast[P4,HalfEven](1.5 @ P2) = %q, want %q", got.String(), want)
	}
	if got.AsUnbiased() != 15000 {
		t.Errorf("Cast widen AsUnbiased() = %d, want 15000", got.AsUnbiased())
	}
}

func TestCast_NarrowChangesPolicy(t *testing.T) {
	src := MustParse[P4, HalfEven]("1.25")
	down := Cast[P2, Down](src)
	up := Cast[P2, HalfUp](src)
	if got, want := down.String(), "1.25"; got != want {
		t.Errorf("Cast[P2,Down](1.25) = %q, want %q (exact, no rounding needed)", got, want)
	}
	if got, want := up.String(), "1.25"; got != want {
		t.Errorf("Cast[P2,HalfUp](1.25) = %q, want %q", got, want)
	}
}

func TestCast_RoundTrip_SamePolicy(t *testing.T) {
	src := MustParse[P6, HalfEven]("3.141593")
	widened := Cast[P8, HalfEven](src)
	narrowed := Cast[P6, HalfEven](widened)
	if narrowed.AsUnbiased() != src.AsUnbiased() {
		t.Errorf("round-trip widen/narrow changed value: got %d, want %d", narrowed.AsUnbiased(), src.AsUnbiased())
	}
}
