package decimal64

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPower is returned by Pow10 when asked for a power outside [0, MaxPrec].
var ErrInvalidPower = errors.New("decimal64: invalid power of 10")

// MaxPrec is the largest precision (number of fractional digits) a Decimal
// can carry; it is also the largest exponent powers10 and Pow10 accept.
const MaxPrec = 18

// powers10 is a compile-time table of powers of ten, powers10[k] == 10^k, for
// k in [0, MaxPrec]. Every other component derives its scaling factors from
// this table rather than computing powers on demand.
var powers10 = [MaxPrec + 1]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

func init() {
	// Mirrors decimal64.hpp's static_assert that kMaxDecimalDigits is indeed
	// the largest x such that 10^x fits in an int64.
	if powers10[MaxPrec] <= math.MaxInt64/10 {
		panic("decimal64: MaxPrec is not the largest power of ten that fits in int64")
	}
}

// Pow10 returns 10^k for k in [0, MaxPrec]. For k outside that range it
// returns ErrInvalidPower.
func Pow10(k int) (int64, error) {
	if k < 0 || k > MaxPrec {
		return 0, fmt.Errorf("Pow10(%d): %w", k, ErrInvalidPower)
	}
	return powers10[k], nil
}
