package decimal64

import "math"

// Rounding is the compile-time rounding policy of a Decimal[P, R]. Like
// Precision, it is carried as a Go type rather than a value: each of the
// zero-size marker types below implements Rounding, and Decimal[P, R]
// instantiates its generic operations against the chosen R so that the
// policy's methods are called directly, with nothing to allocate or
// dispatch through at runtime.
//
// Round reduces a wide (float64) intermediate value to an int64 using the
// policy's rule. DivRounded performs the same selection on the rational a/b
// using only integer arithmetic; it must agree with Round(a/b) whenever it
// reports ok=true. It reports ok=false only when applying the policy's
// rounding correction would itself overflow int64, in which case callers
// fall back to a lossier path (documented per call site) rather than get a
// silently wrong answer.
type Rounding interface {
	Round(x float64) int64
	DivRounded(a, b int64) (out int64, ok bool)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func floorF(x float64) int64 {
	if float64(int64(x)) <= x {
		return int64(x)
	}
	return int64(x) - 1
}

func ceilF(x float64) int64 {
	if float64(int64(x)) >= x {
		return int64(x)
	}
	return int64(x) + 1
}

// Down truncates toward zero. Its DivRounded never reports ok=false,
// because it applies no correction at all.
type Down struct{}

func (Down) Round(x float64) int64 { return int64(x) }

func (Down) DivRounded(a, b int64) (int64, bool) {
	return a / b, true
}

// Default is the fast round-to-nearest policy, ties away from zero. Its
// Round is allowed to misclassify values within about one ULP of a half
// (e.g. 0.49999999999999994 rounds to 1); the HalfUp/HalfDown/HalfEven
// policies below are exact on rationals where Default is not.
type Default struct{}

func (Default) Round(x float64) int64 {
	if x < 0 {
		return int64(x - 0.5)
	}
	return int64(x + 0.5)
}

func (Default) DivRounded(a, b int64) (int64, bool) {
	corr := absInt64(b / 2)
	if a >= 0 {
		if math.MaxInt64-a >= corr {
			return (a + corr) / b, true
		}
	} else {
		if -(math.MinInt64 - a) >= corr {
			return (a - corr) / b, true
		}
	}
	return 0, false
}

// HalfDown rounds to nearest, ties toward zero.
//
// Its integer DivRounded path is carried over from decimal64.hpp verbatim,
// including a known discrepancy on negative operands: rather than bias ties
// toward zero like Round does, it biases toward -infinity by |b|/2. This
// mismatch is preserved rather than "fixed" — see DESIGN.md.
type HalfDown struct{}

func (HalfDown) Round(x float64) int64 {
	if x >= 0 {
		dec := x - float64(floorF(x))
		if dec > 0.5 {
			return ceilF(x)
		}
		return floorF(x)
	}
	dec := float64(ceilF(x)) - x
	if dec <= 0.5 {
		return ceilF(x)
	}
	return floorF(x)
}

func (HalfDown) DivRounded(a, b int64) (int64, bool) {
	corr := absInt64(b) / 2
	rem := absInt64(a) % absInt64(b)
	if a >= 0 {
		if math.MaxInt64-a >= corr {
			if rem > corr {
				return (a + corr) / b, true
			}
			return a / b, true
		}
		return 0, false
	}
	if -(math.MinInt64 - a) >= corr {
		return (a - corr) / b, true
	}
	return 0, false
}

// HalfUp rounds to nearest, ties away from zero.
type HalfUp struct{}

func (HalfUp) Round(x float64) int64 {
	if x >= 0 {
		dec := x - float64(floorF(x))
		if dec >= 0.5 {
			return ceilF(x)
		}
		return floorF(x)
	}
	dec := float64(ceilF(x)) - x
	if dec <= 0.5 {
		return ceilF(x)
	}
	return floorF(x)
}

func (HalfUp) DivRounded(a, b int64) (int64, bool) {
	corr := absInt64(b) / 2
	rem := absInt64(a) % absInt64(b)
	if a >= 0 {
		if math.MaxInt64-a >= corr {
			if rem >= corr {
				return (a + corr) / b, true
			}
			return a / b, true
		}
		return 0, false
	}
	if -(math.MinInt64 - a) >= corr {
		switch {
		case rem < corr:
			return (a - rem) / b, true
		case rem == corr:
			return (a - corr) / b, true
		default:
			return (a + rem - absInt64(b)) / b, true
		}
	}
	return 0, false
}

// HalfEven rounds to nearest, ties toward the even quotient ("banker's
// rounding").
type HalfEven struct{}

func (HalfEven) Round(x float64) int64 {
	if x >= 0 {
		dec := x - float64(floorF(x))
		switch {
		case dec > 0.5:
			return ceilF(x)
		case dec < 0.5:
			return floorF(x)
		default:
			if floorF(x)%2 == 0 {
				return floorF(x)
			}
			return ceilF(x)
		}
	}
	dec := float64(ceilF(x)) - x
	switch {
	case dec > 0.5:
		return floorF(x)
	case dec < 0.5:
		return ceilF(x)
	default:
		if ceilF(x)%2 == 0 {
			return ceilF(x)
		}
		return floorF(x)
	}
}

func (HalfEven) DivRounded(a, b int64) (int64, bool) {
	rem := absInt64(a) % absInt64(b)
	rest := absInt64(b) - rem
	if rem == 0 {
		return a / b, true
	}
	if a >= 0 {
		switch {
		case rem > rest:
			return (a - rem + absInt64(b)) / b, true
		case rem < rest:
			return (a - rem) / b, true
		default:
			if absInt64(a/b)%2 == 0 {
				return a / b, true
			}
			return (a - rem + absInt64(b)) / b, true
		}
	}
	switch {
	case rem > rest:
		return (a + rem - absInt64(b)) / b, true
	case rem < rest:
		return (a + rem) / b, true
	default:
		if absInt64(a/b)%2 == 0 {
			return a / b, true
		}
		return (a + rem - absInt64(b)) / b, true
	}
}

// Ceiling rounds toward positive infinity.
type Ceiling struct{}

func (Ceiling) Round(x float64) int64 { return ceilF(x) }

func (Ceiling) DivRounded(a, b int64) (int64, bool) {
	rem := absInt64(a) % absInt64(b)
	if rem == 0 {
		return a / b, true
	}
	if a >= 0 {
		return (a + absInt64(b)) / b, true
	}
	return a / b, true
}

// Floor rounds toward negative infinity.
type Floor struct{}

func (Floor) Round(x float64) int64 { return floorF(x) }

func (Floor) DivRounded(a, b int64) (int64, bool) {
	rem := absInt64(a) % absInt64(b)
	if rem == 0 {
		return a / b, true
	}
	if a >= 0 {
		return (a - rem) / b, true
	}
	return (a + rem - absInt64(b)) / b, true
}

// Up rounds away from zero.
type Up struct{}

func (Up) Round(x float64) int64 {
	if x >= 0 {
		return ceilF(x)
	}
	return floorF(x)
}

func (Up) DivRounded(a, b int64) (int64, bool) {
	rem := absInt64(a) % absInt64(b)
	if rem == 0 {
		return a / b, true
	}
	if a >= 0 {
		return (a + absInt64(b)) / b, true
	}
	return (a - absInt64(b)) / b, true
}
