package decimal64

import "fmt"

// Decimal is a fixed-point decimal number: an int64 mantissa v interpreted
// as v / 10^P, where P is the compile-time Precision type parameter and R
// is the compile-time Rounding policy used for every lossy operation
// (multiplication, division, cross-precision conversion, rounded parsing).
//
// The zero value is 0. Every int64 is a valid mantissa; there is no other
// validity invariant. Decimal is 8 bytes and is safe to copy, compare with
// ==, and share across goroutines, since it is immutable by convention.
type Decimal[P Precision, R Rounding] struct {
	v int64
}

// Factor returns 10^P, the denominator implied by d's precision.
func (d Decimal[P, R]) Factor() int64 { return factorOf[P]() }

// Prec returns the number of fractional digits carried by d's type.
func (d Decimal[P, R]) Prec() int { return precOf[P]() }

// AsUnbiased returns the raw mantissa: d's value is AsUnbiased()/Factor().
// It is the escape hatch paired with FromUnbiased.
func (d Decimal[P, R]) AsUnbiased() int64 { return d.v }

// FromUnbiased reconstructs a Decimal from a raw mantissa acquired via
// AsUnbiased. No rounding is performed.
func FromUnbiased[P Precision, R Rounding](v int64) Decimal[P, R] {
	return Decimal[P, R]{v: v}
}

// FromInt converts an integer to a Decimal, scaling it by 10^P. It wraps
// on overflow, matching Go's native signed-integer overflow behavior.
func FromInt[P Precision, R Rounding](n int64) Decimal[P, R] {
	return Decimal[P, R]{v: n * factorOf[P]()}
}

// FromFloatInexact converts a float64 to a Decimal, always rounding with
// Default regardless of R: the float input is already inexact, so imposing
// the caller's business-rounding policy on it would produce surprising
// jumps from tiny float error. This is documented, required behavior, not
// an oversight — see decimal64.hpp.
func FromFloatInexact[P Precision, R Rounding](x float64) Decimal[P, R] {
	var def Default
	return Decimal[P, R]{v: def.Round(x * float64(factorOf[P]()))}
}

// FromBiased interprets u*10^(-origPrec) and converts it to a Decimal[P,R],
// rounding according to R if origPrec carries more fractional digits than P.
//
//	FromBiased[P4,R](123, 6) -> 0.0001
//	FromBiased[P4,R](123, 2) -> 1.23
//	FromBiased[P4,R](123, -1) -> 1230
func FromBiased[P Precision, R Rounding](u int64, origPrec int) Decimal[P, R] {
	exp := precOf[P]() - origPrec
	if exp >= 0 {
		factor, err := Pow10(exp)
		if err != nil {
			panic(err)
		}
		return Decimal[P, R]{v: u * factor}
	}
	factor, err := Pow10(-exp)
	if err != nil {
		panic(err)
	}
	var r R
	v, ok := r.DivRounded(u, factor)
	if !ok {
		v = 0
	}
	return Decimal[P, R]{v: v}
}

// Sign returns -1, 0, or +1 depending on the sign of d.
func (d Decimal[P, R]) Sign() int {
	switch {
	case d.v > 0:
		return 1
	case d.v < 0:
		return -1
	default:
		return 0
	}
}

// Abs returns the absolute value of d. Like decimal64.hpp, it wraps (rather
// than panics) when d's mantissa is math.MinInt64, since negating
// MinInt64 overflows int64 — consistent with this package's general
// wraps-on-overflow stance.
func (d Decimal[P, R]) Abs() Decimal[P, R] {
	return Decimal[P, R]{v: absInt64(d.v)}
}

// Neg returns -d.
func (d Decimal[P, R]) Neg() Decimal[P, R] {
	return Decimal[P, R]{v: -d.v}
}

// Add returns d+e. Both must share precision P and rounding policy R; use
// AddCross to add a Decimal of a different precision.
func (d Decimal[P, R]) Add(e Decimal[P, R]) Decimal[P, R] {
	return Decimal[P, R]{v: d.v + e.v}
}

// Sub returns d-e. Both must share precision P and rounding policy R; use
// SubCross to subtract a Decimal of a different precision.
func (d Decimal[P, R]) Sub(e Decimal[P, R]) Decimal[P, R] {
	return Decimal[P, R]{v: d.v - e.v}
}

// rebias converts e's mantissa to precision P using widen-or-DivRounded,
// the rule AddCross and SubCross use to bring a second operand's precision
// in line with the receiver's before combining. Mul and Div do not use it;
// they fold e's precision into a single multDiv call.
func rebias[P Precision, R Rounding, P2 Precision](e Decimal[P2, R]) int64 {
	p, p2 := precOf[P](), precOf[P2]()
	if p2 <= p {
		factor, _ := Pow10(p - p2)
		return e.AsUnbiased() * factor
	}
	factor, _ := Pow10(p2 - p)
	var r R
	v, ok := r.DivRounded(e.AsUnbiased(), factor)
	if !ok {
		v = 0
	}
	return v
}

// AddCross adds e (precision P2) to d (precision P), first rebiasing e to
// P via widen-or-DivRounded. Both operands must share rounding policy R.
func AddCross[P Precision, R Rounding, P2 Precision](d Decimal[P, R], e Decimal[P2, R]) Decimal[P, R] {
	return Decimal[P, R]{v: d.v + rebias[P, R](e)}
}

// SubCross subtracts e (precision P2) from d (precision P), first
// rebiasing e to P via widen-or-DivRounded.
func SubCross[P Precision, R Rounding, P2 Precision](d Decimal[P, R], e Decimal[P2, R]) Decimal[P, R] {
	return Decimal[P, R]{v: d.v - rebias[P, R](e)}
}

// MulInt multiplies d by an integer. It wraps on overflow.
func (d Decimal[P, R]) MulInt(n int64) Decimal[P, R] {
	return Decimal[P, R]{v: d.v * n}
}

// Mul multiplies d (precision P) by e (precision P2, same rounding policy
// R), producing a result at precision P via the overflow-avoiding mult-div
// kernel: v <- multDiv[R](d.v, e.v, 10^P2).
func Mul[P Precision, R Rounding, P2 Precision](d Decimal[P, R], e Decimal[P2, R]) Decimal[P, R] {
	return Decimal[P, R]{v: multDiv[R](d.v, e.v, factorOf[P2]())}
}

// DivInt divides d by an integer: R.DivRounded(d.v, n), falling back to
// multDiv[R](d.v, 1, n) when DivRounded reports ok=false.
func (d Decimal[P, R]) DivInt(n int64) Decimal[P, R] {
	var r R
	v, ok := r.DivRounded(d.v, n)
	if !ok {
		v = multDiv[R](d.v, 1, n)
	}
	return Decimal[P, R]{v: v}
}

// Div divides d (precision P) by e (precision P2, same rounding policy R):
// v <- multDiv[R](d.v, 10^P2, e.v).
func Div[P Precision, R Rounding, P2 Precision](d Decimal[P, R], e Decimal[P2, R]) Decimal[P, R] {
	return Decimal[P, R]{v: multDiv[R](d.v, factorOf[P2](), e.v)}
}

// Cmp compares d and e lexicographically on the mantissa, returning -1, 0,
// or +1. Comparisons are only defined between values of identical P and R.
func (d Decimal[P, R]) Cmp(e Decimal[P, R]) int {
	switch {
	case d.v < e.v:
		return -1
	case d.v > e.v:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and e have the same mantissa.
func (d Decimal[P, R]) Equal(e Decimal[P, R]) bool {
	return d.v == e.v
}

// ToInteger rounds d to the nearest integer using R, returning 0 if
// R.DivRounded reports ok=false.
func (d Decimal[P, R]) ToInteger() int64 {
	var r R
	v, ok := r.DivRounded(d.v, factorOf[P]())
	if !ok {
		return 0
	}
	return v
}

// ToFloatInexact returns d's value as a float64: v / factor. The result is
// inexact for the same reason any int64/float64 division is.
func (d Decimal[P, R]) ToFloatInexact() float64 {
	return float64(d.v) / float64(factorOf[P]())
}

// unpack splits d's mantissa into {before, after}, the signed integer part
// and the signed fractional part scaled by 10^P.
func (d Decimal[P, R]) unpack() (before, after int64) {
	factor := factorOf[P]()
	return d.v / factor, d.v % factor
}

// GoString supports "%#v" with a form a reader can paste back as Go source.
func (d Decimal[P, R]) GoString() string {
	return fmt.Sprintf("decimal64.FromUnbiased[%T,%T](%d)", *new(P), *new(R), d.v)
}
