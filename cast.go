package decimal64

// Cast converts a Decimal[P1,R1] into a Decimal[P2,R2]. It is the only
// routine that is allowed to cross both precision and rounding policy,
// since it re-rounds using R2 rather than R1, per decimal64.hpp's
// decimal_cast<NewDec>(dec) == NewDec::FromBiased(dec.AsUnbiased(), OldPrec).
//
// Cast works equally when R1 == R2, as a plain precision change.
// AddCross/SubCross rebias a same-policy second operand themselves,
// without going through Cast.
func Cast[P2 Precision, R2 Rounding, P1 Precision, R1 Rounding](x Decimal[P1, R1]) Decimal[P2, R2] {
	return FromBiased[P2, R2](x.AsUnbiased(), precOf[P1]())
}
