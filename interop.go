package decimal64

import (
	"fmt"
	"math/big"

	shopspring "github.com/shopspring/decimal"
)

// ToShopspring converts d into github.com/shopspring/decimal's arbitrary-
// precision representation, for collaborators that already standardize on
// that library (shopspring/decimal is a direct dependency of
// coachpo-meltica-gateway). The conversion is exact: shopspring's Decimal
// is coefficient*10^exponent, the same shape as the unbiased mantissa this
// package already stores.
func ToShopspring[P Precision, R Rounding](d Decimal[P, R]) shopspring.Decimal {
	return shopspring.New(d.AsUnbiased(), int32(-precOf[P]()))
}

// FromShopspring converts a shopspring/decimal.Decimal into a Decimal[P,R].
// Widening (the source has fewer fractional digits than P) is exact.
// Narrowing reduces the source's big.Int coefficient with big.Int.QuoRem
// and folds the truncated remainder back in through R.DivRounded — the
// same truncate-then-correct shape multDiv and rebias (decimal.go) use for
// every other cross-precision conversion in this package — falling back to
// R.Round on a big.Float ratio only when the remainder/divisor pair is too
// large for int64 (shopspring's coefficient is arbitrary-precision; this
// package's is not). It reports a *ParseError with Code Overflow if the
// final coefficient does not fit in int64.
func FromShopspring[P Precision, R Rounding](s shopspring.Decimal) (Decimal[P, R], error) {
	prec := precOf[P]()
	coeff := s.Coefficient()
	shift := int(s.Exponent()) + prec

	if shift >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(shift)), nil)
		widened := new(big.Int).Mul(coeff, scale)
		if !widened.IsInt64() {
			return Decimal[P, R]{}, fmt.Errorf("decimal64: from shopspring %s: %w", s.String(), &ParseError{Code: Overflow})
		}
		return FromUnbiased[P, R](widened.Int64()), nil
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-shift)), nil)
	quo, rem := new(big.Int).QuoRem(coeff, divisor, new(big.Int))
	if !quo.IsInt64() {
		return Decimal[P, R]{}, fmt.Errorf("decimal64: from shopspring %s: %w", s.String(), &ParseError{Code: Overflow})
	}
	if rem.Sign() == 0 {
		return FromUnbiased[P, R](quo.Int64()), nil
	}

	var r R
	if rem.IsInt64() && divisor.IsInt64() {
		frac, ok := r.DivRounded(rem.Int64(), divisor.Int64())
		if !ok {
			frac = 0
		}
		return FromUnbiased[P, R](quo.Int64() + frac), nil
	}

	ratio := new(big.Float).Quo(new(big.Float).SetInt(rem), new(big.Float).SetInt(divisor))
	fracF, _ := ratio.Float64()
	return FromUnbiased[P, R](quo.Int64() + r.Round(fracF)), nil
}
