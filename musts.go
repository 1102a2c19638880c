package decimal64

import (
	"fmt"

	shopspring "github.com/shopspring/decimal"
)

// MustFromShopspring is like FromShopspring but panics if the conversion
// overflows int64.
func MustFromShopspring[P Precision, R Rounding](s shopspring.Decimal) Decimal[P, R] {
	d, err := FromShopspring[P, R](s)
	if err != nil {
		panic(fmt.Sprintf("decimal64.MustFromShopspring(%v) failed: %v", s, err))
	}
	return d
}
