package decimal64

// Precision carries a compile-time fractional-digit count, in [0, MaxPrec],
// as a Go type. Go generics have no integer-valued type parameters, so each
// instantiation of Decimal[P, R] pins P down to one of the zero-size marker
// types below, each implementing Precision with its own constant Prec.
//
// P6, for example, stands in for the C++ template argument "Prec = 6": a
// Decimal[P6, R] and a Decimal[P4, R] are distinct Go types, and the compiler
// rejects mixing them without going through AddCross/SubCross/Mul/Div/Cast.
type Precision interface {
	Prec() int
}

// P0 through P18 are the marker types for every supported precision, 0
// through 18 fractional digits.
type (
	P0  struct{}
	P1  struct{}
	P2  struct{}
	P3  struct{}
	P4  struct{}
	P5  struct{}
	P6  struct{}
	P7  struct{}
	P8  struct{}
	P9  struct{}
	P10 struct{}
	P11 struct{}
	P12 struct{}
	P13 struct{}
	P14 struct{}
	P15 struct{}
	P16 struct{}
	P17 struct{}
	P18 struct{}
)

func (P0) Prec() int  { return 0 }
func (P1) Prec() int  { return 1 }
func (P2) Prec() int  { return 2 }
func (P3) Prec() int  { return 3 }
func (P4) Prec() int  { return 4 }
func (P5) Prec() int  { return 5 }
func (P6) Prec() int  { return 6 }
func (P7) Prec() int  { return 7 }
func (P8) Prec() int  { return 8 }
func (P9) Prec() int  { return 9 }
func (P10) Prec() int { return 10 }
func (P11) Prec() int { return 11 }
func (P12) Prec() int { return 12 }
func (P13) Prec() int { return 13 }
func (P14) Prec() int { return 14 }
func (P15) Prec() int { return 15 }
func (P16) Prec() int { return 16 }
func (P17) Prec() int { return 17 }
func (P18) Prec() int { return 18 }

// precOf returns the fractional-digit count carried by the Precision type
// parameter P, without requiring the caller to hold a value of type P.
func precOf[P Precision]() int {
	var p P
	return p.Prec()
}

// factorOf returns 10^precOf[P](), i.e. the scaling factor for precision P.
func factorOf[P Precision]() int64 {
	return powers10[precOf[P]()]
}
