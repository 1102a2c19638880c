// Package dynamic bridges decimal64's compile-time Decimal[P,R] type
// parameters to decimal64ctl's runtime-chosen --prec/--rounding flags. The
// library itself never resolves precision or rounding at runtime — that is
// the entire point of the generic design — so a CLI that accepts them as
// flags needs exactly one place that turns an int and a string into a type
// argument. This package is that place.
package dynamic

import (
	"fmt"

	dec "github.com/dakova-io/decimal64"
)

// Op identifies which Decimal operation Run should perform.
type Op int

const (
	OpParse Op = iota
	OpFormat
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpCast
)

// Run parses args (one operand for Parse/Format/Cast, two for
// Add/Sub/Mul/Div) at the given precision and rounding policy, performs op,
// and returns the formatted result. toPrec is only consulted for OpCast.
func Run(op Op, prec int, rounding string, args []string, toPrec int) (string, error) {
	switch rounding {
	case "down":
		return runPrec[dec.Down](op, prec, args, toPrec)
	case "default":
		return runPrec[dec.Default](op, prec, args, toPrec)
	case "half-down":
		return runPrec[dec.HalfDown](op, prec, args, toPrec)
	case "half-up":
		return runPrec[dec.HalfUp](op, prec, args, toPrec)
	case "half-even":
		return runPrec[dec.HalfEven](op, prec, args, toPrec)
	case "ceiling":
		return runPrec[dec.Ceiling](op, prec, args, toPrec)
	case "floor":
		return runPrec[dec.Floor](op, prec, args, toPrec)
	case "up":
		return runPrec[dec.Up](op, prec, args, toPrec)
	default:
		return "", fmt.Errorf("dynamic: unknown rounding policy %q", rounding)
	}
}

func runPrec[R dec.Rounding](op Op, prec int, args []string, toPrec int) (string, error) {
	switch prec {
	case 0:
		return runOp[dec.P0, R](op, args, toPrec)
	case 1:
		return runOp[dec.P1, R](op, args, toPrec)
	case 2:
		return runOp[dec.P2, R](op, args, toPrec)
	case 3:
		return runOp[dec.P3, R](op, args, toPrec)
	case 4:
		return runOp[dec.P4, R](op, args, toPrec)
	case 5:
		return runOp[dec.P5, R](op, args, toPrec)
	case 6:
		return runOp[dec.P6, R](op, args, toPrec)
	case 7:
		return runOp[dec.P7, R](op, args, toPrec)
	case 8:
		return runOp[dec.P8, R](op, args, toPrec)
	case 9:
		return runOp[dec.P9, R](op, args, toPrec)
	case 10:
		return runOp[dec.P10, R](op, args, toPrec)
	case 11:
		return runOp[dec.P11, R](op, args, toPrec)
	case 12:
		return runOp[dec.P12, R](op, args, toPrec)
	case 13:
		return runOp[dec.P13, R](op, args, toPrec)
	case 14:
		return runOp[dec.P14, R](op, args, toPrec)
	case 15:
		return runOp[dec.P15, R](op, args, toPrec)
	case 16:
		return runOp[dec.P16, R](op, args, toPrec)
	case 17:
		return runOp[dec.P17, R](op, args, toPrec)
	case 18:
		return runOp[dec.P18, R](op, args, toPrec)
	default:
		return "", fmt.Errorf("dynamic: precision %d out of range [0,18]", prec)
	}
}

func runOp[P dec.Precision, R dec.Rounding](op Op, args []string, toPrec int) (string, error) {
	switch op {
	case OpParse:
		d, err := dec.ParsePermissive[P, R](args[0])
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case OpFormat:
		d, err := dec.ParsePermissive[P, R](args[0])
		if err != nil {
			return "", err
		}
		return d.StringFixed(), nil
	case OpAdd, OpSub, OpMul, OpDiv:
		if len(args) != 2 {
			return "", fmt.Errorf("dynamic: op requires exactly 2 operands, got %d", len(args))
		}
		a, err := dec.ParsePermissive[P, R](args[0])
		if err != nil {
			return "", err
		}
		b, err := dec.ParsePermissive[P, R](args[1])
		if err != nil {
			return "", err
		}
		var result dec.Decimal[P, R]
		switch op {
		case OpAdd:
			result = a.Add(b)
		case OpSub:
			result = a.Sub(b)
		case OpMul:
			result = dec.Mul[P, R](a, b)
		case OpDiv:
			result = dec.Div[P, R](a, b)
		}
		return result.String(), nil
	case OpCast:
		d, err := dec.ParsePermissive[P, R](args[0])
		if err != nil {
			return "", err
		}
		return castTo[P, R](d, toPrec)
	default:
		return "", fmt.Errorf("dynamic: unknown op %d", op)
	}
}

// castTo resolves the destination precision of a cast operation the same
// way runPrec resolves the source precision, keeping the same rounding
// policy R on both sides.
func castTo[P1 dec.Precision, R dec.Rounding](d dec.Decimal[P1, R], toPrec int) (string, error) {
	switch toPrec {
	case 0:
		return dec.Cast[dec.P0, R](d).String(), nil
	case 1:
		return dec.Cast[dec.P1, R](d).String(), nil
	case 2:
		return dec.Cast[dec.P2, R](d).String(), nil
	case 3:
		return dec.Cast[dec.P3, R](d).String(), nil
	case 4:
		return dec.Cast[dec.P4, R](d).String(), nil
	case 5:
		return dec.Cast[dec.P5, R](d).String(), nil
	case 6:
		return dec.Cast[dec.P6, R](d).String(), nil
	case 7:
		return dec.Cast[dec.P7, R](d).String(), nil
	case 8:
		return dec.Cast[dec.P8, R](d).String(), nil
	case 9:
		return dec.Cast[dec.P9, R](d).String(), nil
	case 10:
		return dec.Cast[dec.P10, R](d).String(), nil
	case 11:
		return dec.Cast[dec.P11, R](d).String(), nil
	case 12:
		return dec.Cast[dec.P12, R](d).String(), nil
	case 13:
		return dec.Cast[dec.P13, R](d).String(), nil
	case 14:
		return dec.Cast[dec.P14, R](d).String(), nil
	case 15:
		return dec.Cast[dec.P15, R](d).String(), nil
	case 16:
		return dec.Cast[dec.P16, R](d).String(), nil
	case 17:
		return dec.Cast[dec.P17, R](d).String(), nil
	case 18:
		return dec.Cast[dec.P18, R](d).String(), nil
	default:
		return "", fmt.Errorf("dynamic: precision %d out of range [0,18]", toPrec)
	}
}
