package decimal64

import (
	"fmt"
	"io"
	"strconv"
)

// trimTrailingZeros divides after by the largest powers of ten that divide
// it evenly, via unrolled halving (16, 8, 4, 2, 1 digits at a time), and
// returns the reduced value along with the fractional field width that
// remains (prec minus the digits trimmed). Ported from decimal64.hpp's
// impl::TrimTrailingZeros.
func trimTrailingZeros(after int64, prec int) (reduced int64, width int) {
	if prec == 0 || after == 0 {
		return 0, 0
	}
	reduced = after
	width = prec
	if prec >= 17 && reduced%powers10[16] == 0 {
		reduced /= powers10[16]
		width -= 16
	}
	if prec >= 9 && reduced%powers10[8] == 0 {
		reduced /= powers10[8]
		width -= 8
	}
	if prec >= 5 && reduced%powers10[4] == 0 {
		reduced /= powers10[4]
		width -= 4
	}
	if prec >= 3 && reduced%powers10[2] == 0 {
		reduced /= powers10[2]
		width -= 2
	}
	if reduced%powers10[1] == 0 {
		reduced /= powers10[1]
		width--
	}
	return reduced, width
}

// String formats d with trailing fractional zeros trimmed, e.g. "1.5" for
// a Decimal[P4,*] holding 1.5000. Zero prints as "0".
func (d Decimal[P, R]) String() string {
	return d.format(true)
}

// StringFixed formats d with exactly P fractional digits, e.g. "1.5000"
// for a Decimal[P4,*] holding 1.5. When P == 0, no decimal point is
// printed.
func (d Decimal[P, R]) StringFixed() string {
	return d.format(false)
}

func (d Decimal[P, R]) format(trim bool) string {
	prec := precOf[P]()
	before, after := d.unpack()

	afterDigits := prec
	if trim {
		after, afterDigits = trimTrailingZeros(after, prec)
	}

	neg := d.v < 0
	if neg {
		before, after = -before, -after
	}

	var buf []byte
	if neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendInt(buf, before, 10)

	if afterDigits > 0 {
		buf = append(buf, '.')
		frac := strconv.FormatInt(after, 10)
		for i := len(frac); i < afterDigits; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, frac...)
	}

	return string(buf)
}

// Format implements fmt.Formatter. The 'f' verb prints StringFixed (exactly
// P fractional digits); every other verb ('v', 's', 'q', ...) prints
// String (trimmed), following govalues/decimal's Decimal.Format.
func (d Decimal[P, R]) Format(f fmt.State, verb rune) {
	var s string
	if verb == 'f' || verb == 'F' {
		s = d.StringFixed()
	} else {
		s = d.String()
	}
	if verb == 'q' {
		s = strconv.Quote(s)
	}
	io.WriteString(f, s)
}

// Scan implements fmt.Scanner, so Decimal works with fmt.Sscan/fmt.Fscan.
// It allows trailing junk to remain unconsumed, mirroring ParseReader /
// decimal64.hpp's operator>>.
func (d *Decimal[P, R]) Scan(state fmt.ScanState, verb rune) error {
	if verb == 'f' || verb == 'F' {
		state.SkipSpace()
	}
	src := NewScannerSource(state)
	u := parseUnpacked(src, AllowTrailingJunk)
	v, err := packDecimal[P, R](u, AllowTrailingJunk)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
