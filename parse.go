package decimal64

import (
	"bufio"
	"fmt"
	"io"
)

// CharSource is a pull-based source of bytes for the parser's state
// machine, mirroring decimal64.hpp's StringCharSequence/StreamCharSequence
// pair: one state machine, two sources, identical error taxonomy regardless
// of where the input comes from.
type CharSource interface {
	// Get returns the next byte, or 0 at end of input.
	Get() byte
	// Unget pushes back a single byte, undoing the most recent Get.
	Unget()
}

// StringSource is a CharSource over an in-memory string.
type StringSource struct {
	s   string
	pos int
}

// NewStringSource returns a CharSource that reads s from the start.
func NewStringSource(s string) *StringSource {
	return &StringSource{s: s}
}

func (src *StringSource) Get() byte {
	if src.pos >= len(src.s) {
		return 0
	}
	c := src.s[src.pos]
	src.pos++
	return c
}

func (src *StringSource) Unget() {
	src.pos--
}

// byteScanner is the subset of io.Reader-backed scanning operations needed
// to adapt an io.RuneScanner (e.g. a bufio.Reader, or fmt.ScanState) into a
// CharSource.
type byteScanner interface {
	ReadRune() (r rune, size int, err error)
	UnreadRune() error
}

// ScannerSource adapts an io.RuneScanner (bufio.Reader, fmt.ScanState, ...)
// into a CharSource, the Go analogue of decimal64.hpp's StreamCharSequence.
type ScannerSource struct {
	rs  byteScanner
	eof bool
}

// NewScannerSource wraps rs as a CharSource.
func NewScannerSource(rs byteScanner) *ScannerSource {
	return &ScannerSource{rs: rs}
}

func (src *ScannerSource) Get() byte {
	if src.eof {
		return 0
	}
	r, _, err := src.rs.ReadRune()
	if err != nil {
		src.eof = true
		return 0
	}
	if r > 0x7f {
		// Not part of the grammar; treat as a single opaque byte so the
		// state machine reports WrongChar instead of mis-decoding.
		return '?'
	}
	return byte(r)
}

func (src *ScannerSource) Unget() {
	if src.eof {
		src.eof = false
		return
	}
	_ = src.rs.UnreadRune()
}

// ParseOptions is a bitset of the permissive-mode relaxations the parser
// may apply; the zero value is strict mode (exact grammar [+-]?\d+(\.\d+)?).
type ParseOptions uint8

const (
	// AllowSpaces ignores leading/trailing ASCII whitespace.
	AllowSpaces ParseOptions = 1 << iota
	// AllowTrailingJunk leaves non-space trailing characters unconsumed
	// and unreported, instead of raising TrailingJunk.
	AllowTrailingJunk
	// AllowBoundaryDot accepts "5.", ".5", and "." (as 0).
	AllowBoundaryDot
	// AllowRounding accepts more than P fractional digits instead of
	// raising Rounding: digits past the 18th are folded in half-up while
	// reading, and the rest are rounded to P with the policy R.
	AllowRounding
)

// Permissive is the option set used by ParsePermissive: spaces, boundary
// dots, and over-precision rounding are all allowed.
const Permissive = AllowSpaces | AllowBoundaryDot | AllowRounding

// ErrorCode tags why parsing failed, matching decimal64.hpp's
// ParseErrorCode enum.
type ErrorCode uint8

const (
	WrongChar ErrorCode = iota
	NoDigits
	Overflow
	Space
	TrailingJunk
	BoundaryDot
	Rounding
)

func (c ErrorCode) String() string {
	switch c {
	case WrongChar:
		return "WrongChar"
	case NoDigits:
		return "NoDigits"
	case Overflow:
		return "Overflow"
	case Space:
		return "Space"
	case TrailingJunk:
		return "TrailingJunk"
	case BoundaryDot:
		return "BoundaryDot"
	case Rounding:
		return "Rounding"
	default:
		return "Unknown"
	}
}

// ParseError reports a parse failure at a specific 0-based character
// position, with a human-readable message pointing at the offending
// column.
type ParseError struct {
	Code     ErrorCode
	Position int
	input    string
}

func (e *ParseError) Error() string {
	if e.input == "" {
		return fmt.Sprintf("decimal64: parse error %s at position %d", e.Code, e.Position)
	}
	pointer := make([]byte, e.Position+1)
	for i := range pointer[:e.Position] {
		pointer[i] = ' '
	}
	pointer[e.Position] = '^'
	return fmt.Sprintf("decimal64: parse error %s at position %d:\n%s\n%s", e.Code, e.Position, e.input, pointer)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v':
		return true
	default:
		return false
	}
}

type parseState int

const (
	stSign parseState = iota
	stBeforeFirstDig
	stLeadingZeros
	stBeforeDec
	stAfterDec
	stIgnoringAfterDec
	stEnd
)

// unpackedResult is the output of the state machine, ready to be packed
// into a Decimal[P,R] by packDecimal.
type unpackedResult struct {
	before   int64
	after    int64
	digits   int
	negative bool
	err      *ParseError
	position int
}

// parseUnpacked runs the pull-based state machine over src, producing an
// unpackedResult ready for packDecimal. It is shared by every public
// Parse* entry point and by both CharSource implementations.
func parseUnpacked(src CharSource, opts ParseOptions) unpackedResult {
	const dot = '.'

	var (
		before, after int64
		negative      bool
		position      = -1
		state         = stSign
		err           *ParseError
		beforeDigits  int
		afterDigits   int
	)

	setErr := func(code ErrorCode) {
		if err == nil {
			err = &ParseError{Code: code, Position: position}
		}
	}

	for state != stEnd {
		c := src.Get()
		if c == 0 {
			break
		}
		if err == nil {
			position++
		}

		switch state {
		case stSign:
			switch {
			case c == '-':
				negative = true
				state = stBeforeFirstDig
			case c == '+':
				state = stBeforeFirstDig
			case c == '0':
				state = stLeadingZeros
				beforeDigits = 1
			case c >= '1' && c <= '9':
				state = stBeforeDec
				before = int64(c - '0')
				beforeDigits = 1
			case c == dot:
				if opts&AllowBoundaryDot == 0 {
					setErr(BoundaryDot)
				}
				state = stAfterDec
			case isSpace(c):
				if opts&AllowSpaces == 0 {
					state = stEnd
					setErr(Space)
				}
			default:
				state = stEnd
				setErr(WrongChar)
			}
		case stBeforeFirstDig:
			switch {
			case c == '0':
				state = stLeadingZeros
				beforeDigits = 1
			case c >= '1' && c <= '9':
				state = stBeforeDec
				before = int64(c - '0')
				beforeDigits = 1
			case c == dot:
				if opts&AllowBoundaryDot == 0 {
					setErr(BoundaryDot)
				}
				state = stAfterDec
			default:
				state = stEnd
				setErr(WrongChar)
			}
		case stLeadingZeros:
			switch {
			case c == '0':
				// skip
			case c >= '1' && c <= '9':
				state = stBeforeDec
				before = int64(c - '0')
			case c == dot:
				state = stAfterDec
			default:
				state = stEnd
			}
		case stBeforeDec:
			switch {
			case c >= '0' && c <= '9':
				if beforeDigits < MaxPrec {
					before = 10*before + int64(c-'0')
					beforeDigits++
				} else {
					setErr(Overflow)
				}
			case c == dot:
				state = stAfterDec
			default:
				state = stEnd
			}
		case stAfterDec:
			switch {
			case c >= '0' && c <= '9':
				if afterDigits < MaxPrec {
					after = 10*after + int64(c-'0')
					afterDigits++
				} else {
					if opts&AllowRounding == 0 {
						setErr(Rounding)
					}
					state = stIgnoringAfterDec
					if c >= '5' {
						after++
					}
				}
			default:
				if opts&AllowBoundaryDot == 0 && afterDigits == 0 {
					setErr(BoundaryDot)
				}
				state = stEnd
			}
		case stIgnoringAfterDec:
			if c < '0' || c > '9' {
				state = stEnd
			}
		}
	}

	if state == stEnd {
		src.Unget()

		if err == nil && opts&AllowTrailingJunk == 0 {
			position--
			for {
				c := src.Get()
				if c == 0 {
					break
				}
				position++
				if !isSpace(c) {
					setErr(TrailingJunk)
					src.Unget()
					break
				}
				if opts&AllowSpaces == 0 {
					setErr(Space)
					src.Unget()
					break
				}
			}
		}
	}

	// A lone "." (optionally signed) under AllowBoundaryDot leaves
	// beforeDigits and afterDigits both at 0 but state at stAfterDec, not
	// NoDigits: it parses as the value 0, per AllowBoundaryDot's doc comment.
	if err == nil && beforeDigits == 0 && afterDigits == 0 && state != stAfterDec {
		setErr(NoDigits)
	}

	if err == nil && state == stAfterDec && opts&AllowBoundaryDot == 0 && afterDigits == 0 {
		setErr(BoundaryDot)
	}

	return unpackedResult{
		before:   before,
		after:    after,
		digits:   afterDigits,
		negative: negative,
		err:      err,
		position: position,
	}
}

// packDecimal turns an unpackedResult into a Decimal[P,R]. opts is the same
// ParseOptions the caller passed to parseUnpacked; packDecimal only consults
// its AllowRounding bit, to decide whether digits beyond P are rejected
// (strict mode) or silently rounded (permissive mode).
func packDecimal[P Precision, R Rounding](u unpackedResult, opts ParseOptions) (Decimal[P, R], error) {
	if u.err != nil {
		return Decimal[P, R]{}, u.err
	}

	prec := precOf[P]()
	factor := factorOf[P]()

	if u.before >= maxInt64/factor {
		return Decimal[P, R]{}, &ParseError{Code: Overflow}
	}

	if opts&AllowRounding == 0 && u.digits > prec {
		return Decimal[P, R]{}, &ParseError{Code: Rounding}
	}

	before, after := u.before, u.after
	if u.negative {
		before, after = -before, -after
	}

	if u.digits <= prec {
		widen, err := Pow10(prec - u.digits)
		if err != nil {
			return Decimal[P, R]{}, err
		}
		return Decimal[P, R]{v: before*factor + after*widen}, nil
	}

	shrink, err := Pow10(u.digits - prec)
	if err != nil {
		return Decimal[P, R]{}, err
	}
	var r R
	fracPart, ok := r.DivRounded(after, shrink)
	if !ok {
		fracPart = 0
	}
	return Decimal[P, R]{v: before*factor + fracPart}, nil
}

// Parse parses s in strict mode: exactly [+-]?\d+(\.\d+)?, no whitespace,
// no trailing characters, no boundary dot, and no more than P fractional
// digits — excess digits report a Rounding *ParseError rather than rounding
// silently. Use ParsePermissive or ParseWithOptions(..., AllowRounding) to
// round instead of rejecting.
func Parse[P Precision, R Rounding](s string) (Decimal[P, R], error) {
	return parseWith[P, R](s, 0)
}

// ParsePermissive parses s allowing leading/trailing whitespace, boundary
// dots, and silent rounding of excess fractional digits.
func ParsePermissive[P Precision, R Rounding](s string) (Decimal[P, R], error) {
	return parseWith[P, R](s, Permissive)
}

// ParseWithOptions parses s under an explicit ParseOptions combination.
func ParseWithOptions[P Precision, R Rounding](s string, opts ParseOptions) (Decimal[P, R], error) {
	return parseWith[P, R](s, opts)
}

func parseWith[P Precision, R Rounding](s string, opts ParseOptions) (Decimal[P, R], error) {
	src := NewStringSource(s)
	u := parseUnpacked(src, opts)
	if u.err != nil {
		u.err.input = s
	}
	return packDecimal[P, R](u, opts)
}

// MustParse is like Parse but panics if s fails to parse.
func MustParse[P Precision, R Rounding](s string) Decimal[P, R] {
	d, err := Parse[P, R](s)
	if err != nil {
		panic(fmt.Sprintf("decimal64.MustParse(%q) failed: %v", s, err))
	}
	return d
}

// ParseReader parses a Decimal from r, allowing trailing junk after the
// number, mirroring decimal64.hpp's operator>>(istream&, Decimal&): the
// number ends at the first character outside the grammar. r is read
// through a bufio.Reader, so bytes past the number may be consumed from r
// and are not returned to it.
func ParseReader[P Precision, R Rounding](r io.Reader) (Decimal[P, R], error) {
	br := bufio.NewReader(r)
	src := NewScannerSource(br)
	u := parseUnpacked(src, AllowTrailingJunk)
	return packDecimal[P, R](u, AllowTrailingJunk)
}
