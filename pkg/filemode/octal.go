package filemode

import (
	"fmt"
	"strconv"
	"strings"
)

// OctalDigits is the width used by FileMode.Octal. Five digits cover every
// bit up to the file type field.
const OctalDigits = 5

// OctalToDecimal parses a base-8 string. An optional "0o" prefix is accepted.
func OctalToDecimal(octal string) (int64, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(octal, "0o"), "0O")
	n, err := strconv.ParseInt(digits, 8, 64)
	if err != nil {
		return 0, &OctalError{Input: octal, Err: err}
	}
	return n, nil
}

// ParseOctalString parses s as base 8 and decodes the result.
func ParseOctalString(s string) (FileMode, error) {
	n, err := OctalToDecimal(s)
	if err != nil {
		return FileMode{}, err
	}
	return ParseNumber(n)
}

// OctalInput is either an octal string or an already-decoded number. Build
// one with OctalString or OctalNumber.
type OctalInput struct {
	str      string
	num      int64
	isString bool
}

// OctalString wraps a base-8 string.
func OctalString(s string) OctalInput {
	return OctalInput{str: s, isString: true}
}

// OctalNumber wraps a numeric mode.
func OctalNumber(n int64) OctalInput {
	return OctalInput{num: n}
}

func (in OctalInput) String() string {
	if in.isString {
		return in.str
	}
	return strconv.FormatInt(in.num, 10)
}

// ParseOctal decodes in. Strings are parsed as base 8 first; numbers are
// decoded directly with ParseNumber.
func ParseOctal(in OctalInput) (FileMode, error) {
	if in.isString {
		return ParseOctalString(in.str)
	}
	return ParseNumber(in.num)
}

// NumberToOctal renders n in base 8, zero padded to at least digits digits.
func NumberToOctal(n uint32, digits int) string {
	return fmt.Sprintf("%0*o", digits, n)
}

// Octal renders the numeric encoding of the mode as five octal digits.
func (f FileMode) Octal() string {
	return NumberToOctal(f.Decimal(), OctalDigits)
}

// ModeToOctal is the function form of FileMode.Octal.
func ModeToOctal(f FileMode) string {
	return f.Octal()
}
