package filemode

import "fmt"

// Sentinel errors. The typed errors below unwrap to these, so callers can use
// errors.Is for the kind and errors.As for the details.
var (
	// ErrRange is returned when a numeric mode is outside [0, 2^32].
	ErrRange = fmt.Errorf("file mode out of range")

	// ErrFormat is returned when a symbolic mode is not exactly 10 characters.
	ErrFormat = fmt.Errorf("invalid mode string length")

	// ErrUnexpectedChar is returned for a permission character outside its
	// position's alphabet.
	ErrUnexpectedChar = fmt.Errorf("unexpected character in mode string")

	// ErrUnrecognizedTypeChar is returned for an unknown file type character.
	ErrUnrecognizedTypeChar = fmt.Errorf("unrecognized file type character")

	// ErrOctal is returned when an octal string cannot be parsed.
	ErrOctal = fmt.Errorf("invalid octal mode")

	// ErrUnknownFlag is returned by ParseFlag for an unknown flag name.
	ErrUnknownFlag = fmt.Errorf("unknown special flag")
)

// MaxMode is the largest accepted numeric mode, 2^32.
const MaxMode int64 = 1 << 32

// RangeError reports a numeric mode outside [0, MaxMode].
type RangeError struct {
	Value int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid file mode %d; file modes should be between 0 and 2^32 = %d", e.Value, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// FormatError reports a symbolic mode of the wrong length.
type FormatError struct {
	Input  string
	Length int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid mode string '%s': must be %d characters, is %d", e.Input, SymbolicLength, e.Length)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// UnexpectedCharError reports a permission character that is not valid at its
// position. Position is the 0-based index into Input.
type UnexpectedCharError struct {
	Char     rune
	Input    string
	Position int
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected letter %c in file mode string '%s'", e.Char, e.Input)
}

func (e *UnexpectedCharError) Unwrap() error { return ErrUnexpectedChar }

// UnrecognizedTypeCharError reports an unknown type character at position 0.
type UnrecognizedTypeCharError struct {
	Char  rune
	Input string
}

func (e *UnrecognizedTypeCharError) Error() string {
	return fmt.Sprintf("unrecognized file type %c in file mode string '%s'", e.Char, e.Input)
}

func (e *UnrecognizedTypeCharError) Unwrap() error { return ErrUnrecognizedTypeChar }

// OctalError reports an octal string that strconv could not parse.
type OctalError struct {
	Input string
	Err   error
}

func (e *OctalError) Error() string {
	return fmt.Sprintf("%s '%s': %v", ErrOctal, e.Input, e.Err)
}

// Unwrap returns both the sentinel and the underlying strconv error.
func (e *OctalError) Unwrap() []error { return []error{ErrOctal, e.Err} }
