package filemode

// MarshalText implements encoding.TextMarshaler using the symbolic form.
func (f FileMode) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts either a
// 10-character symbolic string or an octal number. The receiver is left
// untouched on failure.
func (f *FileMode) UnmarshalText(text []byte) error {
	s := string(text)
	var (
		result FileMode
		err    error
	)
	if IsSymbolic(s) {
		result, err = ParseString(s)
	} else {
		result, err = ParseOctalString(s)
	}
	if err != nil {
		return err
	}
	*f = result
	return nil
}

// IsSymbolic reports whether s looks like an ls-style string rather than a
// number: ten characters with a non-digit type character.
func IsSymbolic(s string) bool {
	return len(s) == SymbolicLength && (s[0] < '0' || s[0] > '9')
}

// Record is the expanded, self-describing form of a mode used for structured
// output.
type Record struct {
	Symbolic string          `json:"symbolic" yaml:"symbolic"`
	Octal    string          `json:"octal" yaml:"octal"`
	Decimal  uint32          `json:"decimal" yaml:"decimal"`
	User     Triad           `json:"user" yaml:"user"`
	Group    Triad           `json:"group" yaml:"group"`
	Other    Triad           `json:"other" yaml:"other"`
	Special  map[string]bool `json:"special" yaml:"special"`
}

// Record expands the mode into a Record.
func (f FileMode) Record() Record {
	special := make(map[string]bool, numFlags)
	for _, flag := range Flags() {
		special[flag.String()] = f.Special.Get(flag)
	}
	return Record{
		Symbolic: f.String(),
		Octal:    f.Octal(),
		Decimal:  f.Decimal(),
		User:     f.User,
		Group:    f.Group,
		Other:    f.Other,
		Special:  special,
	}
}

// FileMode rebuilds the mode from the record's flag fields. Symbolic, Octal
// and Decimal are ignored; unknown special names are skipped.
func (r Record) FileMode() FileMode {
	f := Blank()
	f.User, f.Group, f.Other = r.User, r.Group, r.Other
	for name, v := range r.Special {
		if flag, err := ParseFlag(name); err == nil {
			f.Special.Set(flag, v)
		}
	}
	return f
}
