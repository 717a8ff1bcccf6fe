package filemode

// SymbolicLength is the length of an ls-style mode string.
const SymbolicLength = 10

// Offsets of the execute slot of each class within a mode string.
const (
	userExecPos  = 3
	groupExecPos = 6
	otherExecPos = 9
)

// ParseString decodes a 10-character ls-style mode string such as
// "drwxr-sr-t".
//
// The type character is one of d, b, c, l, s, p or '-'. A '-' sets no type
// flag, so regular files and whiteouts decode identically. In the execute
// slots, s/S (user, group) and t/T (other) set setuid, setgid and sticky;
// the lowercase form also sets execute.
func ParseString(s string) (FileMode, error) {
	if len(s) != SymbolicLength {
		return FileMode{}, &FormatError{Input: s, Length: len(s)}
	}

	result := Blank()
	switch c := s[0]; c {
	case '-':
	default:
		flag, ok := typeChars[c]
		if !ok {
			return FileMode{}, &UnrecognizedTypeCharError{Char: rune(c), Input: s}
		}
		result.Special.Set(flag, true)
	}

	var err error
	triad := func(start int) Triad {
		var t Triad
		for i, dst := range []*bool{&t.Read, &t.Write, &t.Execute} {
			if err != nil {
				break
			}
			*dst, err = permChar(s, start+i, "rwx"[i])
		}
		return t
	}
	result.User = triad(1)
	result.Group = triad(4)
	result.Other = triad(7)
	if err != nil {
		return FileMode{}, err
	}

	result.Special.Setuid = s[userExecPos] == 's' || s[userExecPos] == 'S'
	result.Special.Setgid = s[groupExecPos] == 's' || s[groupExecPos] == 'S'
	result.Special.Sticky = s[otherExecPos] == 't' || s[otherExecPos] == 'T'
	return result, nil
}

// permChar validates the character at pos. The same alphabet applies to every
// slot: the slot's own letter or a lowercase special letter means set, while
// '-' or an uppercase special letter means unset.
func permChar(s string, pos int, letter byte) (bool, error) {
	switch c := s[pos]; c {
	case letter, 's', 't':
		return true, nil
	case '-', 'S', 'T':
		return false, nil
	default:
		return false, &UnexpectedCharError{Char: rune(c), Input: s, Position: pos}
	}
}

// String renders the mode as a 10-character ls-style string. The setuid,
// setgid and sticky bits replace the execute character of the user, group
// and other triads with s/S, s/S and t/T respectively.
func (f FileMode) String() string {
	b := make([]byte, 0, SymbolicLength)
	b = append(b, f.Special.TypeChar())
	b = f.Permissions.appendRWX(b)
	if f.Special.Setuid {
		b[userExecPos] = special(f.User.Execute, 's')
	}
	if f.Special.Setgid {
		b[groupExecPos] = special(f.Group.Execute, 's')
	}
	if f.Special.Sticky {
		b[otherExecPos] = special(f.Other.Execute, 't')
	}
	return string(b)
}

// special returns the lowercase letter when execute is set and the uppercase
// one otherwise.
func special(execute bool, lower byte) byte {
	if execute {
		return lower
	}
	return lower - 'a' + 'A'
}

// ModeAsString is the function form of FileMode.String.
func ModeAsString(f FileMode) string {
	return f.String()
}

// PermAsString is the function form of Permissions.String.
func PermAsString(p Permissions) string {
	return p.String()
}
