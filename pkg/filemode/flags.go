package filemode

import "fmt"

// Flag identifies one of the special mode bits: the setuid/setgid/sticky
// permission modifiers and the file type discriminants.
type Flag uint8

// Special flags in their canonical iteration order.
const (
	Sticky Flag = iota
	Setgid
	Setuid
	NamedPipe
	CharacterDevice
	Directory
	RegularFile
	Socket
	BlockDevice
	SymbolicLink
	Whiteout
)

// Raw bit values of the special flags in a numeric mode.
//
// The type discriminants share the 3-bit field at bits 12-15, so the composite
// types are unions of the single-bit ones (S_IFSOCK 0140000, S_IFBLK 0060000,
// S_IFLNK 0120000, and the BSD S_IFWHT 0160000).
const (
	MaskSticky          uint32 = 1 << 9
	MaskSetgid          uint32 = 1 << 10
	MaskSetuid          uint32 = 1 << 11
	MaskNamedPipe       uint32 = 1 << 12
	MaskCharacterDevice uint32 = 1 << 13
	MaskDirectory       uint32 = 1 << 14
	MaskRegularFile     uint32 = 1 << 15
	MaskSocket                 = MaskDirectory | MaskRegularFile
	MaskBlockDevice            = MaskCharacterDevice | MaskDirectory
	MaskSymbolicLink           = MaskCharacterDevice | MaskRegularFile
	MaskWhiteout               = MaskCharacterDevice | MaskDirectory | MaskRegularFile
)

var flagMasks = [...]uint32{
	Sticky:          MaskSticky,
	Setgid:          MaskSetgid,
	Setuid:          MaskSetuid,
	NamedPipe:       MaskNamedPipe,
	CharacterDevice: MaskCharacterDevice,
	Directory:       MaskDirectory,
	RegularFile:     MaskRegularFile,
	Socket:          MaskSocket,
	BlockDevice:     MaskBlockDevice,
	SymbolicLink:    MaskSymbolicLink,
	Whiteout:        MaskWhiteout,
}

var flagNames = [...]string{
	Sticky:          "sticky",
	Setgid:          "setgid",
	Setuid:          "setuid",
	NamedPipe:       "namedPipe",
	CharacterDevice: "characterDevice",
	Directory:       "directory",
	RegularFile:     "regularFile",
	Socket:          "socket",
	BlockDevice:     "blockDevice",
	SymbolicLink:    "symbolicLink",
	Whiteout:        "whiteout",
}

// numFlags is the number of defined flags.
const numFlags = len(flagMasks)

// Flags returns every special flag in canonical order.
func Flags() []Flag {
	flags := make([]Flag, numFlags)
	for i := range flags {
		flags[i] = Flag(i)
	}
	return flags
}

// ParseFlag looks a flag up by its name, e.g. "symbolicLink".
func ParseFlag(name string) (Flag, error) {
	for i, n := range flagNames {
		if n == name {
			return Flag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
}

// Valid reports whether f is one of the defined flags.
func (f Flag) Valid() bool {
	return int(f) < numFlags
}

// Mask returns the bits that must all be set for f to be present.
func (f Flag) Mask() uint32 {
	if !f.Valid() {
		return 0
	}
	return flagMasks[f]
}

// Test reports whether every bit of the flag's mask is set in n.
func (f Flag) Test(n uint32) bool {
	m := f.Mask()
	return m != 0 && n&m == m
}

// IsType reports whether f is a file type discriminant rather than a
// permission modifier.
func (f Flag) IsType() bool {
	return f.Valid() && f >= NamedPipe
}

func (f Flag) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Flag(%d)", uint8(f))
	}
	return flagNames[f]
}

// typeChars maps ls type characters to flags. '-' is handled separately and
// sets nothing, which leaves regular files and whiteouts indistinguishable.
var typeChars = map[byte]Flag{
	'l': SymbolicLink,
	'b': BlockDevice,
	's': Socket,
	'd': Directory,
	'c': CharacterDevice,
	'p': NamedPipe,
}

// typeCharOrder is the precedence used when encoding, so that composite types
// win over the single-bit types they contain.
var typeCharOrder = []struct {
	flag Flag
	char byte
}{
	{SymbolicLink, 'l'},
	{BlockDevice, 'b'},
	{Socket, 's'},
	{Directory, 'd'},
	{CharacterDevice, 'c'},
	{NamedPipe, 'p'},
}

// TypeChar returns the ls type character for s, or '-' if none applies.
func (s Special) TypeChar() byte {
	for _, tc := range typeCharOrder {
		if s.Get(tc.flag) {
			return tc.char
		}
	}
	return '-'
}
