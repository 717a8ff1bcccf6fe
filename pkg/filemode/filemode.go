// Package filemode converts POSIX file modes between three representations:
// the numeric encoding returned by stat(2), the 10-character symbolic string
// printed by ls -l (for example "-rwxr-xr-x"), and the structured FileMode
// record with per-class read/write/execute flags and the special bits.
//
// Decoding is deliberately permissive about file types. Every type flag is
// tested on its own against the input bits, so a mode that sets bits 13-15
// reports whiteout, socket, block device and symbolic link at the same time.
// Encoding ORs the bits of every flag that is set. Values produced by the
// decoders therefore round-trip, while hand-built values with conflicting
// type flags encode to the union of their bits.
//
// All functions are pure and safe for concurrent use.
package filemode

// Triad holds the read, write and execute flags of one subject class.
type Triad struct {
	Read    bool `json:"read" yaml:"read"`
	Write   bool `json:"write" yaml:"write"`
	Execute bool `json:"execute" yaml:"execute"`
}

// String renders the triad as three ls characters, e.g. "r-x".
func (t Triad) String() string {
	b := t.appendRWX(make([]byte, 0, 3))
	return string(b)
}

func (t Triad) appendRWX(b []byte) []byte {
	return append(b, bit(t.Read, 'r'), bit(t.Write, 'w'), bit(t.Execute, 'x'))
}

func bit(set bool, c byte) byte {
	if set {
		return c
	}
	return '-'
}

// Permissions holds the owner, group and other triads.
type Permissions struct {
	User  Triad `json:"user" yaml:"user"`
	Group Triad `json:"group" yaml:"group"`
	Other Triad `json:"other" yaml:"other"`
}

// Class identifies one of the three subject classes.
type Class uint8

// Subject classes, in the order they appear in both encodings.
const (
	User Class = iota
	Group
	Other
)

func (c Class) String() string {
	switch c {
	case User:
		return "user"
	case Group:
		return "group"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Triad returns the triad of class c.
func (p Permissions) Triad(c Class) Triad {
	switch c {
	case Group:
		return p.Group
	case Other:
		return p.Other
	default:
		return p.User
	}
}

func (p Permissions) triads() [3]Triad {
	return [3]Triad{p.User, p.Group, p.Other}
}

// String renders the nine permission characters without the type character
// and without setuid/setgid/sticky substitution.
func (p Permissions) String() string {
	return string(p.appendRWX(make([]byte, 0, 9)))
}

func (p Permissions) appendRWX(b []byte) []byte {
	for _, t := range p.triads() {
		b = t.appendRWX(b)
	}
	return b
}

// Special holds the permission modifiers and file type discriminants.
type Special struct {
	Sticky          bool `json:"sticky" yaml:"sticky"`
	Setgid          bool `json:"setgid" yaml:"setgid"`
	Setuid          bool `json:"setuid" yaml:"setuid"`
	NamedPipe       bool `json:"namedPipe" yaml:"namedPipe"`
	CharacterDevice bool `json:"characterDevice" yaml:"characterDevice"`
	Directory       bool `json:"directory" yaml:"directory"`
	RegularFile     bool `json:"regularFile" yaml:"regularFile"`
	Socket          bool `json:"socket" yaml:"socket"`
	BlockDevice     bool `json:"blockDevice" yaml:"blockDevice"`
	SymbolicLink    bool `json:"symbolicLink" yaml:"symbolicLink"`
	Whiteout        bool `json:"whiteout" yaml:"whiteout"`
}

func (s *Special) field(f Flag) *bool {
	switch f {
	case Sticky:
		return &s.Sticky
	case Setgid:
		return &s.Setgid
	case Setuid:
		return &s.Setuid
	case NamedPipe:
		return &s.NamedPipe
	case CharacterDevice:
		return &s.CharacterDevice
	case Directory:
		return &s.Directory
	case RegularFile:
		return &s.RegularFile
	case Socket:
		return &s.Socket
	case BlockDevice:
		return &s.BlockDevice
	case SymbolicLink:
		return &s.SymbolicLink
	case Whiteout:
		return &s.Whiteout
	default:
		return nil
	}
}

// Get reports whether flag f is set. Unknown flags read as false.
func (s Special) Get(f Flag) bool {
	if p := s.field(f); p != nil {
		return *p
	}
	return false
}

// Set sets flag f to v. Unknown flags are ignored.
func (s *Special) Set(f Flag, v bool) {
	if p := s.field(f); p != nil {
		*p = v
	}
}

// Enabled returns the flags that are true, in canonical order.
func (s Special) Enabled() []Flag {
	var out []Flag
	for _, f := range Flags() {
		if s.Get(f) {
			out = append(out, f)
		}
	}
	return out
}

// FileMode is the structured form of a mode: permissions plus special flags.
// It is a plain value; copy it and modify the copy to derive a new mode.
type FileMode struct {
	Permissions
	Special Special `json:"special" yaml:"special"`
}

// Blank returns the zero mode with every flag false.
func Blank() FileMode {
	return FileMode{
		Permissions: Permissions{
			User:  BlankTriad(),
			Group: BlankTriad(),
			Other: BlankTriad(),
		},
		Special: BlankSpecial(),
	}
}

// BlankTriad returns a triad with every flag false.
func BlankTriad() Triad {
	return Triad{}
}

// BlankSpecial returns a Special with every flag false.
func BlankSpecial() Special {
	return Special{}
}
