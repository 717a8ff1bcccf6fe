package filemode

// permBit returns the bit index of permission perm (0=read, 1=write,
// 2=execute) for class c.
func permBit(c Class, perm int) uint {
	return uint(8 - 3*int(c) - perm)
}

func testBit(n uint32, i uint) bool {
	return n&(1<<i) != 0
}

// ParseNumber decodes a numeric mode as returned by stat(2). Values below 0 or
// above 2^32 fail with a *RangeError.
//
// Every special flag is tested independently, so overlapping type bits can
// yield several true type flags.
func ParseNumber(n int64) (FileMode, error) {
	if n < 0 || n > MaxMode {
		return FileMode{}, &RangeError{Value: n, Max: MaxMode}
	}
	return FromUint32(uint32(n)), nil
}

// FromUint32 decodes a numeric mode. It cannot fail since every uint32 is in
// range.
func FromUint32(n uint32) FileMode {
	result := Blank()
	for _, f := range Flags() {
		result.Special.Set(f, f.Test(n))
	}
	result.User = triadAt(n, User)
	result.Group = triadAt(n, Group)
	result.Other = triadAt(n, Other)
	return result
}

func triadAt(n uint32, c Class) Triad {
	return Triad{
		Read:    testBit(n, permBit(c, 0)),
		Write:   testBit(n, permBit(c, 1)),
		Execute: testBit(n, permBit(c, 2)),
	}
}

// Decimal encodes the mode as a number. Every true special flag contributes
// its full mask, so a hand-built mode with several type flags encodes to the
// union of their bits.
func (f FileMode) Decimal() uint32 {
	var n uint32
	for _, flag := range Flags() {
		if f.Special.Get(flag) {
			n |= flag.Mask()
		}
	}
	for i, t := range f.triads() {
		c := Class(i)
		for perm, set := range [3]bool{t.Read, t.Write, t.Execute} {
			if set {
				n |= 1 << permBit(c, perm)
			}
		}
	}
	return n
}

// ToDecimal is the function form of FileMode.Decimal.
func ToDecimal(f FileMode) uint32 {
	return f.Decimal()
}
