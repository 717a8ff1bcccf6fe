// Package unixmode converts between Go's io/fs.FileMode and the raw numeric
// mode used by stat(2), which is what the filemode codec consumes.
package unixmode

import "io/fs"

// Raw stat(2) mode bits.
const (
	TypeMask        uint32 = 0o170000 // S_IFMT
	TypeSocket      uint32 = 0o140000 // S_IFSOCK
	TypeSymlink     uint32 = 0o120000 // S_IFLNK
	TypeRegular     uint32 = 0o100000 // S_IFREG
	TypeBlockDevice uint32 = 0o060000 // S_IFBLK
	TypeDirectory   uint32 = 0o040000 // S_IFDIR
	TypeCharDevice  uint32 = 0o020000 // S_IFCHR
	TypeNamedPipe   uint32 = 0o010000 // S_IFIFO

	Setuid uint32 = 0o4000
	Setgid uint32 = 0o2000
	Sticky uint32 = 0o1000

	PermMask uint32 = 0o777
)

// FromFS converts an fs.FileMode to a raw mode. Modes without a type bit are
// reported as regular files.
func FromFS(mode fs.FileMode) uint32 {
	unixMode := uint32(mode.Perm())

	switch {
	case mode&fs.ModeDir != 0:
		unixMode |= TypeDirectory
	case mode&fs.ModeSymlink != 0:
		unixMode |= TypeSymlink
	case mode&fs.ModeCharDevice != 0:
		unixMode |= TypeCharDevice
	case mode&fs.ModeDevice != 0:
		unixMode |= TypeBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		unixMode |= TypeNamedPipe
	case mode&fs.ModeSocket != 0:
		unixMode |= TypeSocket
	case mode&fs.ModeIrregular != 0:
		// no stat equivalent
	default:
		unixMode |= TypeRegular
	}

	if mode&fs.ModeSetuid != 0 {
		unixMode |= Setuid
	}
	if mode&fs.ModeSetgid != 0 {
		unixMode |= Setgid
	}
	if mode&fs.ModeSticky != 0 {
		unixMode |= Sticky
	}
	return unixMode
}

// ToFS converts a raw mode to an fs.FileMode.
func ToFS(unixMode uint32) fs.FileMode {
	mode := fs.FileMode(unixMode & PermMask)

	switch unixMode & TypeMask {
	case TypeDirectory:
		mode |= fs.ModeDir
	case TypeSymlink:
		mode |= fs.ModeSymlink
	case TypeBlockDevice:
		mode |= fs.ModeDevice
	case TypeCharDevice:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case TypeNamedPipe:
		mode |= fs.ModeNamedPipe
	case TypeSocket:
		mode |= fs.ModeSocket
	case TypeRegular, 0:
	default:
		mode |= fs.ModeIrregular
	}

	if unixMode&Setuid != 0 {
		mode |= fs.ModeSetuid
	}
	if unixMode&Setgid != 0 {
		mode |= fs.ModeSetgid
	}
	if unixMode&Sticky != 0 {
		mode |= fs.ModeSticky
	}
	return mode
}
