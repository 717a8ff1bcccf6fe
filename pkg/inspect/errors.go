package inspect

import "fmt"

var (
	// ErrArchiveOpen is returned when the archive cannot be opened or identified.
	ErrArchiveOpen = fmt.Errorf("failed to open archive")

	// ErrArchiveWalk is returned when walking the archive contents fails.
	ErrArchiveWalk = fmt.Errorf("failed to read archive entries")
)
