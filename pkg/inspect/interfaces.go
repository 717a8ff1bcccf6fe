//go:generate mockgen -destination=./mocks/inspect.go . Inspector
package inspect

import (
	"context"

	"github.com/cperrin88/chmodcalc/pkg/filemode"
)

// Inspector lists the entries of an archive together with their decoded modes.
type Inspector interface {
	// Entries returns every entry of the archive at archivePath in walk order.
	Entries(ctx context.Context, archivePath string) ([]Entry, error)
}

// Entry is one archive member.
type Entry struct {
	Path       string            `json:"path" yaml:"path"`
	Size       int64             `json:"size" yaml:"size"`
	Mode       filemode.FileMode `json:"mode" yaml:"mode"`
	LinkTarget string            `json:"link_target,omitempty" yaml:"link_target,omitempty"`
}
