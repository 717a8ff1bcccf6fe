// Package inspect reads the entries of an archive and decodes their modes
// with the filemode codec.
package inspect

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/cperrin88/chmodcalc/internal/logger"
	"github.com/cperrin88/chmodcalc/pkg/filemode"
	"github.com/cperrin88/chmodcalc/pkg/unixmode"
	"github.com/mholt/archives"
)

// Manager implements Inspector on top of mholt/archives. Any format that
// archives can identify (tar, zip, 7z, compressed tarballs, ...) is accepted.
type Manager struct{}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// Entries lists the archive members at archivePath. The context is checked
// between entries so long listings can be interrupted.
func (m *Manager) Entries(ctx context.Context, archivePath string) ([]Entry, error) {
	fsys, err := archives.FileSystem(ctx, archivePath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrArchiveOpen, archivePath, err)
	}
	if closer, ok := fsys.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	var entries []Entry
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == "." {
			return nil
		}

		entry, err := m.entry(path, d)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	}

	if err := fs.WalkDir(fsys, ".", walkFn); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrArchiveWalk, archivePath, err)
	}

	logger.Debug("Inspected archive", logger.Fields{"archive": archivePath, "entries": len(entries)})
	return entries, nil
}

func (m *Manager) entry(path string, d fs.DirEntry) (Entry, error) {
	info, err := d.Info()
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get file info for %s: %w", path, err)
	}

	entry := Entry{
		Path: path,
		Size: info.Size(),
		Mode: filemode.FromUint32(unixmode.FromFS(info.Mode())),
	}
	if archived, ok := info.(archives.FileInfo); ok {
		entry.LinkTarget = archived.LinkTarget
	}
	return entry, nil
}
