// Package regionfile stores allocator regions in files. A region file is
// mapped read-write, so the allocator header and every allocation are
// persisted in place; together with offset handles this lets an arena
// outlive the process that filled it.
//
// Typical round trip:
//
//	f, err := regionfile.Create(path, 1<<20)
//	a, err := region.InitArena(f.Bytes())
//	r := a.Alloc(64)
//	f.Sync()
//	f.Close()
//
//	f, err = regionfile.Open(path)
//	a, err = region.AttachArena(f.Bytes())
//	payload := a.View(r, 64)
package regionfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/arenakit/internal/mmfile"
)

// ErrBadSize indicates a non-positive region file size.
var ErrBadSize = errors.New("regionfile: size must be positive")

// File is a mapped region file.
type File struct {
	path    string
	data    []byte
	cleanup func() error
}

// Create makes a zero-filled region file of exactly size bytes and maps
// it. Fails if the file already exists.
func Create(path string, size int64) (*File, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("regionfile: truncate: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return Open(path)
}

// Open maps an existing region file read-write.
func Open(path string) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	return &File{path: path, data: data, cleanup: cleanup}, nil
}

// Bytes returns the mapped region buffer. The slice is valid until Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Sync flushes the region to disk.
func (f *File) Sync() error {
	return mmfile.Sync(f.path, f.data)
}

// Close unmaps the region. Handles resolved against the buffer dangle
// afterwards; offset handles stay valid for the next Open.
func (f *File) Close() error {
	err := f.cleanup()
	f.data = nil
	return err
}
