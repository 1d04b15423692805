// Package snap saves and loads compressed snapshots of region buffers.
//
// A snapshot is a small uncompressed header followed by a zstd stream of
// the whole region, header included. Because arena and surge state lives
// entirely inside the region buffer and handles are base-relative
// offsets, a loaded snapshot reattaches with region.AttachArena or
// region.AttachSurge and every Ref taken before the save still resolves.
package snap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/arenakit/internal/buf"
	"github.com/joshuapare/arenakit/internal/format"
)

// Snapshot header layout (little-endian):
//
//	0x00  4  magic "rsnp"
//	0x04  2  snapshot version
//	0x06  2  reserved, zero
//	0x08  8  uncompressed region length
const (
	headerSize    = 0x10
	magicOffset   = 0x00
	versionOffset = 0x04
	lengthOffset  = 0x08

	version = 1

	// maxRegionBytes bounds the declared region length so a corrupt
	// header cannot drive a huge allocation.
	maxRegionBytes = 1 << 36
)

var magic = []byte{'r', 's', 'n', 'p'}

var (
	// ErrNotRegion indicates a buffer that does not start with a known
	// region signature.
	ErrNotRegion = errors.New("snap: buffer is not a region")

	// ErrBadMagic indicates a stream that is not a region snapshot.
	ErrBadMagic = errors.New("snap: bad snapshot magic")

	// ErrBadVersion indicates an unsupported snapshot version.
	ErrBadVersion = errors.New("snap: unsupported snapshot version")

	// ErrBadLength indicates a declared region length that is zero or
	// implausibly large.
	ErrBadLength = errors.New("snap: bad region length")
)

func isRegion(b []byte) bool {
	if !buf.Has(b, 0, format.SignatureSize) {
		return false
	}
	sig := b[:format.SignatureSize]
	return string(sig) == string(format.ArenaSignature) ||
		string(sig) == string(format.SurgeSignature)
}

// Save writes a compressed snapshot of the region buffer to w. The buffer
// must begin with a valid region signature.
func Save(w io.Writer, region []byte) error {
	if !isRegion(region) {
		return ErrNotRegion
	}

	var hdr [headerSize]byte
	copy(hdr[magicOffset:], magic)
	format.PutU16(hdr[:], versionOffset, version)
	format.PutU64(hdr[:], lengthOffset, uint64(len(region)))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("snap: write header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("snap: create compressor: %w", err)
	}
	if _, err := enc.Write(region); err != nil {
		enc.Close()
		return fmt.Errorf("snap: compress region: %w", err)
	}
	return enc.Close()
}

// Load reads a snapshot from r and returns the reconstructed region
// buffer, verifying the snapshot header and the region signature.
func Load(r io.Reader) ([]byte, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("snap: read header: %w", err)
	}
	if string(hdr[magicOffset:magicOffset+len(magic)]) != string(magic) {
		return nil, ErrBadMagic
	}
	if format.ReadU16(hdr[:], versionOffset) != version {
		return nil, ErrBadVersion
	}
	length := format.ReadU64(hdr[:], lengthOffset)
	if length == 0 || length > maxRegionBytes {
		return nil, ErrBadLength
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snap: create decompressor: %w", err)
	}
	defer dec.Close()

	region := make([]byte, length)
	if _, err := io.ReadFull(dec, region); err != nil {
		return nil, fmt.Errorf("snap: decompress region: %w", err)
	}
	if !isRegion(region) {
		return nil, ErrNotRegion
	}
	return region, nil
}

// SaveFile writes a snapshot of the region buffer to path.
func SaveFile(path string, region []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, region); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
