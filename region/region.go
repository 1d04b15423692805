package region

import (
	"bytes"

	"github.com/joshuapare/arenakit/internal/buf"
	"github.com/joshuapare/arenakit/internal/format"
)

// Allocator is the capability shared by every region allocator.
//
// Implementations:
//   - Arena: bump allocation, bulk reset only
//   - Surge: counted allocation with drain-triggered reset
//   - Totem: LIFO delegation over child allocators
//   - Locked / LockedTotem: mutex-guarded wrappers of the above
type Allocator interface {
	// Alloc reserves n bytes and returns an offset handle, or NilRef when
	// the allocator cannot satisfy the request. Alloc(0) peeks the handle
	// the next allocation would receive without reserving anything.
	Alloc(n int) Ref

	// AllocBytes is Alloc in address mode: it returns the payload slice
	// directly, or nil when the request cannot be satisfied.
	AllocBytes(n int) []byte

	// Free releases the allocation behind an offset handle. Bump-style
	// allocators cannot reclaim individual blocks, so Free validates the
	// handle and otherwise has no effect.
	Free(r Ref) error

	// FreeBytes is Free in address mode.
	FreeBytes(p []byte) error

	// Reset returns the allocator to its empty state. Handles issued
	// before the call dangle afterwards; memory is not zeroed.
	Reset()

	// Contains reports whether p lies within this allocator's
	// currently-allocated range.
	Contains(p []byte) bool
}

// state is the allocator core shared by Arena and Surge: a view over the
// caller's buffer plus the header fields mirrored into Go ints. Every
// mutation is written through to the on-buffer header so the buffer alone
// carries the full allocator state.
type state struct {
	buf       []byte
	align     int
	dataStart int // first managed byte, aligned past the header
	size      int // usable bytes
	used      int // cursor, relative to dataStart
	unchecked bool
}

func initState(b, sig []byte, headerSize int, opts Options) (state, error) {
	dataStart := format.AlignUp(headerSize, opts.Align)
	if len(b) < dataStart {
		return state{}, ErrBufferSmall
	}

	copy(b[format.SignatureOffset:], sig)
	format.PutU16(b, format.VersionOffset, format.Version)
	format.PutU16(b, format.AlignOffset, uint16(opts.Align))
	format.PutU64(b, format.SizeOffset, uint64(len(b)-dataStart))
	format.PutU64(b, format.UsedOffset, 0)

	return state{
		buf:       b,
		align:     opts.Align,
		dataStart: dataStart,
		size:      len(b) - dataStart,
		unchecked: opts.Unchecked,
	}, nil
}

// attachState validates the header of an existing region and rebuilds the
// in-process view. The Align option is ignored here: the header is the
// authority on region geometry.
func attachState(b, sig []byte, headerSize int, opts Options) (state, error) {
	if !buf.Has(b, 0, headerSize) {
		return state{}, ErrBufferSmall
	}
	if !bytes.Equal(b[format.SignatureOffset:format.SignatureOffset+format.SignatureSize], sig) {
		return state{}, ErrBadSignature
	}
	if format.ReadU16(b, format.VersionOffset) != format.Version {
		return state{}, ErrBadVersion
	}

	align := int(format.ReadU16(b, format.AlignOffset))
	if !format.IsPow2(align) || align > format.MaxAlign {
		return state{}, ErrBadHeader
	}
	dataStart := format.AlignUp(headerSize, align)
	if len(b) < dataStart {
		return state{}, ErrBufferSmall
	}
	size := format.ReadU64(b, format.SizeOffset)
	used := format.ReadU64(b, format.UsedOffset)
	if size != uint64(len(b)-dataStart) || used > size {
		return state{}, ErrBadHeader
	}

	return state{
		buf:       b,
		align:     align,
		dataStart: dataStart,
		size:      int(size),
		used:      int(used),
		unchecked: opts.Unchecked,
	}, nil
}

func (s *state) setUsed(n int) {
	s.used = n
	format.PutU64(s.buf, format.UsedOffset, uint64(n))
}

// alloc advances the bump cursor. The cursor only ever moves forward here;
// the rounded-up advance is clamped so used never exceeds size.
func (s *state) alloc(n int) Ref {
	if n == 0 {
		return Ref(uint64(s.dataStart + s.used))
	}
	if n < 0 || s.size-s.used < n {
		return NilRef
	}
	r := Ref(uint64(s.dataStart + s.used))
	next := format.AlignUp(s.used+n, s.align)
	if next > s.size {
		next = s.size
	}
	s.setUsed(next)
	return r
}

// allocBytes resolves a fresh allocation to its payload slice. The result
// is capacity-capped so appends cannot spill into later allocations.
func (s *state) allocBytes(n int) []byte {
	r := s.alloc(n)
	if r.IsNil() {
		return nil
	}
	off := int(r)
	if n == 0 {
		return s.buf[off:off]
	}
	return s.buf[off : off+n : off+n]
}

func (s *state) containsRef(r Ref) bool {
	off := int(r)
	return off >= s.dataStart && off < s.dataStart+s.used
}

func (s *state) contains(p []byte) bool {
	r := RefOf(s.buf, p)
	return !r.IsNil() && s.containsRef(r)
}
