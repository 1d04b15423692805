package region

import "github.com/joshuapare/arenakit/internal/format"

// Arena is a bump allocator over a caller-provided buffer. The arena's
// header lives at the start of that buffer; the rest is the managed
// region. Allocation is O(1), monotonic, and never moves previously
// returned handles. Individual blocks cannot be reclaimed - only Reset
// returns memory, all of it at once.
//
// Not goroutine-safe. Wrap in Locked for concurrent use.
type Arena struct {
	s state
}

// InitArena formats buf as a fresh arena region and returns the allocator.
// Fails with ErrBufferSmall when buf cannot hold the header plus its
// alignment padding. The arena never owns buf; the caller keeps it alive
// and reclaims it when done.
func InitArena(b []byte, optFns ...func(*Options)) (*Arena, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	s, err := initState(b, format.ArenaSignature, format.ArenaHeaderSize, opts)
	if err != nil {
		return nil, err
	}
	return &Arena{s: s}, nil
}

// AttachArena reattaches to a buffer previously formatted by InitArena,
// validating the header. The cursor and alignment come from the buffer,
// so an arena survives being copied or mapped at a new address. Only the
// Unchecked option is honored here; geometry always comes from the header.
func AttachArena(b []byte, optFns ...func(*Options)) (*Arena, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	s, err := attachState(b, format.ArenaSignature, format.ArenaHeaderSize, opts)
	if err != nil {
		return nil, err
	}
	return &Arena{s: s}, nil
}

// Alloc reserves n bytes and returns their offset handle, or NilRef when
// fewer than n bytes remain. Alloc(0) returns the handle the next
// allocation would receive without advancing the cursor; such a peek must
// never be freed.
func (a *Arena) Alloc(n int) Ref {
	return a.s.alloc(n)
}

// AllocBytes is Alloc in address mode, returning the payload slice.
func (a *Arena) AllocBytes(n int) []byte {
	return a.s.allocBytes(n)
}

// Free validates r and otherwise has no effect: a bump allocator cannot
// reclaim individual blocks. A handle outside [start, start+used) is a
// double free or a foreign pointer and reports ErrInvalidFree.
func (a *Arena) Free(r Ref) error {
	if a.s.unchecked || r.IsNil() {
		return nil
	}
	if !a.s.containsRef(r) {
		return ErrInvalidFree
	}
	return nil
}

// FreeBytes is Free in address mode.
func (a *Arena) FreeBytes(p []byte) error {
	if a.s.unchecked || len(p) == 0 {
		return nil
	}
	if !a.s.contains(p) {
		return ErrInvalidFree
	}
	return nil
}

// Reset moves the cursor back to the aligned start. Every handle issued
// before the call dangles afterwards; memory is not zeroed or poisoned.
func (a *Arena) Reset() {
	a.s.setUsed(0)
}

// Contains reports whether p lies within the arena's allocated range.
func (a *Arena) Contains(p []byte) bool {
	return a.s.contains(p)
}

// View resolves an offset handle to its n-byte payload, or nil when the
// range falls outside the region.
func (a *Arena) View(r Ref, n int) []byte {
	return r.Bytes(a.s.buf, n)
}

// Base returns the region buffer, header included. Snapshots and handle
// arithmetic operate on this slice.
func (a *Arena) Base() []byte {
	return a.s.buf
}

// Size returns the usable bytes of the managed region.
func (a *Arena) Size() int {
	return a.s.size
}

// Used returns the bytes currently consumed, alignment padding included.
func (a *Arena) Used() int {
	return a.s.used
}

// Available returns the bytes still free for allocation.
func (a *Arena) Available() int {
	return a.s.size - a.s.used
}

// Align returns the allocation alignment boundary of this region.
func (a *Arena) Align() int {
	return a.s.align
}

// Compile-time interface check
var _ Allocator = (*Arena)(nil)
