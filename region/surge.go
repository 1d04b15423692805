package region

import "github.com/joshuapare/arenakit/internal/format"

// Surge is an Arena that tracks the number of live allocations. Freeing
// the last outstanding allocation snaps the cursor back to the start, so
// steady-state producer/consumer code never needs to call Reset. The
// count is persisted in the region header next to the cursor.
//
// Invariant: count == 0 implies the cursor is at the aligned start.
//
// Not goroutine-safe. Wrap in Locked for concurrent use.
type Surge struct {
	s     state
	count int
}

// InitSurge formats buf as a fresh surge region.
func InitSurge(b []byte, optFns ...func(*Options)) (*Surge, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	s, err := initState(b, format.SurgeSignature, format.SurgeHeaderSize, opts)
	if err != nil {
		return nil, err
	}
	format.PutU64(b, format.CountOffset, 0)
	return &Surge{s: s}, nil
}

// AttachSurge reattaches to a buffer previously formatted by InitSurge.
// Cursor, count, and alignment come from the header.
func AttachSurge(b []byte, optFns ...func(*Options)) (*Surge, error) {
	opts, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}
	s, err := attachState(b, format.SurgeSignature, format.SurgeHeaderSize, opts)
	if err != nil {
		return nil, err
	}
	count := format.ReadU64(b, format.CountOffset)
	if count > uint64(s.size) {
		return nil, ErrBadHeader
	}
	if count == 0 && s.used != 0 {
		return nil, ErrBadHeader
	}
	return &Surge{s: s, count: int(count)}, nil
}

// Alloc reserves n bytes and increments the live count. Zero-size peeks
// do not count as live allocations and must never be freed - freeing one
// would desynchronize the counter.
func (sg *Surge) Alloc(n int) Ref {
	r := sg.s.alloc(n)
	if n > 0 && !r.IsNil() {
		sg.setCount(sg.count + 1)
	}
	return r
}

// AllocBytes is Alloc in address mode.
func (sg *Surge) AllocBytes(n int) []byte {
	r := sg.Alloc(n)
	if r.IsNil() {
		return nil
	}
	off := int(r)
	if n == 0 {
		return sg.s.buf[off:off]
	}
	return sg.s.buf[off : off+n : off+n]
}

// Free validates r, decrements the live count, and resets the cursor when
// the count drains to zero. Freeing with no allocations outstanding is a
// double free and reports ErrDoubleFree.
func (sg *Surge) Free(r Ref) error {
	if r.IsNil() {
		return nil
	}
	if !sg.s.unchecked {
		if !sg.s.containsRef(r) {
			return ErrInvalidFree
		}
		if sg.count == 0 {
			return ErrDoubleFree
		}
	}
	sg.drainOne()
	return nil
}

// FreeBytes is Free in address mode.
func (sg *Surge) FreeBytes(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if !sg.s.unchecked {
		if !sg.s.contains(p) {
			return ErrInvalidFree
		}
		if sg.count == 0 {
			return ErrDoubleFree
		}
	}
	sg.drainOne()
	return nil
}

func (sg *Surge) drainOne() {
	if sg.count == 1 {
		sg.s.setUsed(0)
	}
	if sg.count > 0 {
		sg.setCount(sg.count - 1)
	}
}

// Reset unconditionally moves the cursor to the start and zeroes the live
// count, bypassing the drain logic. Use it for forced bulk reclaim while
// allocations are still outstanding.
func (sg *Surge) Reset() {
	sg.s.setUsed(0)
	sg.setCount(0)
}

// Contains reports whether p lies within the surge's allocated range.
func (sg *Surge) Contains(p []byte) bool {
	return sg.s.contains(p)
}

// View resolves an offset handle to its n-byte payload.
func (sg *Surge) View(r Ref, n int) []byte {
	return r.Bytes(sg.s.buf, n)
}

// Base returns the region buffer, header included.
func (sg *Surge) Base() []byte {
	return sg.s.buf
}

// Size returns the usable bytes of the managed region.
func (sg *Surge) Size() int {
	return sg.s.size
}

// Used returns the bytes currently consumed.
func (sg *Surge) Used() int {
	return sg.s.used
}

// Available returns the bytes still free for allocation.
func (sg *Surge) Available() int {
	return sg.s.size - sg.s.used
}

// Align returns the allocation alignment boundary of this region.
func (sg *Surge) Align() int {
	return sg.s.align
}

// Count returns the number of live allocations.
func (sg *Surge) Count() int {
	return sg.count
}

func (sg *Surge) setCount(n int) {
	sg.count = n
	format.PutU64(sg.s.buf, format.CountOffset, uint64(n))
}

// Compile-time interface check
var _ Allocator = (*Surge)(nil)
