package region

import (
	"unsafe"

	"github.com/joshuapare/arenakit/internal/buf"
)

// Ref is an offset handle: the byte offset of an allocation from the start
// of its region buffer. Refs are stable across relocation of the buffer,
// which makes them the representation of choice for serialized regions.
//
// Ref 0 is reserved as the nil sentinel. It can never denote a payload
// because the allocator header always occupies offset 0.
type Ref uint64

// NilRef is the "no allocation" sentinel.
const NilRef Ref = 0

// IsNil reports whether r denotes no allocation.
func (r Ref) IsNil() bool {
	return r == NilRef
}

// Rel returns the handle off bytes past r. A nil ref stays nil, so
// relative addressing composes without explicit nil checks.
func (r Ref) Rel(off int) Ref {
	if r.IsNil() {
		return NilRef
	}
	return Ref(uint64(int64(r) + int64(off)))
}

// Bytes resolves r to its n-byte payload within base. Returns nil when r
// is nil or the range falls outside base. The returned slice aliases base.
func (r Ref) Bytes(base []byte, n int) []byte {
	if r.IsNil() {
		return nil
	}
	b, ok := buf.Slice(base, int(r), n)
	if !ok {
		return nil
	}
	return b
}

// RefOf recovers the offset handle of p within base, the inverse of
// Ref.Bytes. Returns NilRef when p is empty or does not point into base.
func RefOf(base, p []byte) Ref {
	if len(base) == 0 || len(p) == 0 {
		return NilRef
	}
	bp := uintptr(unsafe.Pointer(unsafe.SliceData(base)))
	pp := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	if pp < bp || pp-bp >= uintptr(len(base)) {
		return NilRef
	}
	return Ref(pp - bp)
}
