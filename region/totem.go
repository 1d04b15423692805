package region

// Totem aggregates heterogeneous child allocators and services requests
// in LIFO order: the most-recently-pushed child is tried first. Children
// keep their own backing buffers; the totem records only a reference and
// a kind tag, and owns nothing.
//
// A totem must never be reachable from itself through its own child
// chain. Cycles are not detected; breaking this rule is caller error and
// undefined behavior.
//
// Not goroutine-safe. Wrap in LockedTotem for concurrent use.
type Totem struct {
	entries []child
	head    int // index of the most recent child, -1 when empty
}

type child struct {
	alloc Allocator
	kind  Kind
}

// NewTotem creates a totem with a fixed number of child slots.
func NewTotem(capacity int) (*Totem, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	return &Totem{
		entries: make([]child, capacity),
		head:    -1,
	}, nil
}

// Push appends a child allocator on top of the stack. The kind tag is
// derived from the concrete type. Fails with ErrTotemFull when all slots
// are taken, leaving the totem unchanged.
func (t *Totem) Push(a Allocator) error {
	if t.head+1 == len(t.entries) {
		return ErrTotemFull
	}
	t.head++
	t.entries[t.head] = child{alloc: a, kind: KindOf(a)}
	return nil
}

// Pop removes and returns the child at index along with its kind tag.
// Negative indexes count from the top: Pop(-1) removes the most recent
// child. Later entries shift down so the table stays dense.
func (t *Totem) Pop(index int) (Allocator, Kind, error) {
	if index < 0 {
		index = t.head + index + 1
	}
	if index < 0 || index > t.head {
		return nil, KindUnknown, ErrBadIndex
	}
	e := t.entries[index]
	copy(t.entries[index:t.head], t.entries[index+1:t.head+1])
	t.entries[t.head] = child{}
	t.head--
	return e.alloc, e.kind, nil
}

// Alloc delegates to children from the top of the stack down and returns
// the first handle obtained. The scan stops outright when a tried child
// comes back empty - it does not cascade to earlier children. Callers
// that need more room push a fresh child and retry.
func (t *Totem) Alloc(n int) Ref {
	for i := t.head; i >= 0; i-- {
		r := t.entries[i].alloc.Alloc(n)
		if !r.IsNil() {
			return r
		}
		break
	}
	return NilRef
}

// AllocBytes is Alloc in address mode. Prefer it when allocating through
// a totem: the returned slice identifies its own memory, whereas a Ref is
// relative to whichever child produced it.
func (t *Totem) AllocBytes(n int) []byte {
	for i := t.head; i >= 0; i-- {
		p := t.entries[i].alloc.AllocBytes(n)
		if p != nil {
			return p
		}
		break
	}
	return nil
}

// Free cannot route an offset handle: containment tests need a concrete
// address, and a Ref is meaningless without knowing which child issued
// it. Resolve the handle against its region and use FreeBytes.
func (t *Totem) Free(_ Ref) error {
	return ErrOffsetFree
}

// FreeBytes finds the child whose allocated range contains p, newest
// first and recursing into nested totems, and forwards the free there.
// Reports ErrInvalidFree when no child claims the pointer.
func (t *Totem) FreeBytes(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	for i := t.head; i >= 0; i-- {
		if t.entries[i].alloc.Contains(p) {
			return t.entries[i].alloc.FreeBytes(p)
		}
	}
	return ErrInvalidFree
}

// Reset resets every child, newest first, recursing into nested totems.
func (t *Totem) Reset() {
	for i := t.head; i >= 0; i-- {
		t.entries[i].alloc.Reset()
	}
}

// Contains reports whether any descendant allocator contains p.
func (t *Totem) Contains(p []byte) bool {
	for i := t.head; i >= 0; i-- {
		if t.entries[i].alloc.Contains(p) {
			return true
		}
	}
	return false
}

// Len returns the number of children currently stacked.
func (t *Totem) Len() int {
	return t.head + 1
}

// Cap returns the fixed number of child slots.
func (t *Totem) Cap() int {
	return len(t.entries)
}

// Compile-time interface check
var _ Allocator = (*Totem)(nil)
