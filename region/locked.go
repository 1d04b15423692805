package region

import "sync"

// Locked wraps an allocator with a per-instance mutex. Every operation
// holds the lock for its full duration, so a Locked allocator can be
// shared across goroutines. Locking granularity is the instance: two
// independent Locked regions never contend.
//
// When a Locked totem delegates to a Locked child, two locks are briefly
// held, always outer before inner. That ordering cannot invert as long as
// the child graph has no cycles.
type Locked struct {
	mu    sync.Mutex
	inner Allocator
}

// NewLocked wraps a in a per-instance mutex.
func NewLocked(a Allocator) *Locked {
	return &Locked{inner: a}
}

// Unwrap returns the guarded allocator. Callers touching it directly are
// on their own for synchronization.
func (l *Locked) Unwrap() Allocator {
	return l.inner
}

// Alloc reserves n bytes under the instance lock.
func (l *Locked) Alloc(n int) Ref {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Alloc(n)
}

// AllocBytes is Alloc in address mode.
func (l *Locked) AllocBytes(n int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.AllocBytes(n)
}

// Free releases an offset handle under the instance lock.
func (l *Locked) Free(r Ref) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Free(r)
}

// FreeBytes is Free in address mode.
func (l *Locked) FreeBytes(p []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.FreeBytes(p)
}

// Reset empties the allocator under the instance lock.
func (l *Locked) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Reset()
}

// Contains reports containment under the instance lock.
func (l *Locked) Contains(p []byte) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Contains(p)
}

// Compile-time interface check
var _ Allocator = (*Locked)(nil)

// LockedTotem is Locked specialized for Totem so the stacking operations
// are guarded too.
type LockedTotem struct {
	mu    sync.Mutex
	inner *Totem
}

// NewLockedTotem wraps t in a per-instance mutex.
func NewLockedTotem(t *Totem) *LockedTotem {
	return &LockedTotem{inner: t}
}

// Unwrap returns the guarded totem.
func (l *LockedTotem) Unwrap() *Totem {
	return l.inner
}

// Push appends a child under the instance lock.
func (l *LockedTotem) Push(a Allocator) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Push(a)
}

// Pop removes a child under the instance lock.
func (l *LockedTotem) Pop(index int) (Allocator, Kind, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Pop(index)
}

// Alloc delegates under the instance lock.
func (l *LockedTotem) Alloc(n int) Ref {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Alloc(n)
}

// AllocBytes is Alloc in address mode.
func (l *LockedTotem) AllocBytes(n int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.AllocBytes(n)
}

// Free rejects offset handles, matching Totem.Free.
func (l *LockedTotem) Free(r Ref) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Free(r)
}

// FreeBytes routes a free under the instance lock.
func (l *LockedTotem) FreeBytes(p []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.FreeBytes(p)
}

// Reset resets every child under the instance lock.
func (l *LockedTotem) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Reset()
}

// Contains reports containment under the instance lock.
func (l *LockedTotem) Contains(p []byte) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Contains(p)
}

// Len returns the child count under the instance lock.
func (l *LockedTotem) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Len()
}

// Cap returns the fixed slot count.
func (l *LockedTotem) Cap() int {
	return l.inner.Cap()
}

// Compile-time interface check
var _ Allocator = (*LockedTotem)(nil)
