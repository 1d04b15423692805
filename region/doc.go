// Package region provides a family of allocators that manage a
// caller-supplied, fixed-size block of memory instead of the general heap.
//
// # Overview
//
// Three allocators share one capability interface:
//
//   - Arena: a bump allocator. Hands out successive slices of the buffer
//     by advancing a single cursor; individual blocks cannot be reclaimed,
//     only the whole region via Reset.
//   - Surge: an Arena that counts live allocations and automatically
//     resets its cursor when the count drains back to zero.
//   - Totem: an aggregator that stacks heterogeneous child allocators and
//     services requests in LIFO order, most-recently-pushed child first.
//
// Allocators never allocate or free their backing memory. The caller
// supplies a buffer once at initialization and must keep it alive for as
// long as the allocator is in use.
//
// # On-buffer headers
//
// Arena and Surge store their state (signature, alignment, size, cursor,
// live count) little-endian at the very start of the managed buffer. The
// remaining bytes form the managed region. Because no state lives outside
// the buffer, a region can be copied byte-for-byte, written to a file, or
// mapped at a different address and reattached with AttachArena or
// AttachSurge without losing allocator state.
//
// # Handles
//
// Allocations are represented two ways, uniformly across all allocators:
//
//   - Offset mode: Alloc returns a Ref, an offset from the start of the
//     region buffer. Refs survive relocation of the buffer and are the
//     representation to use when a region is serialized. Ref 0 is the nil
//     sentinel; it can never be a valid payload offset because the header
//     occupies the first bytes of every region.
//   - Address mode: AllocBytes returns a []byte aliasing the buffer
//     directly.
//
// Converting between the two, given the region buffer, is a pure function:
// Ref.Bytes resolves an offset to memory and RefOf recovers the offset of
// a slice. A Ref carries no type or allocator identity; the caller must
// know which region produced it.
//
// # Failure model
//
// Capacity failures (buffer too small, region exhausted, totem full)
// return the nil handle or a sentinel error and leave allocator state
// unchanged. Invalid and double frees are diagnostics: the free becomes a
// no-op and a sentinel error (ErrInvalidFree, ErrDoubleFree) reports the
// condition; callers that favor raw speed over diagnostics can disable
// the checks with Options.Unchecked.
//
// # Thread safety
//
// Allocators are not goroutine-safe by default. Wrap an allocator in
// Locked (or a Totem in LockedTotem) to serialize all operations behind a
// per-instance mutex. Locking is per instance: two independent regions
// never contend. A locked Totem holding locked children briefly acquires
// two locks, always outer first, so lock order cannot invert as long as
// the child graph is acyclic - cycles are a caller obligation the package
// does not police.
package region
