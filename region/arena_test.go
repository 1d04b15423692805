package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/internal/format"
)

// TestInitArena_Geometry tests header placement and usable size.
func TestInitArena_Geometry(t *testing.T) {
	b := make([]byte, 256)

	a, err := InitArena(b)
	require.NoError(t, err, "InitArena should succeed")

	assert.Equal(t, 0, a.Used(), "fresh arena should have nothing consumed")
	assert.Equal(t, 256-format.ArenaHeaderSize, a.Size(), "usable size should be buffer minus header")
	assert.Equal(t, a.Size(), a.Available())

	// Header fields land in the buffer itself.
	assert.Equal(t, format.ArenaSignature, b[:format.SignatureSize])
	assert.Equal(t, uint64(a.Size()), format.ReadU64(b, format.SizeOffset))
	assert.Equal(t, uint64(0), format.ReadU64(b, format.UsedOffset))
}

// TestInitArena_BufferTooSmall tests the capacity failure on init.
func TestInitArena_BufferTooSmall(t *testing.T) {
	b := make([]byte, format.ArenaHeaderSize-1)

	_, err := InitArena(b)
	require.ErrorIs(t, err, ErrBufferSmall)
}

// TestInitArena_BadAlign rejects non-power-of-two alignments.
func TestInitArena_BadAlign(t *testing.T) {
	b := make([]byte, 256)

	_, err := InitArena(b, func(o *Options) { o.Align = 12 })
	require.ErrorIs(t, err, ErrBadAlign)
}

// TestArena_AllocMonotonic tests that handles increase and never overlap.
func TestArena_AllocMonotonic(t *testing.T) {
	b := make([]byte, 1024)
	a, err := InitArena(b)
	require.NoError(t, err)

	var refs []Ref
	var sizes []int
	for i := 0; i < 10; i++ {
		n := 8 + i*4 // 8, 12, 16, ... exercises alignment rounding
		r := a.Alloc(n)
		require.False(t, r.IsNil(), "Alloc %d should succeed", i)
		refs = append(refs, r)
		sizes = append(sizes, n)
	}

	for i := 1; i < len(refs); i++ {
		assert.Greater(t, refs[i], refs[i-1], "refs should be monotonically increasing")
		assert.GreaterOrEqual(t, int(refs[i]), int(refs[i-1])+sizes[i-1],
			"allocation %d must not overlap its predecessor", i)
	}
}

// TestArena_Alignment tests that every handle honors the boundary.
func TestArena_Alignment(t *testing.T) {
	b := make([]byte, 1024)
	a, err := InitArena(b)
	require.NoError(t, err)

	for _, n := range []int{1, 5, 7, 9, 13, 17, 25} {
		r := a.Alloc(n)
		require.False(t, r.IsNil(), "Alloc(%d) should succeed", n)
		assert.Equal(t, 0, int(r)%format.DefaultAlign, "handle for size %d should be aligned", n)
	}
}

// TestArena_CustomAlign tests a 16-byte boundary.
func TestArena_CustomAlign(t *testing.T) {
	b := make([]byte, 1024)
	a, err := InitArena(b, func(o *Options) { o.Align = 16 })
	require.NoError(t, err)
	assert.Equal(t, 16, a.Align())

	for j := 0; j < 5; j++ {
		r := a.Alloc(10)
		require.False(t, r.IsNil())
		assert.Equal(t, 0, int(r)%16)
	}
}

// TestArena_ExhaustionIsIdempotent tests that an oversized request fails
// cleanly and leaves the cursor untouched.
func TestArena_ExhaustionIsIdempotent(t *testing.T) {
	b := make([]byte, 128)
	a, err := InitArena(b)
	require.NoError(t, err)

	r := a.Alloc(64)
	require.False(t, r.IsNil())
	used := a.Used()

	// More than remains.
	require.True(t, a.Alloc(a.Available()+1).IsNil())
	assert.Equal(t, used, a.Used(), "failed alloc must not move the cursor")

	// Same request again: same result, same state.
	require.True(t, a.Alloc(a.Available()+1).IsNil())
	assert.Equal(t, used, a.Used())
}

// TestArena_ZeroSizePeek tests that Alloc(0) previews the next handle
// without consuming anything.
func TestArena_ZeroSizePeek(t *testing.T) {
	b := make([]byte, 256)
	a, err := InitArena(b)
	require.NoError(t, err)

	peek := a.Alloc(0)
	require.False(t, peek.IsNil())
	assert.Equal(t, 0, a.Used(), "peek must not advance the cursor")

	r := a.Alloc(8)
	assert.Equal(t, peek, r, "peek should equal the next real allocation")
}

// TestArena_FreeValidation tests the diagnostic-only free contract.
func TestArena_FreeValidation(t *testing.T) {
	b := make([]byte, 256)
	a, err := InitArena(b)
	require.NoError(t, err)

	r := a.Alloc(16)
	require.False(t, r.IsNil())

	assert.NoError(t, a.Free(r), "in-range free is a silent no-op")
	assert.NoError(t, a.Free(NilRef), "nil free is a no-op")

	assert.ErrorIs(t, a.Free(Ref(4)), ErrInvalidFree, "handle into the header is foreign")
	assert.ErrorIs(t, a.Free(Ref(1<<20)), ErrInvalidFree, "handle past the region is foreign")

	// Address mode mirrors the same checks.
	p := a.AllocBytes(16)
	require.NotNil(t, p)
	assert.NoError(t, a.FreeBytes(p))
	foreign := make([]byte, 16)
	assert.ErrorIs(t, a.FreeBytes(foreign), ErrInvalidFree)
}

// TestArena_Unchecked tests that unsafe mode drops the diagnostics.
func TestArena_Unchecked(t *testing.T) {
	b := make([]byte, 256)
	a, err := InitArena(b, func(o *Options) { o.Unchecked = true })
	require.NoError(t, err)

	assert.NoError(t, a.Free(Ref(1<<20)))
	assert.NoError(t, a.FreeBytes(make([]byte, 8)))
}

// TestArena_ResetIdempotent tests that a second reset changes nothing.
func TestArena_ResetIdempotent(t *testing.T) {
	b := make([]byte, 256)
	a, err := InitArena(b)
	require.NoError(t, err)

	require.False(t, a.Alloc(32).IsNil())
	require.NotZero(t, a.Used())

	a.Reset()
	assert.Equal(t, 0, a.Used())
	a.Reset()
	assert.Equal(t, 0, a.Used())
}

// TestArena_AllocBytesCapped tests that payload slices cannot spill into
// later allocations via append.
func TestArena_AllocBytesCapped(t *testing.T) {
	b := make([]byte, 256)
	a, err := InitArena(b)
	require.NoError(t, err)

	p := a.AllocBytes(16)
	require.NotNil(t, p)
	assert.Len(t, p, 16)
	assert.Equal(t, 16, cap(p))
}

// TestArena_AttachSurvivesRelocation tests the offset-mode serialization
// story: copy the buffer, reattach, and old handles still resolve.
func TestArena_AttachSurvivesRelocation(t *testing.T) {
	b := make([]byte, 512)
	a, err := InitArena(b)
	require.NoError(t, err)

	r := a.Alloc(8)
	require.False(t, r.IsNil())
	copy(a.View(r, 8), "payload!")
	used := a.Used()

	// Relocate the whole region byte-for-byte.
	moved := make([]byte, len(b))
	copy(moved, b)

	a2, err := AttachArena(moved)
	require.NoError(t, err, "AttachArena should accept a relocated region")
	assert.Equal(t, used, a2.Used(), "cursor must survive relocation")
	assert.Equal(t, "payload!", string(a2.View(r, 8)), "handles must survive relocation")
}

// TestAttachArena_RejectsCorruptHeaders tests header validation.
func TestAttachArena_RejectsCorruptHeaders(t *testing.T) {
	fresh := func() []byte {
		b := make([]byte, 256)
		_, err := InitArena(b)
		require.NoError(t, err)
		return b
	}

	_, err := AttachArena(make([]byte, 4))
	assert.ErrorIs(t, err, ErrBufferSmall)

	b := fresh()
	b[0] = 'x'
	_, err = AttachArena(b)
	assert.ErrorIs(t, err, ErrBadSignature)

	b = fresh()
	format.PutU16(b, format.VersionOffset, format.Version+1)
	_, err = AttachArena(b)
	assert.ErrorIs(t, err, ErrBadVersion)

	b = fresh()
	format.PutU64(b, format.SizeOffset, 7)
	_, err = AttachArena(b)
	assert.ErrorIs(t, err, ErrBadHeader)

	b = fresh()
	format.PutU64(b, format.UsedOffset, uint64(len(b))) // used > size
	_, err = AttachArena(b)
	assert.ErrorIs(t, err, ErrBadHeader)
}
