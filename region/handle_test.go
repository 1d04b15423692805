package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRef_NilSentinel tests that zero is nil and nil propagates through
// relative addressing.
func TestRef_NilSentinel(t *testing.T) {
	assert.True(t, NilRef.IsNil())
	assert.False(t, Ref(8).IsNil())

	assert.Equal(t, NilRef, NilRef.Rel(16), "nil refs absorb offsets")
	assert.Equal(t, Ref(24), Ref(8).Rel(16))
	assert.Equal(t, Ref(4), Ref(8).Rel(-4))
}

// TestRef_BytesBounds tests payload resolution and its range checks.
func TestRef_BytesBounds(t *testing.T) {
	base := make([]byte, 64)
	for i := range base {
		base[i] = byte(i)
	}

	p := Ref(8).Bytes(base, 4)
	require.NotNil(t, p)
	assert.Equal(t, []byte{8, 9, 10, 11}, p)

	assert.Nil(t, NilRef.Bytes(base, 4))
	assert.Nil(t, Ref(62).Bytes(base, 4), "range past the buffer end")
	assert.Nil(t, Ref(200).Bytes(base, 1))
}

// TestRefOf_RoundTrip tests recovering an offset handle from an aliasing
// slice.
func TestRefOf_RoundTrip(t *testing.T) {
	base := make([]byte, 64)

	p := base[24:32]
	r := RefOf(base, p)
	assert.Equal(t, Ref(24), r)
	assert.Equal(t, p, r.Bytes(base, 8)[:8])

	assert.Equal(t, NilRef, RefOf(base, make([]byte, 8)), "foreign memory has no handle")
	assert.Equal(t, NilRef, RefOf(base, nil))
	assert.Equal(t, NilRef, RefOf(nil, p))
}

// TestRefOf_ArenaHandles tests that address-mode and offset-mode handles
// from the same arena agree.
func TestRefOf_ArenaHandles(t *testing.T) {
	b := make([]byte, 256)
	a, err := InitArena(b)
	require.NoError(t, err)

	p := a.AllocBytes(16)
	require.NotNil(t, p)

	r := RefOf(a.Base(), p)
	require.False(t, r.IsNil())
	copy(p, "dual-mode handle")
	assert.Equal(t, "dual-mode handle", string(a.View(r, 16)))
}
