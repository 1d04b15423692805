package region

import (
	"testing"
)

// BenchmarkArena_Alloc measures raw bump allocation throughput. The arena
// is reset whenever it fills so the loop never hits the exhausted path.
func BenchmarkArena_Alloc(b *testing.B) {
	buf := make([]byte, 1<<20)
	a, err := InitArena(buf)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if a.Alloc(64).IsNil() {
			a.Reset()
		}
	}
}

// BenchmarkArena_AllocBytes measures the address-mode path, which adds a
// slice header on top of the cursor bump.
func BenchmarkArena_AllocBytes(b *testing.B) {
	buf := make([]byte, 1<<20)
	a, err := InitArena(buf)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if a.AllocBytes(64) == nil {
			a.Reset()
		}
	}
}

// BenchmarkSurge_AllocFree measures the steady-state drain cycle: one live
// allocation at a time, so every free resets the cursor.
func BenchmarkSurge_AllocFree(b *testing.B) {
	buf := make([]byte, 1<<20)
	sg, err := InitSurge(buf)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r := sg.Alloc(64)
		if r.IsNil() {
			b.Fatal("surge exhausted")
		}
		if err := sg.Free(r); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLockedArena_Alloc measures the mutex overhead on the alloc path.
func BenchmarkLockedArena_Alloc(b *testing.B) {
	buf := make([]byte, 1<<20)
	inner, err := InitArena(buf)
	if err != nil {
		b.Fatal(err)
	}
	a := NewLocked(inner)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if a.Alloc(64).IsNil() {
			a.Reset()
		}
	}
}

// BenchmarkTotem_Alloc measures delegation overhead with one child.
func BenchmarkTotem_Alloc(b *testing.B) {
	inner, err := InitArena(make([]byte, 1<<20))
	if err != nil {
		b.Fatal(err)
	}
	tm, err := NewTotem(4)
	if err != nil {
		b.Fatal(err)
	}
	if err := tm.Push(inner); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if tm.Alloc(64).IsNil() {
			tm.Reset()
		}
	}
}
