package format

// Alignment utilities for region allocators. Allocation sizes and the data
// start are rounded up to the region's alignment boundary.

// AlignUp returns n aligned up to the next multiple of align.
// align must be a power of two.
//
// Example:
//
//	AlignUp(1, 8)  = 8
//	AlignUp(8, 8)  = 8
//	AlignUp(9, 8)  = 16
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// Align8 returns n aligned up to the next 8-byte boundary.
func Align8(n int) int {
	return AlignUp(n, DefaultAlign)
}

// IsPow2 reports whether align is a positive power of two.
func IsPow2(align int) bool {
	return align > 0 && align&(align-1) == 0
}
