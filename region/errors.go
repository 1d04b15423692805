package region

import "errors"

var (
	// ErrBufferSmall indicates the supplied buffer cannot hold the allocator header.
	ErrBufferSmall = errors.New("region: buffer smaller than allocator header")

	// ErrBadSignature indicates the buffer does not start with a known region signature.
	ErrBadSignature = errors.New("region: bad region signature")

	// ErrBadVersion indicates an unsupported region header version.
	ErrBadVersion = errors.New("region: unsupported header version")

	// ErrBadHeader indicates a header whose geometry disagrees with the buffer.
	ErrBadHeader = errors.New("region: corrupt region header")

	// ErrBadAlign indicates an alignment that is not a power of two or is out of range.
	ErrBadAlign = errors.New("region: alignment must be a power of two")

	// ErrBadCapacity indicates a totem capacity that is not positive.
	ErrBadCapacity = errors.New("region: totem capacity must be positive")

	// ErrInvalidFree indicates a free of a handle outside the allocator's
	// currently-allocated range: a double free or a foreign pointer.
	ErrInvalidFree = errors.New("region: free outside allocated range")

	// ErrDoubleFree indicates a free when no allocations are outstanding.
	ErrDoubleFree = errors.New("region: double free")

	// ErrTotemFull indicates a push against a totem at capacity.
	ErrTotemFull = errors.New("region: totem at capacity")

	// ErrBadIndex indicates a pop index outside the totem's child range.
	ErrBadIndex = errors.New("region: totem index out of range")

	// ErrOffsetFree indicates an offset handle routed through a totem.
	// Containment routing needs a concrete address; resolve the handle
	// against its region first and free the bytes instead.
	ErrOffsetFree = errors.New("region: totem cannot route offset handles")
)
