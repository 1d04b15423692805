// Package format houses the on-buffer layout of region allocator headers.
// Every allocator stores its state little-endian at the very start of the
// caller-supplied buffer, so a region can be copied, mapped, or reattached
// at a different address without losing allocator state.
package format

var (
	// ArenaSignature is the four-byte signature at the start of every
	// arena-managed region.
	// Layout (little-endian):
	//   0x00  'a' 'r' 'n' 'a'
	ArenaSignature = []byte{'a', 'r', 'n', 'a'}

	// SurgeSignature identifies a surge-managed region. Surges extend the
	// arena header with a live-allocation counter.
	SurgeSignature = []byte{'s', 'u', 'r', 'g'}
)

const (
	// Region header field offsets. All regions share the common prefix;
	// surge regions append the count field.
	//
	//   Offset  Size  Description
	//   0x00    4     Signature ("arna" or "surg")
	//   0x04    2     Header version
	//   0x06    2     Allocation alignment (power of two)
	//   0x08    8     Usable size in bytes (buffer minus header and padding)
	//   0x10    8     Cursor: bytes consumed, relative to the data start
	//   0x18    8     Live-allocation count (surge only)
	SignatureOffset = 0x00
	SignatureSize   = 4
	VersionOffset   = 0x04
	AlignOffset     = 0x06
	SizeOffset      = 0x08
	UsedOffset      = 0x10
	CountOffset     = 0x18

	// Version is the current region header version.
	Version = 1

	// ArenaHeaderSize is the size of the arena header in bytes.
	ArenaHeaderSize = 0x18

	// SurgeHeaderSize is the size of the surge header in bytes.
	SurgeHeaderSize = 0x20

	// DefaultAlign is the default allocation alignment boundary.
	DefaultAlign = 8

	// MaxAlign bounds the per-region alignment a header may declare.
	// Large enough for page-aligned payloads, small enough to reject
	// corrupt headers.
	MaxAlign = 1 << 16
)
