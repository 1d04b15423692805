package region

// Kind tags the concrete type of an allocator stored in a totem's child
// table. Tags travel with the child so Pop can report what it removed.
type Kind uint8

const (
	KindUnknown Kind = 0
	KindArena   Kind = 1
	KindSurge   Kind = 2
	KindTotem   Kind = 3
)

// String returns the tag name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindArena:
		return "arena"
	case KindSurge:
		return "surge"
	case KindTotem:
		return "totem"
	default:
		return "unknown"
	}
}

// KindOf derives the tag for an allocator. Locked wrappers report the
// kind of the allocator they guard.
func KindOf(a Allocator) Kind {
	switch v := a.(type) {
	case *Arena:
		return KindArena
	case *Surge:
		return KindSurge
	case *Totem:
		return KindTotem
	case *LockedTotem:
		return KindTotem
	case *Locked:
		return KindOf(v.Unwrap())
	default:
		return KindUnknown
	}
}
