package region

import "github.com/joshuapare/arenakit/internal/format"

// Options configure a region allocator at initialization.
type Options struct {
	// Align is the allocation alignment boundary in bytes. It must be a
	// power of two. Allocation sizes and the first managed byte are
	// rounded up to this boundary. The value is persisted in the region
	// header, so Attach* reads it back from the buffer.
	Align int

	// Unchecked disables the containment and double-free diagnostics on
	// the free paths, trading safety for zero overhead. It is an
	// in-process setting and is not persisted in the header.
	Unchecked bool
}

// DefaultOptions are the options applied when no overrides are given.
var DefaultOptions = Options{
	Align: format.DefaultAlign,
}

func applyOptions(optFns []func(*Options)) (Options, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Align == 0 {
		opts.Align = format.DefaultAlign
	}
	if !format.IsPow2(opts.Align) || opts.Align > format.MaxAlign {
		return Options{}, ErrBadAlign
	}
	return opts, nil
}
