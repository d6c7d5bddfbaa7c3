package mojangson

// DefaultMaxDepth is the nesting limit applied when DecodeOpt.MaxDepth is 0.
// It matches the depth limit of the NBT format.
const DefaultMaxDepth = 512

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	// Strict rejects whitespace between tokens. The encoder never produces
	// any, so strict decoding accepts exactly the canonical form plus the
	// alternative spellings of numbers, quotes and booleans.
	Strict bool
	// MaxDepth bounds nesting of compounds and lists. 0 selects
	// DefaultMaxDepth; a negative value disables the limit.
	MaxDepth int
}

func normalizeDecodeOpt(opts []DecodeOpt) DecodeOpt {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	switch {
	case opt.MaxDepth == 0:
		opt.MaxDepth = DefaultMaxDepth
	case opt.MaxDepth < 0:
		opt.MaxDepth = 0
	}
	return opt
}
