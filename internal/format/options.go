package format

type Options struct {
	// Compact drops optional whitespace and line breaks.
	Compact bool
	// IndentWidth is the number of spaces per level in pretty mode (default 2).
	IndentWidth int
	// Truncate renders at most a few statements per block, followed by
	// `[...]`. Used for diagnostics, never for real output.
	Truncate bool
	// Listener observes line starts; may be nil.
	Listener Listener
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	return o
}

// truncateLimit is the number of statements a truncated block shows.
const truncateLimit = 4
