package diffx

// DiffOption represents optional parameters for tree building and comparison
type DiffOption func(*diffOptions)

type diffOptions struct {
	excluding          []string
	recursiveExcluding bool
}

// defaultDiffOptions returns default options for tree building and comparison
func defaultDiffOptions() *diffOptions {
	return &diffOptions{
		excluding:          nil,
		recursiveExcluding: false,
	}
}

// WithExcluding omits entries with the given base names from tree building.
// Names are plain entry names, not paths and not glob patterns. An excluded
// directory is skipped entirely, its subtree is never visited.
func WithExcluding(names ...string) DiffOption {
	return func(opts *diffOptions) {
		opts.excluding = append(opts.excluding, names...)
	}
}

// WithRecursiveExcluding applies the exclusion names at every nesting level
// instead of only to the immediate children of the root.
func WithRecursiveExcluding() DiffOption {
	return func(opts *diffOptions) {
		opts.recursiveExcluding = true
	}
}
