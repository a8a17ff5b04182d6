package diffx

import (
	"os"
	"path/filepath"
)

// exclusionSet is an immutable set of plain entry names omitted during tree
// building. The zero value excludes nothing.
type exclusionSet map[string]struct{}

func newExclusionSet(names []string) exclusionSet {
	if len(names) == 0 {
		return nil
	}

	set := make(exclusionSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return set
}

func (s exclusionSet) contains(name string) bool {
	_, ok := s[name]
	return ok
}

// scope returns the set used for a nested build: the same set when exclusion
// is recursive, otherwise the empty set.
func (s exclusionSet) scope(recursive bool) exclusionSet {
	if recursive {
		return s
	}

	return nil
}

// BuildTree lists root and returns its children as a freshly built tree of
// entries. Entries whose name is in the exclusion set are omitted; with
// WithRecursiveExcluding the set applies at every nesting level, otherwise
// only to the immediate children of root. Entries appear in the order
// os.ReadDir lists them. Any listing failure aborts the whole build with no
// partial result.
func BuildTree(root string, options ...DiffOption) ([]*Entry, error) {
	opts := defaultDiffOptions()
	for _, opt := range options {
		opt(opts)
	}

	return buildTree(root, newExclusionSet(opts.excluding), opts.recursiveExcluding)
}

func buildTree(root string, excluding exclusionSet, recursive bool) ([]*Entry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, newListDirectoryError(root, err)
	}

	var tree []*Entry
	for _, entry := range entries {
		if excluding.contains(entry.Name()) {
			continue
		}

		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			children, err := buildTree(path, excluding.scope(recursive), recursive)
			if err != nil {
				return nil, err
			}

			tree = append(tree, &Entry{
				Kind:     KindDirectory,
				Name:     entry.Name(),
				Path:     path,
				Children: children,
			})
			continue
		}

		tree = append(tree, &Entry{
			Kind: KindFile,
			Name: entry.Name(),
			Path: path,
		})
	}

	return tree, nil
}
