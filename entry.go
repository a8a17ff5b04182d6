package diffx

// EntryKind represents the kind of a filesystem tree entry
type EntryKind string

const (
	KindDirectory EntryKind = "directory"
	KindFile      EntryKind = "file"
)

// Entry represents one node of a filesystem tree: a directory with its
// children or a single file. Path is the fully resolved path used to read or
// list the entry; it never takes part in comparison, so two trees rooted at
// different locations can still be judged equal.
type Entry struct {
	Kind     EntryKind
	Name     string
	Path     string
	Children []*Entry
}

// IsDir reports whether the entry is a directory
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Leaf represents a file entry extracted from a tree by Flatten
type Leaf struct {
	Name string
	Path string
}

// StructurallyEqual reports whether two trees have the same shape: the same
// names, kinds and nesting at every position. Comparison is recursive over
// ordered children sequences, so the same entries listed in a different order
// are judged unequal. Paths are ignored. Pure, no filesystem access.
func StructurallyEqual(tree, treeComp []*Entry) bool {
	if len(tree) != len(treeComp) {
		return false
	}

	for i := range tree {
		if !tree[i].structureEqual(treeComp[i]) {
			return false
		}
	}

	return true
}

func (e *Entry) structureEqual(comp *Entry) bool {
	if e.Kind != comp.Kind || e.Name != comp.Name {
		return false
	}

	return StructurallyEqual(e.Children, comp.Children)
}

// Flatten reduces a tree to its leaf files in depth-first order: the leaves of
// a directory are emitted before those of its siblings, and directory entries
// themselves are never emitted. Deterministic for a fixed tree.
func Flatten(tree []*Entry) []Leaf {
	var leaves []Leaf
	for _, entry := range tree {
		if entry.IsDir() {
			leaves = append(leaves, Flatten(entry.Children)...)
			continue
		}

		leaves = append(leaves, Leaf{
			Name: entry.Name,
			Path: entry.Path,
		})
	}

	return leaves
}
