package diffx

import "golang.org/x/sync/errgroup"

// DirDiff compares the directory trees rooted at dir and dirComp and reports
// whether they are different, either structurally (entry names or shapes) or
// by the text content of their files. Both sides are built with identical
// exclusion options. When the trees already differ structurally the result is
// decided without reading any file content.
func DirDiff(dir, dirComp string, options ...DiffOption) (bool, error) {
	var tree, treeComp []*Entry

	var group errgroup.Group
	group.Go(func() error {
		var err error
		tree, err = BuildTree(dir, options...)
		return err
	})
	group.Go(func() error {
		var err error
		treeComp, err = BuildTree(dirComp, options...)
		return err
	})
	if err := group.Wait(); err != nil {
		return false, err
	}

	if !StructurallyEqual(tree, treeComp) {
		return true, nil
	}

	contents, err := ReadContents(Flatten(tree))
	if err != nil {
		return false, err
	}

	contentsComp, err := ReadContents(Flatten(treeComp))
	if err != nil {
		return false, err
	}

	return !ContentEquivalent(contents, contentsComp), nil
}

// FileDiff reads both files as text and reports whether their content differs
func FileDiff(file, fileComp string) (bool, error) {
	content, err := readTextFile(file)
	if err != nil {
		return false, err
	}

	contentComp, err := readTextFile(fileComp)
	if err != nil {
		return false, err
	}

	return content != contentComp, nil
}
