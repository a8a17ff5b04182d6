package diffx

import (
	"os"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds how many files ReadContents has open at once.
const maxConcurrentReads = 8

// ReadContents reads the text content of every leaf and returns the contents
// in input order: contents[i] holds the content of leaves[i] regardless of the
// completion order of the underlying reads. A single missing, unreadable or
// non-text file fails the whole read with no partial result.
func ReadContents(leaves []Leaf) ([]string, error) {
	contents := make([]string, len(leaves))

	var group errgroup.Group
	group.SetLimit(maxConcurrentReads)
	for i, leaf := range leaves {
		group.Go(func() error {
			content, err := readTextFile(leaf.Path)
			if err != nil {
				return err
			}

			contents[i] = content
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return contents, nil
}

// readTextFile reads a whole file and verifies it decodes as UTF-8 text
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newReadFileError(path, err)
	}

	if !utf8.Valid(data) {
		return "", newNotTextError(path)
	}

	return string(data), nil
}

// ContentEquivalent reports whether every element of contents has at least one
// equal element somewhere in contentsComp. The test is one-directional
// containment, not set equality: extra or duplicate elements in contentsComp
// never make it fail, so it is not symmetric. Pure, no filesystem access.
func ContentEquivalent(contents, contentsComp []string) bool {
	for _, content := range contents {
		if !containsContent(contentsComp, content) {
			return false
		}
	}

	return true
}

func containsContent(contents []string, content string) bool {
	for _, candidate := range contents {
		if candidate == content {
			return true
		}
	}

	return false
}
