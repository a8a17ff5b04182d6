package diffx

import (
	"os"
	"path/filepath"
	"testing"
)

// File contents shared by fixtures across the test suite.
const (
	contentHello    = "Hello world"
	contentPython   = "print(\"This line will be printed.\")"
	contentLanguage = "new language"
	contentRust     = "fn main() {\n    println(\"hello world\")\n}\n"
)

// setupTree creates a directory structure under root from a list of
// (possibly empty) directories and a map of file paths to contents, creating
// parent directories as needed.
func setupTree(t *testing.T, root string, dirs []string, files map[string]string) {
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	for path, content := range files {
		fullPath := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create parent directory of %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
}

// dirEntry builds an in-memory directory entry for comparator tests
func dirEntry(name string, children ...*Entry) *Entry {
	return &Entry{
		Kind:     KindDirectory,
		Name:     name,
		Children: children,
	}
}

// fileEntry builds an in-memory file entry for comparator tests
func fileEntry(name string) *Entry {
	return &Entry{
		Kind: KindFile,
		Name: name,
	}
}
