// Package fs provides file system adapters for locating, reading and writing documents.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/commons/convert"
)

// Walker finds JSON and YAML documents below a directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkDocuments yields every document below root in lexical order.
// Hidden directories such as .git or the local state directory are skipped.
// Unreadable entries are skipped silently.
func (w *Walker) WalkDocuments(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are not documents
			}

			if d.IsDir() {
				if path != root && isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !isDocument(path) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

func isDocument(path string) bool {
	_, err := convert.FormatFromPath(path)
	return err == nil
}
