package fs

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/commons/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface on the local file system.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs resolves the given inputs to a list of concrete document paths.
// An input may be a file, a directory (walked recursively) or a glob pattern.
// Every input must contribute at least one document.
func (r *Resolver) ResolveInputs(inputs []string) ([]string, error) {
	uniquePaths := make(map[string]bool)

	for _, input := range inputs {
		paths, err := r.resolve(input)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "path", input)
		}
		for _, path := range paths {
			uniquePaths[filepath.Clean(path)] = true
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}

func (r *Resolver) resolve(input string) ([]string, error) {
	if info, err := os.Stat(input); err == nil {
		if !info.IsDir() {
			return []string{input}, nil
		}
		var paths []string
		for path := range r.walker.WalkDocuments(input) {
			paths = append(paths, path)
		}
		return paths, nil
	}

	matches, err := filepath.Glob(input)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidInputPattern.Error()), "pattern", input)
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil && !info.IsDir() && isDocument(match) {
			paths = append(paths, match)
		}
	}
	return paths, nil
}
