package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/commons/internal/adapters/fs"
	"go.trai.ch/commons/internal/core/domain"
)

func TestResolver_ResolveInputs(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.json", "b.yaml", "notes.txt", "dir/c.yml", "dir/.hidden/d.json")

	join := func(parts ...string) string {
		return filepath.Join(append([]string{tmpDir}, parts...)...)
	}

	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{
			name:   "single file",
			inputs: []string{join("a.json")},
			want:   []string{join("a.json")},
		},
		{
			name:   "glob skips non documents",
			inputs: []string{join("*")},
			want:   []string{join("a.json"), join("b.yaml")},
		},
		{
			name:   "directory is walked",
			inputs: []string{join("dir")},
			want:   []string{join("dir", "c.yml")},
		},
		{
			name:   "duplicates are removed and result sorted",
			inputs: []string{join("b.yaml"), join("*.json"), join("a.json")},
			want:   []string{join("a.json"), join("b.yaml")},
		},
	}

	resolver := fs.NewResolver(fs.NewWalker())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.ResolveInputs(tt.inputs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ResolveInputs_NoMatches(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "notes.txt")

	resolver := fs.NewResolver(fs.NewWalker())

	_, err := resolver.ResolveInputs([]string{filepath.Join(tmpDir, "*.nonexistent")})
	require.ErrorContains(t, err, domain.ErrInputNotFound.Error())

	_, err = resolver.ResolveInputs([]string{tmpDir})
	require.ErrorContains(t, err, domain.ErrInputNotFound.Error())
}

func TestResolver_ResolveInputs_GlobError(t *testing.T) {
	resolver := fs.NewResolver(fs.NewWalker())

	_, err := resolver.ResolveInputs([]string{"["})
	require.ErrorContains(t, err, domain.ErrInvalidInputPattern.Error())
}
