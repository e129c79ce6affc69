package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/commons/convert"
	"go.trai.ch/commons/internal/adapters/fs"
	"go.trai.ch/commons/internal/core/domain"
)

func TestDocumentStore_WriteRead(t *testing.T) {
	tmpDir := t.TempDir()
	store := fs.NewDocumentStore()
	path := filepath.Join(tmpDir, "out", "nested", "doc.yaml")

	assert.False(t, store.Exists(path))

	err := store.Write(&domain.Document{Path: path, Format: convert.FormatYAML, Data: []byte("a: 1\n")})
	require.NoError(t, err)
	assert.True(t, store.Exists(path))

	doc, err := store.Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, convert.FormatYAML, doc.Format)
	assert.Equal(t, "a: 1\n", string(doc.Data))
}

func TestDocumentStore_Read_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	store := fs.NewDocumentStore()

	txt := filepath.Join(tmpDir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))

	_, err := store.Read(txt)
	require.ErrorContains(t, err, domain.ErrDocumentReadFailed.Error())

	_, err = store.Read(filepath.Join(tmpDir, "missing.json"))
	require.ErrorContains(t, err, domain.ErrDocumentReadFailed.Error())
}

func TestDocumentStore_Write_Error(t *testing.T) {
	tmpDir := t.TempDir()
	store := fs.NewDocumentStore()

	blocker := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := store.Write(&domain.Document{Path: filepath.Join(blocker, "doc.json"), Data: []byte("{}")})
	require.ErrorContains(t, err, domain.ErrDocumentWriteFailed.Error())
}

func TestDocumentStore_Exists_Directory(t *testing.T) {
	store := fs.NewDocumentStore()
	assert.False(t, store.Exists(t.TempDir()))
}
