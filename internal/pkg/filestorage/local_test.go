package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, baseURL string) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir(), baseURL)
	require.NoError(t, err)
	return ls
}

func TestSaveExistsRemove(t *testing.T) {
	ls := newTestStorage(t, "")

	const relPath = "course_documents/TECH/CS-301/syllabus.pdf"

	exists, err := ls.Exists(relPath)
	require.NoError(t, err)
	assert.False(t, exists)

	written, err := ls.Save(relPath, strings.NewReader("file body"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("file body")), written)

	exists, err = ls.Exists(relPath)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, ls.Remove(relPath))

	exists, err = ls.Exists(relPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSaveRefusesExistingFile(t *testing.T) {
	ls := newTestStorage(t, "")

	const relPath = "course_documents/TECH/CS-301/syllabus.pdf"

	_, err := ls.Save(relPath, strings.NewReader("first writer"))
	require.NoError(t, err)

	// The losing writer must not truncate the bytes already stored
	_, err = ls.Save(relPath, strings.NewReader("second writer"))
	assert.ErrorIs(t, err, ErrFileExists)

	content, err := os.ReadFile(filepath.Join(ls.basePath, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, "first writer", string(content))
}

func TestSaveAfterRemoveReusesPath(t *testing.T) {
	ls := newTestStorage(t, "")

	_, err := ls.Save("notes.txt", strings.NewReader("first version"))
	require.NoError(t, err)
	require.NoError(t, ls.Remove("notes.txt"))

	written, err := ls.Save("notes.txt", strings.NewReader("second"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("second")), written)
}

func TestRemoveMissingFileIsIdempotent(t *testing.T) {
	ls := newTestStorage(t, "")
	assert.NoError(t, ls.Remove("never/stored.pdf"))
	assert.NoError(t, ls.Remove(""))
}

func TestResolveRejectsTraversal(t *testing.T) {
	ls := newTestStorage(t, "")

	for _, relPath := range []string{"../outside.txt", "a/../../outside.txt", "/etc/passwd", "."} {
		t.Run(relPath, func(t *testing.T) {
			_, err := ls.Save(relPath, strings.NewReader("x"))
			assert.Error(t, err)
		})
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		relPath string
		want    string
	}{
		{name: "with base url", baseURL: "http://localhost:8080/uploads", relPath: "a/b.pdf", want: "http://localhost:8080/uploads/a/b.pdf"},
		{name: "trailing slash collapsed", baseURL: "http://localhost:8080/uploads/", relPath: "a/b.pdf", want: "http://localhost:8080/uploads/a/b.pdf"},
		{name: "no base url", baseURL: "", relPath: "a/b.pdf", want: "a/b.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newTestStorage(t, tt.baseURL)
			assert.Equal(t, tt.want, ls.URL(tt.relPath))
		})
	}
}
