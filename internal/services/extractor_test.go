package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromPlainFile(t *testing.T) {
	extractor := NewDocumentExtractor()

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("python developer\nwith sql experience"), 0644))

	text, err := extractor.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "python developer\nwith sql experience", text)
}

func TestExtractTextMissingFile(t *testing.T) {
	extractor := NewDocumentExtractor()

	_, err := extractor.ExtractText(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestStorageSaveTextRoundTrip(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	filename, path, err := storage.SaveText("pasted resume body", "resume")
	require.NoError(t, err)
	assert.Equal(t, path, storage.GetFilePath(filename))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pasted resume body", string(content))

	require.NoError(t, storage.DeleteFile(filename))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
