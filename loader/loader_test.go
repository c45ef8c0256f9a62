package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	content := "The Spiral Model.\n\nAdvantages of the Spiral Model\n1. Risk handling\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	l := NewLoader()
	text, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestLoader_LoadMissingFile(t *testing.T) {
	l := NewLoader()
	_, err := l.Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoader_LoadInvalidPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o600))

	l := NewLoader()
	_, err := l.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPDFParseFailed)
}

func TestLoader_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.PDF")
	require.NoError(t, os.WriteFile(path, []byte("still not a pdf"), 0o600))

	l := NewLoader()
	_, err := l.Load(path)
	assert.ErrorIs(t, err, ErrPDFParseFailed)
}
