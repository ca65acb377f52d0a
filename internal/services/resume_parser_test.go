package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_TXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nData Scientist\n"), 0644))

	parser := NewResumeParserService()
	text, err := parser.ExtractText(path)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nData Scientist\n", text)
}

func TestExtractText_EmptyTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n"), 0644))

	parser := NewResumeParserService()
	_, err := parser.ExtractText(path)

	assert.ErrorContains(t, err, "empty")
}

func TestExtractText_MissingFile(t *testing.T) {
	parser := NewResumeParserService()
	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))

	assert.ErrorContains(t, err, "does not exist")
}

func TestExtractText_UnsupportedFormats(t *testing.T) {
	dir := t.TempDir()
	parser := NewResumeParserService()

	for _, name := range []string{"resume.docx", "resume.doc", "resume.odt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		_, err := parser.ExtractText(path)
		assert.ErrorContains(t, err, "unsupported file format")
	}
}

func TestCleanText(t *testing.T) {
	in := "  Jane Doe  \n\n\n  Data Scientist\n\t\nSkills  "
	assert.Equal(t, "Jane Doe\nData Scientist\nSkills", CleanText(in))

	assert.Equal(t, "", CleanText("   \n \n"))
}
