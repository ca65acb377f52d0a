package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"pdf", "resume.pdf", true},
		{"txt", "notes.txt", true},
		{"uppercase extension", "Resume.PDF", true},
		{"docx rejected", "resume.docx", false},
		{"executable", "malware.exe", false},
		{"shell script", "run.sh", false},
		{"batch file", "setup.bat", false},
		{"cmd file", "setup.cmd", false},
		{"path traversal", "../../etc/passwd.pdf", false},
		{"windows traversal", `..\secrets.pdf`, false},
		{"no extension", "resume", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateFilename(tt.filename))
		})
	}
}

func TestStorageService_EnsureUploadDirAndPaths(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	svc := NewStorageService(dir)

	require.NoError(t, svc.EnsureUploadDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, filepath.Join(dir, "resume_abc.pdf"), svc.GetFilePath("resume_abc.pdf"))
}

func TestStorageService_DeleteFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(dir)

	path := filepath.Join(dir, "resume_gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, svc.DeleteFile("resume_gone.txt"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, svc.DeleteFile("resume_gone.txt"))
}
