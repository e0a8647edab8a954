package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, fileName, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "/uploads")
	require.NoError(t, err)

	header := uploadHeader(t, "photo.jpg", "fake image bytes")
	accessible, err := storage.SaveFileWithPath(header, "profile_pictures")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(accessible, "/uploads/profile_pictures/"))
	assert.True(t, strings.HasSuffix(accessible, ".jpg"))

	physical := filepath.Join(base, strings.TrimPrefix(accessible, "/uploads/"))
	content, err := os.ReadFile(physical)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(content))

	require.NoError(t, storage.DeleteFile(accessible))
	_, err = os.Stat(physical)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageSaveGeneratesUniqueNames(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := storage.SaveFileWithPath(uploadHeader(t, "photo.jpg", "a"), "")
	require.NoError(t, err)
	second, err := storage.SaveFileWithPath(uploadHeader(t, "photo.jpg", "b"), "")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStorageDeleteMissingFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile("/uploads/profile_pictures/gone.jpg"))
}

func TestLocalStorageDeleteRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.Error(t, storage.DeleteFile("/uploads/../etc/passwd"))
}
