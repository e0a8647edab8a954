package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/merdan/studentinfo/internal/pkg/logger"
)

// LocalStorage saves files on the local filesystem under basePath and serves
// them under urlPrefix (e.g. /uploads).
type LocalStorage struct {
	basePath  string
	urlPrefix string
}

// NewLocalStorage creates a LocalStorage, ensuring the base directory exists.
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}, nil
}

// SaveFileWithPath stores an uploaded file under a fresh UUID filename in the
// given subdirectory and returns the path it is served at.
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := ls.basePath
	if subPath != "" {
		dir = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create storage subdirectory: %w", err)
		}
	}

	// A random filename avoids collisions between identically named uploads.
	filename := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessible := path.Join(ls.urlPrefix, subPath, filename)
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", accessible).Msg("File saved")
	return accessible, nil
}

// DeleteFile removes a stored file given its accessible path. A file that is
// already gone is not an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	rel := strings.TrimPrefix(filePath, ls.urlPrefix)
	rel = strings.TrimLeft(rel, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	physical := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if err := os.Remove(physical); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physical).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
