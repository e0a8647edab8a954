package filestorage

import "mime/multipart"

// FileStorage stores uploaded files and returns the path under which they
// are served.
type FileStorage interface {
	// SaveFileWithPath stores a file in the given subdirectory and returns
	// its accessible path.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Missing files are not an
	// error.
	DeleteFile(filePath string) error
}
