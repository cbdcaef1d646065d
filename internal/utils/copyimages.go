package utils

import (
	"io"
	"os"
	"path/filepath"
)

// CopyImageToUploads copies a bundled image into the upload directory
// (creating it if absent) and returns its public path. When the source file
// does not exist the original path is returned unchanged, so seed data can
// reference external placeholders.
func CopyImageToUploads(uploadsDir, sourcePath, fileName string) string {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return sourcePath
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return sourcePath
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(uploadsDir, fileName))
	if err != nil {
		return sourcePath
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return sourcePath
	}

	return "/uploads/" + fileName
}
