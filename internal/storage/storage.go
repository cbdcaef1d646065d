package storage

import (
	"context"
	"io"
)

// Storage defines the file storage operations the upload layer needs. Names
// are flat (no subdirectories): the upload directory is a single folder of
// files referenced by path strings embedded in records.
type Storage interface {
	// Save stores a file under the given name.
	Save(ctx context.Context, name string, reader io.Reader) error

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error

	// Exists reports whether a file with the given name is already stored.
	Exists(ctx context.Context, name string) (bool, error)

	// PublicURL returns the public path for a stored file.
	PublicURL(name string) string
}
