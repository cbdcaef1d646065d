package dto

import "mime/multipart"

type CreateNewsRequest struct {
	Title   string
	Excerpt string
	Link    string
	Color   string
	Image   *multipart.FileHeader
}

// UpdateNewsRequest overwrites only the provided fields. A nil Image keeps
// the current path; a new image replaces the path without deleting the old
// file from disk.
type UpdateNewsRequest struct {
	Title   string
	Excerpt string
	Link    string
	Color   string
	Image   *multipart.FileHeader
}
