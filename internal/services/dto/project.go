package dto

import "mime/multipart"

// CreateProjectRequest carries the parsed multipart form of a project
// creation call. Images may be empty; at most five are accepted.
type CreateProjectRequest struct {
	Name   string
	Trees  int
	Images []*multipart.FileHeader
}

// UpdateProjectRequest carries a partial update: empty Name and nil Trees
// mean "keep the current value". Images are appended, never replaced.
type UpdateProjectRequest struct {
	Name   string
	Trees  *int
	Images []*multipart.FileHeader
}
