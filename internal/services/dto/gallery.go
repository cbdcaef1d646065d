package dto

import "mime/multipart"

type CreateGalleryRequest struct {
	Alt     string
	Caption string
	Src     *multipart.FileHeader
}
