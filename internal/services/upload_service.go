package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"mime"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"greenroots_backend/internal/logger"
	"greenroots_backend/internal/storage"
	"greenroots_backend/pkg/apperrors"
)

// NamingPolicy selects how stored filenames are derived from uploads.
type NamingPolicy string

const (
	// PolicySuffix keeps the original filename and appends "(n)" before the
	// extension when a file with that name already exists.
	PolicySuffix NamingPolicy = "suffix"

	// PolicyToken always renames to <base>-<unixMillis>-<randomInt><ext>,
	// unique in practice without inspecting existing files.
	PolicyToken NamingPolicy = "token"
)

// UploadConfig holds the ingestion limits and the active naming policy.
type UploadConfig struct {
	MaxFileSize  int64
	MaxFiles     int
	NamingPolicy NamingPolicy
}

func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		MaxFileSize:  25 * 1024 * 1024, // 25MB
		MaxFiles:     5,
		NamingPolicy: PolicySuffix,
	}
}

// UploadService ingests multipart image uploads: validates, stores each file
// under a collision-free name, and returns public /uploads/<name> paths.
type UploadService interface {
	IngestOne(ctx context.Context, fh *multipart.FileHeader) (string, error)
	IngestMany(ctx context.Context, fhs []*multipart.FileHeader) ([]string, error)

	// Cleanup best-effort deletes stored files by their public paths. Used
	// to roll back disk writes when a later record write fails, and for
	// image removal on project deletes. Failures are logged, never returned.
	Cleanup(ctx context.Context, paths []string)
}

type uploadService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(st storage.Storage, config UploadConfig) UploadService {
	if config.MaxFileSize == 0 {
		config = DefaultUploadConfig()
	}
	return &uploadService{
		storage: st,
		config:  config,
	}
}

func (s *uploadService) IngestOne(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	paths, err := s.IngestMany(ctx, []*multipart.FileHeader{fh})
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

func (s *uploadService) IngestMany(ctx context.Context, fhs []*multipart.FileHeader) ([]string, error) {
	if len(fhs) > s.config.MaxFiles {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Too many files: at most %d are allowed", s.config.MaxFiles))
	}

	// Validate everything before writing anything to disk.
	for _, fh := range fhs {
		if err := s.validateFile(fh); err != nil {
			return nil, err
		}
	}

	stored := make([]string, 0, len(fhs))
	for _, fh := range fhs {
		name, err := s.storedName(ctx, fh.Filename)
		if err != nil {
			s.Cleanup(ctx, stored)
			return nil, apperrors.InternalError(err)
		}

		src, err := fh.Open()
		if err != nil {
			s.Cleanup(ctx, stored)
			return nil, apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
		}

		err = s.storage.Save(ctx, name, src)
		src.Close()
		if err != nil {
			s.Cleanup(ctx, stored)
			return nil, apperrors.InternalError(fmt.Errorf("failed to save uploaded file: %w", err))
		}

		stored = append(stored, s.storage.PublicURL(name))
	}

	return stored, nil
}

func (s *uploadService) Cleanup(ctx context.Context, paths []string) {
	for _, p := range paths {
		// Stored paths are flat public paths; the final element is the name.
		if err := s.storage.Delete(ctx, path.Base(p)); err != nil {
			logger.CtxWithError(ctx, "failed to delete uploaded file", err, "path", p)
		}
	}
}

func (s *uploadService) validateFile(fh *multipart.FileHeader) error {
	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return apperrors.NewBadRequestError("Not an image! Please upload an image.")
	}

	if fh.Size > s.config.MaxFileSize {
		return apperrors.NewBadRequestError(
			fmt.Sprintf("File too large: the limit is %d bytes", s.config.MaxFileSize))
	}

	return nil
}

// storedName applies the configured naming policy to the client filename.
// The name is flattened with filepath.Base first so an uploaded filename
// cannot point outside the upload directory.
func (s *uploadService) storedName(ctx context.Context, original string) (string, error) {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if s.config.NamingPolicy == PolicyToken {
		return fmt.Sprintf("%s-%d-%d%s", stem, time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext), nil
	}

	// Suffix policy: first free "<stem>(n)<ext>", n = 1, 2, 3, ...
	name := base
	for counter := 1; ; counter++ {
		exists, err := s.storage.Exists(ctx, name)
		if err != nil {
			return "", err
		}
		if !exists {
			return name, nil
		}
		name = fmt.Sprintf("%s(%d)%s", stem, counter, ext)
	}
}
