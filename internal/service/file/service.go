package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/emptrack/tracker-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type FileService interface {
	// UploadEmployeeImage stores an employee profile image and returns its path.
	UploadEmployeeImage(ctx context.Context, file io.Reader, filename string) (string, error)

	// DeleteFile removes a stored file; missing files are not an error.
	DeleteFile(ctx context.Context, path string) error

	// GetFileURL resolves a stored path to its public URL.
	GetFileURL(ctx context.Context, path string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

var allowedImageExts = []string{".jpg", ".jpeg", ".png", ".gif"}

// UploadEmployeeImage uploads an employee profile image. The stored name
// embeds a timestamp and a random suffix so simultaneous uploads never
// collide on the shared directory.
func (s *fileServiceImpl) UploadEmployeeImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	isValid := false
	for _, allowed := range allowedImageExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png, gif allowed")
	}

	newFilename := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	path := filepath.Join("employees", newFilename)

	contentType := "image/jpeg"
	switch ext {
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload employee image: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path, 0)
}
