package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"cms-api/internal/config"
	"cms-api/internal/utils"

	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/errors"
)

// UploadService stores and removes uploaded attachments
type UploadService struct {
	config config.UploadConfig
}

// NewUploadService creates a new upload service instance
func NewUploadService() *UploadService {
	return &UploadService{
		config: config.GetConfig().Uploads,
	}
}

// Save validates an uploaded file against the full allow-list and stores it
// under the given logical folder. It returns the relative path token that
// record fields reference.
func (s *UploadService) Save(file *multipart.FileHeader, folder string) (string, error) {
	return s.SaveAs(file, folder, "")
}

// SaveAs is like Save but validates the extension against a single
// allow-list category (image, document, archive).
func (s *UploadService) SaveAs(file *multipart.FileHeader, folder, category string) (string, error) {
	if err := s.Validate(file, category); err != nil {
		return "", err
	}

	// Never store under the caller-supplied name
	storedName := uuid.New().String()
	if ext := utils.GetFileExtensionFromHeader(file); ext != "" {
		storedName += "." + ext
	}

	dir := filepath.Join(s.config.Dir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.InternalError("DIR_CREATION_ERROR", fmt.Sprintf("Failed to create upload directory: %v", err))
	}

	if err := s.write(file, filepath.Join(dir, storedName)); err != nil {
		return "", err
	}

	return path.Join(folder, storedName), nil
}

// Delete removes a stored file referenced by its relative path token.
// It reports false when the file is already gone or cannot be removed;
// deletion never raises.
func (s *UploadService) Delete(token string) bool {
	fullPath := filepath.Join(s.config.Dir, filepath.FromSlash(token))
	if _, err := os.Stat(fullPath); err != nil {
		return false
	}
	return os.Remove(fullPath) == nil
}

// Validate checks filename presence, extension allow-list, and size cap
func (s *UploadService) Validate(file *multipart.FileHeader, category string) error {
	if file == nil || file.Filename == "" {
		return errors.BadRequestError("NO_FILE", "No file selected")
	}

	ext := utils.GetFileExtensionFromHeader(file)
	if !s.config.IsAllowed(ext, category) {
		return errors.BadRequestError("INVALID_FILE_TYPE", fmt.Sprintf("File type .%s is not allowed", ext))
	}

	if file.Size > s.config.MaxFileSize {
		return errors.BadRequestError("FILE_TOO_LARGE", fmt.Sprintf("File size exceeds maximum allowed size of %d bytes", s.config.MaxFileSize))
	}

	return nil
}

// write copies the multipart payload to its destination path
func (s *UploadService) write(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return errors.InternalError("FILE_OPEN_ERROR", fmt.Sprintf("Failed to open uploaded file: %v", err))
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.InternalError("FILE_CREATION_ERROR", fmt.Sprintf("Failed to create destination file: %v", err))
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return errors.InternalError("FILE_COPY_ERROR", fmt.Sprintf("Failed to copy file content: %v", err))
	}

	return nil
}
