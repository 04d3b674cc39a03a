package handlers

import (
	"errors"
	"log"

	"cms-api/internal/database"
	"cms-api/internal/pagination"
	"cms-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	pkgErrors "github.com/kerimovok/go-pkg-utils/errors"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
	"gorm.io/gorm"
)

// Shared handler plumbing for the per-entity CRUD endpoints. Every helper
// writes its own error response and signals the caller through a nil result.

// parseBody decodes and validates a JSON request body
func parseBody[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, httpx.SendResponse(c, httpx.BadRequest("Invalid request body", err))
	}
	if err := validator.ValidateStruct(&input); err != nil {
		return nil, httpx.SendResponse(c, httpx.BadRequest("Validation failed", err))
	}
	return &input, nil
}

// fetchByID loads a record by the :id path parameter
func fetchByID[T any](c *fiber.Ctx, label string) (*T, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, httpx.SendResponse(c, httpx.BadRequest("Invalid "+label+" ID", err))
	}

	var record T
	if err := database.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httpx.SendResponse(c, httpx.NotFound(label+" not found"))
		}
		return nil, httpx.SendResponse(c, httpx.InternalServerError("Failed to fetch "+label, err))
	}
	return &record, nil
}

// createRecord persists a new record and sends the created envelope
func createRecord(c *fiber.Ctx, record any, label string) error {
	if err := database.DB.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httpx.SendResponse(c, httpx.Conflict(label+" already exists", err))
		}
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to create "+label, err))
	}
	return httpx.SendResponse(c, httpx.Created(label+" created successfully", record))
}

// applyUpdates applies only the explicitly supplied fields and sends the
// refreshed record
func applyUpdates(c *fiber.Ctx, record any, updates map[string]interface{}, label string) error {
	if len(updates) > 0 {
		if err := database.DB.Model(record).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httpx.SendResponse(c, httpx.Conflict(label+" already exists", err))
			}
			return httpx.SendResponse(c, httpx.InternalServerError("Failed to update "+label, err))
		}
	}
	return httpx.SendResponse(c, httpx.OK(label+" updated successfully", record))
}

// deleteRecord removes a record and its stored file reference, if any.
// A failed file removal never blocks the record deletion.
func deleteRecord(c *fiber.Ctx, record any, uploads *services.UploadService, fileRef *string, label string) error {
	if err := database.DB.Delete(record).Error; err != nil {
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to delete "+label, err))
	}

	if uploads != nil && fileRef != nil && *fileRef != "" {
		if !uploads.Delete(*fileRef) {
			log.Printf("Warning: failed to delete file %q for %s", *fileRef, label)
		}
	}

	return httpx.SendResponse(c, httpx.OK(label+" deleted successfully", nil))
}

// listPage paginates an already filtered and ordered query and sends the
// page envelope
func listPage[T any](c *fiber.Ctx, query *gorm.DB, page, size int, label string) error {
	result, err := pagination.Paginate[T](query, page, size)
	if err != nil {
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to fetch "+label, err))
	}
	return httpx.SendResponse(c, httpx.OK(label+" retrieved successfully", result))
}

// listAll sends an unpaginated listing in the collection's stored order
func listAll[T any](c *fiber.Ctx, query *gorm.DB, label string) error {
	items := make([]T, 0)
	if err := query.Find(&items).Error; err != nil {
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to fetch "+label, err))
	}
	return httpx.SendResponse(c, httpx.OK(label+" retrieved successfully", items))
}

// uploadResponse is the payload returned by the file upload endpoints
type uploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
}

// saveUpload stores a multipart payload under a logical folder, validated
// against a single allow-list category when one is given
func saveUpload(c *fiber.Ctx, uploads *services.UploadService, folder, category string) error {
	file, err := c.FormFile("file")
	if err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("No file provided", err))
	}

	token, err := uploads.SaveAs(file, folder, category)
	if err != nil {
		if pkgErrors.IsType(err, pkgErrors.ErrorTypeBadRequest) {
			return httpx.SendResponse(c, httpx.BadRequest("File validation failed", err))
		}
		return httpx.SendResponse(c, httpx.InternalServerError("Failed to save file", err))
	}

	return httpx.SendResponse(c, httpx.Created("File uploaded successfully", uploadResponse{
		Filename: file.Filename,
		URL:      "/uploads/" + token,
		Size:     file.Size,
	}))
}
