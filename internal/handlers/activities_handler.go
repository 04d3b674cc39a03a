package handlers

import (
	"cms-api/internal/database"
	"cms-api/internal/models"
	"cms-api/internal/requests"
	"cms-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// ActivitiesHandler handles the activities section entities
type ActivitiesHandler struct {
	uploads *services.UploadService
}

// NewActivitiesHandler creates a new activities handler
func NewActivitiesHandler() *ActivitiesHandler {
	return &ActivitiesHandler{
		uploads: services.NewUploadService(),
	}
}

// Management system endpoints

func (h *ActivitiesHandler) ListManagementSystems(c *fiber.Ctx) error {
	var input requests.SearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.ManagementSystem{})
	if input.Search != "" {
		query = query.Where("title ILIKE ?", "%"+input.Search+"%")
	}
	query = query.Order("created_at DESC")
	return listPage[models.ManagementSystem](c, query, input.Page, input.Size, "Management system")
}

func (h *ActivitiesHandler) CreateManagementSystem(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateManagementSystemRequest](c)
	if input == nil {
		return errResp
	}

	system := models.ManagementSystem{
		Title:       input.Title,
		Description: input.Description,
		Pdf:         input.Pdf,
	}
	return createRecord(c, &system, "Management system")
}

func (h *ActivitiesHandler) UpdateManagementSystem(c *fiber.Ctx) error {
	system, errResp := fetchByID[models.ManagementSystem](c, "Management system")
	if system == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateManagementSystemRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Pdf != nil {
		updates["pdf"] = *input.Pdf
	}
	return applyUpdates(c, system, updates, "Management system")
}

func (h *ActivitiesHandler) DeleteManagementSystem(c *fiber.Ctx) error {
	system, errResp := fetchByID[models.ManagementSystem](c, "Management system")
	if system == nil {
		return errResp
	}
	return deleteRecord(c, system, h.uploads, system.Pdf, "Management system")
}

// File upload endpoint

func (h *ActivitiesHandler) UploadDocument(c *fiber.Ctx) error {
	return saveUpload(c, h.uploads, "activities", "document")
}
