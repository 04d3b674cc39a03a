package handlers

import (
	"cms-api/internal/database"
	"cms-api/internal/models"
	"cms-api/internal/requests"
	"cms-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// InstituteHandler handles the institute section entities
type InstituteHandler struct {
	uploads *services.UploadService
}

// NewInstituteHandler creates a new institute handler
func NewInstituteHandler() *InstituteHandler {
	return &InstituteHandler{
		uploads: services.NewUploadService(),
	}
}

// About endpoints

func (h *InstituteHandler) ListAbout(c *fiber.Ctx) error {
	return listAll[models.About](c, database.DB.Model(&models.About{}), "About")
}

func (h *InstituteHandler) CreateAbout(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateAboutRequest](c)
	if input == nil {
		return errResp
	}

	about := models.About{
		Content: input.Content,
		PdfURL:  input.PdfURL,
	}
	return createRecord(c, &about, "About")
}

func (h *InstituteHandler) UpdateAbout(c *fiber.Ctx) error {
	about, errResp := fetchByID[models.About](c, "About")
	if about == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateAboutRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.PdfURL != nil {
		updates["pdf_url"] = *input.PdfURL
	}
	return applyUpdates(c, about, updates, "About")
}

func (h *InstituteHandler) DeleteAbout(c *fiber.Ctx) error {
	about, errResp := fetchByID[models.About](c, "About")
	if about == nil {
		return errResp
	}
	return deleteRecord(c, about, h.uploads, about.PdfURL, "About")
}

// Management endpoints

func (h *InstituteHandler) ListManagement(c *fiber.Ctx) error {
	var input requests.PageQuery
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.Management{}).Order("order_index, created_at")
	return listPage[models.Management](c, query, input.Page, input.Size, "Management")
}

func (h *InstituteHandler) CreateManagement(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateManagementRequest](c)
	if input == nil {
		return errResp
	}

	management := models.Management{
		FullName:       input.FullName,
		Position:       input.Position,
		ProfileImage:   input.ProfileImage,
		ReceptionDays:  input.ReceptionDays,
		Phone:          input.Phone,
		Email:          input.Email,
		Specialization: input.Specialization,
		OrderIndex:     input.OrderIndex,
	}
	return createRecord(c, &management, "Management")
}

func (h *InstituteHandler) UpdateManagement(c *fiber.Ctx) error {
	management, errResp := fetchByID[models.Management](c, "Management")
	if management == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateManagementRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}
	if input.ProfileImage != nil {
		updates["profile_image"] = *input.ProfileImage
	}
	if input.ReceptionDays != nil {
		updates["reception_days"] = *input.ReceptionDays
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Specialization != nil {
		updates["specialization"] = *input.Specialization
	}
	if input.OrderIndex != nil {
		updates["order_index"] = *input.OrderIndex
	}
	return applyUpdates(c, management, updates, "Management")
}

func (h *InstituteHandler) DeleteManagement(c *fiber.Ctx) error {
	management, errResp := fetchByID[models.Management](c, "Management")
	if management == nil {
		return errResp
	}
	return deleteRecord(c, management, h.uploads, management.ProfileImage, "Management")
}

// Structure endpoints

func (h *InstituteHandler) ListStructure(c *fiber.Ctx) error {
	return listAll[models.Structure](c, database.DB.Model(&models.Structure{}), "Structure")
}

func (h *InstituteHandler) CreateStructure(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateStructureRequest](c)
	if input == nil {
		return errResp
	}

	structure := models.Structure{
		Title:  input.Title,
		PdfURL: input.PdfURL,
	}
	return createRecord(c, &structure, "Structure")
}

func (h *InstituteHandler) UpdateStructure(c *fiber.Ctx) error {
	structure, errResp := fetchByID[models.Structure](c, "Structure")
	if structure == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateStructureRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.PdfURL != nil {
		updates["pdf_url"] = *input.PdfURL
	}
	return applyUpdates(c, structure, updates, "Structure")
}

func (h *InstituteHandler) DeleteStructure(c *fiber.Ctx) error {
	structure, errResp := fetchByID[models.Structure](c, "Structure")
	if structure == nil {
		return errResp
	}
	return deleteRecord(c, structure, h.uploads, &structure.PdfURL, "Structure")
}

// Structural division endpoints

func (h *InstituteHandler) ListStructuralDivisions(c *fiber.Ctx) error {
	var input requests.PageQuery
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.StructuralDivision{}).Order("created_at")
	return listPage[models.StructuralDivision](c, query, input.Page, input.Size, "Structural division")
}

func (h *InstituteHandler) CreateStructuralDivision(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateStructuralDivisionRequest](c)
	if input == nil {
		return errResp
	}

	division := models.StructuralDivision{
		Title:        input.Title,
		HeadFullName: input.HeadFullName,
		Phone:        input.Phone,
		Email:        input.Email,
		ProfileImage: input.ProfileImage,
	}
	return createRecord(c, &division, "Structural division")
}

func (h *InstituteHandler) UpdateStructuralDivision(c *fiber.Ctx) error {
	division, errResp := fetchByID[models.StructuralDivision](c, "Structural division")
	if division == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateStructuralDivisionRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.HeadFullName != nil {
		updates["head_full_name"] = *input.HeadFullName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.ProfileImage != nil {
		updates["profile_image"] = *input.ProfileImage
	}
	return applyUpdates(c, division, updates, "Structural division")
}

func (h *InstituteHandler) DeleteStructuralDivision(c *fiber.Ctx) error {
	division, errResp := fetchByID[models.StructuralDivision](c, "Structural division")
	if division == nil {
		return errResp
	}
	return deleteRecord(c, division, h.uploads, division.ProfileImage, "Structural division")
}

// Vacancy endpoints

func (h *InstituteHandler) ListVacancies(c *fiber.Ctx) error {
	var input requests.VacancySearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.Vacancy{})
	if input.ActiveOnly == nil || *input.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	query = query.Order("created_at DESC")
	return listPage[models.Vacancy](c, query, input.Page, input.Size, "Vacancy")
}

func (h *InstituteHandler) CreateVacancy(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateVacancyRequest](c)
	if input == nil {
		return errResp
	}

	vacancy := models.Vacancy{
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		Deadline:     input.Deadline,
		ContactEmail: input.ContactEmail,
		Attachment:   input.Attachment,
		IsActive:     true,
	}
	if input.IsActive != nil {
		vacancy.IsActive = *input.IsActive
	}
	return createRecord(c, &vacancy, "Vacancy")
}

func (h *InstituteHandler) UpdateVacancy(c *fiber.Ctx) error {
	vacancy, errResp := fetchByID[models.Vacancy](c, "Vacancy")
	if vacancy == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateVacancyRequest](c)
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
	if input.Requirements != nil {
		updates["requirements"] = *input.Requirements
	}
	if input.Deadline != nil {
		updates["deadline"] = *input.Deadline
	}
	if input.ContactEmail != nil {
		updates["contact_email"] = *input.ContactEmail
	}
	if input.Attachment != nil {
		updates["attachment"] = *input.Attachment
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	return applyUpdates(c, vacancy, updates, "Vacancy")
}

func (h *InstituteHandler) DeleteVacancy(c *fiber.Ctx) error {
	vacancy, errResp := fetchByID[models.Vacancy](c, "Vacancy")
	if vacancy == nil {
		return errResp
	}
	return deleteRecord(c, vacancy, h.uploads, vacancy.Attachment, "Vacancy")
}

// File upload endpoints

func (h *InstituteHandler) UploadImage(c *fiber.Ctx) error {
	return saveUpload(c, h.uploads, "images", "image")
}

func (h *InstituteHandler) UploadDocument(c *fiber.Ctx) error {
	return saveUpload(c, h.uploads, "documents", "document")
}
