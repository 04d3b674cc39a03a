package handlers

import (
	"cms-api/internal/database"
	"cms-api/internal/models"
	"cms-api/internal/requests"
	"cms-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// RegulatoryHandler handles the regulatory document entities
type RegulatoryHandler struct {
	uploads *services.UploadService
}

// NewRegulatoryHandler creates a new regulatory handler
func NewRegulatoryHandler() *RegulatoryHandler {
	return &RegulatoryHandler{
		uploads: services.NewUploadService(),
	}
}

// Construction norm endpoints

func (h *RegulatoryHandler) ListConstructionNorms(c *fiber.Ctx) error {
	var input requests.ConstructionNormSearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.ConstructionNorm{})
	if input.Subsystem != "" {
		query = query.Where("subsystem ILIKE ?", "%"+input.Subsystem+"%")
	}
	if input.Group != "" {
		query = query.Where("\"group\" ILIKE ?", "%"+input.Group+"%")
	}
	query = query.Order("subsystem, \"group\", code")
	return listPage[models.ConstructionNorm](c, query, input.Page, input.Size, "Construction norm")
}

func (h *RegulatoryHandler) CreateConstructionNorm(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateConstructionNormRequest](c)
	if input == nil {
		return errResp
	}

	norm := models.ConstructionNorm{
		Subsystem: input.Subsystem,
		Group:     input.Group,
		Code:      input.Code,
		Title:     input.Title,
		Link:      input.Link,
	}
	return createRecord(c, &norm, "Construction norm")
}

func (h *RegulatoryHandler) UpdateConstructionNorm(c *fiber.Ctx) error {
	norm, errResp := fetchByID[models.ConstructionNorm](c, "Construction norm")
	if norm == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateConstructionNormRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Subsystem != nil {
		updates["subsystem"] = *input.Subsystem
	}
	if input.Group != nil {
		updates["group"] = *input.Group
	}
	if input.Code != nil {
		updates["code"] = *input.Code
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	return applyUpdates(c, norm, updates, "Construction norm")
}

func (h *RegulatoryHandler) DeleteConstructionNorm(c *fiber.Ctx) error {
	norm, errResp := fetchByID[models.ConstructionNorm](c, "Construction norm")
	if norm == nil {
		return errResp
	}
	return deleteRecord(c, norm, h.uploads, nil, "Construction norm")
}

// Standard endpoints

func (h *RegulatoryHandler) ListStandards(c *fiber.Ctx) error {
	var input requests.SearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.Standard{})
	if input.Search != "" {
		term := "%" + input.Search + "%"
		query = query.Where("title ILIKE ? OR code ILIKE ?", term, term)
	}
	query = query.Order("code")
	return listPage[models.Standard](c, query, input.Page, input.Size, "Standard")
}

func (h *RegulatoryHandler) CreateStandard(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateStandardRequest](c)
	if input == nil {
		return errResp
	}

	standard := models.Standard{
		Code:        input.Code,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}
	return createRecord(c, &standard, "Standard")
}

func (h *RegulatoryHandler) UpdateStandard(c *fiber.Ctx) error {
	standard, errResp := fetchByID[models.Standard](c, "Standard")
	if standard == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateStandardRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Code != nil {
		updates["code"] = *input.Code
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	return applyUpdates(c, standard, updates, "Standard")
}

func (h *RegulatoryHandler) DeleteStandard(c *fiber.Ctx) error {
	standard, errResp := fetchByID[models.Standard](c, "Standard")
	if standard == nil {
		return errResp
	}
	return deleteRecord(c, standard, h.uploads, nil, "Standard")
}

// Building regulation endpoints

func (h *RegulatoryHandler) ListBuildingRegulations(c *fiber.Ctx) error {
	var input requests.SearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.BuildingRegulation{})
	if input.Search != "" {
		term := "%" + input.Search + "%"
		query = query.Where("title ILIKE ? OR code ILIKE ? OR number ILIKE ?", term, term, term)
	}
	query = query.Order("number")
	return listPage[models.BuildingRegulation](c, query, input.Page, input.Size, "Building regulation")
}

func (h *RegulatoryHandler) CreateBuildingRegulation(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateBuildingRegulationRequest](c)
	if input == nil {
		return errResp
	}

	regulation := models.BuildingRegulation{
		Number: input.Number,
		Code:   input.Code,
		Title:  input.Title,
		Link:   input.Link,
	}
	return createRecord(c, &regulation, "Building regulation")
}

func (h *RegulatoryHandler) UpdateBuildingRegulation(c *fiber.Ctx) error {
	regulation, errResp := fetchByID[models.BuildingRegulation](c, "Building regulation")
	if regulation == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateBuildingRegulationRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Number != nil {
		updates["number"] = *input.Number
	}
	if input.Code != nil {
		updates["code"] = *input.Code
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	return applyUpdates(c, regulation, updates, "Building regulation")
}

func (h *RegulatoryHandler) DeleteBuildingRegulation(c *fiber.Ctx) error {
	regulation, errResp := fetchByID[models.BuildingRegulation](c, "Building regulation")
	if regulation == nil {
		return errResp
	}
	return deleteRecord(c, regulation, h.uploads, nil, "Building regulation")
}

// Cost resource norm endpoints

func (h *RegulatoryHandler) ListCostResourceNorms(c *fiber.Ctx) error {
	var input requests.SearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.CostResourceNorm{})
	if input.Search != "" {
		term := "%" + input.Search + "%"
		query = query.Where("srn_title ILIKE ? OR srn_code ILIKE ?", term, term)
	}
	query = query.Order("srn_code")
	return listPage[models.CostResourceNorm](c, query, input.Page, input.Size, "Cost resource norm")
}

func (h *RegulatoryHandler) CreateCostResourceNorm(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateCostResourceNormRequest](c)
	if input == nil {
		return errResp
	}

	norm := models.CostResourceNorm{
		SrnCode:         input.SrnCode,
		SrnTitle:        input.SrnTitle,
		MainShnqCode:    input.MainShnqCode,
		MainShnqTitle:   input.MainShnqTitle,
		AdditionalShnqs: input.AdditionalShnqs,
		File:            input.File,
	}
	return createRecord(c, &norm, "Cost resource norm")
}

func (h *RegulatoryHandler) UpdateCostResourceNorm(c *fiber.Ctx) error {
	norm, errResp := fetchByID[models.CostResourceNorm](c, "Cost resource norm")
	if norm == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateCostResourceNormRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.SrnCode != nil {
		updates["srn_code"] = *input.SrnCode
	}
	if input.SrnTitle != nil {
		updates["srn_title"] = *input.SrnTitle
	}
	if input.MainShnqCode != nil {
		updates["main_shnq_code"] = *input.MainShnqCode
	}
	if input.MainShnqTitle != nil {
		updates["main_shnq_title"] = *input.MainShnqTitle
	}
	if input.AdditionalShnqs != nil {
		updates["additional_shnqs"] = *input.AdditionalShnqs
	}
	if input.File != nil {
		updates["file"] = *input.File
	}
	return applyUpdates(c, norm, updates, "Cost resource norm")
}

func (h *RegulatoryHandler) DeleteCostResourceNorm(c *fiber.Ctx) error {
	norm, errResp := fetchByID[models.CostResourceNorm](c, "Cost resource norm")
	if norm == nil {
		return errResp
	}
	return deleteRecord(c, norm, h.uploads, norm.File, "Cost resource norm")
}

// Technical regulation endpoints

func (h *RegulatoryHandler) ListTechnicalRegulations(c *fiber.Ctx) error {
	var input requests.SearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.TechnicalRegulation{})
	if input.Search != "" {
		term := "%" + input.Search + "%"
		query = query.Where("title ILIKE ? OR code ILIKE ?", term, term)
	}
	query = query.Order("code")
	return listPage[models.TechnicalRegulation](c, query, input.Page, input.Size, "Technical regulation")
}

func (h *RegulatoryHandler) CreateTechnicalRegulation(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateTechnicalRegulationRequest](c)
	if input == nil {
		return errResp
	}

	regulation := models.TechnicalRegulation{
		Code:        input.Code,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}
	return createRecord(c, &regulation, "Technical regulation")
}

func (h *RegulatoryHandler) UpdateTechnicalRegulation(c *fiber.Ctx) error {
	regulation, errResp := fetchByID[models.TechnicalRegulation](c, "Technical regulation")
	if regulation == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateTechnicalRegulationRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Code != nil {
		updates["code"] = *input.Code
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	return applyUpdates(c, regulation, updates, "Technical regulation")
}

func (h *RegulatoryHandler) DeleteTechnicalRegulation(c *fiber.Ctx) error {
	regulation, errResp := fetchByID[models.TechnicalRegulation](c, "Technical regulation")
	if regulation == nil {
		return errResp
	}
	return deleteRecord(c, regulation, h.uploads, nil, "Technical regulation")
}

// Reference endpoints

func (h *RegulatoryHandler) ListReferences(c *fiber.Ctx) error {
	var input requests.SearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.Reference{})
	if input.Search != "" {
		term := "%" + input.Search + "%"
		query = query.Where("title ILIKE ? OR number ILIKE ?", term, term)
	}
	query = query.Order("number")
	return listPage[models.Reference](c, query, input.Page, input.Size, "Reference")
}

func (h *RegulatoryHandler) CreateReference(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateReferenceRequest](c)
	if input == nil {
		return errResp
	}

	reference := models.Reference{
		Number: input.Number,
		Title:  input.Title,
		Link:   input.Link,
	}
	return createRecord(c, &reference, "Reference")
}

func (h *RegulatoryHandler) UpdateReference(c *fiber.Ctx) error {
	reference, errResp := fetchByID[models.Reference](c, "Reference")
	if reference == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateReferenceRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Number != nil {
		updates["number"] = *input.Number
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Link != nil {
		updates["link"] = *input.Link
	}
	return applyUpdates(c, reference, updates, "Reference")
}

func (h *RegulatoryHandler) DeleteReference(c *fiber.Ctx) error {
	reference, errResp := fetchByID[models.Reference](c, "Reference")
	if reference == nil {
		return errResp
	}
	return deleteRecord(c, reference, h.uploads, nil, "Reference")
}

// File upload endpoint

func (h *RegulatoryHandler) UploadDocument(c *fiber.Ctx) error {
	return saveUpload(c, h.uploads, "regulatory", "document")
}
