package handlers

import (
	"cms-api/internal/database"
	"cms-api/internal/models"
	"cms-api/internal/requests"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles institute contact details
type ContactHandler struct{}

// NewContactHandler creates a new contact handler
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	return listAll[models.Contact](c, database.DB.Model(&models.Contact{}), "Contact")
}

func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateContactRequest](c)
	if input == nil {
		return errResp
	}

	contact := models.Contact{
		Location:   input.Location,
		Phone:      input.Phone,
		Email:      input.Email,
		ExactEmail: input.ExactEmail,
	}
	return createRecord(c, &contact, "Contact")
}

func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	contact, errResp := fetchByID[models.Contact](c, "Contact")
	if contact == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateContactRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.ExactEmail != nil {
		updates["exact_email"] = *input.ExactEmail
	}
	return applyUpdates(c, contact, updates, "Contact")
}

func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	contact, errResp := fetchByID[models.Contact](c, "Contact")
	if contact == nil {
		return errResp
	}
	return deleteRecord(c, contact, nil, nil, "Contact")
}
