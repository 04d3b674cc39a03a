package handlers

import (
	"cms-api/internal/database"
	"cms-api/internal/models"
	"cms-api/internal/requests"
	"cms-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/kerimovok/go-pkg-utils/httpx"
)

// NewsHandler handles the news and information entities
type NewsHandler struct {
	uploads *services.UploadService
}

// NewNewsHandler creates a new news handler
func NewNewsHandler() *NewsHandler {
	return &NewsHandler{
		uploads: services.NewUploadService(),
	}
}

// Announcement endpoints

func (h *NewsHandler) ListAnnouncements(c *fiber.Ctx) error {
	var input requests.AnnouncementSearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.Announcement{})
	if input.ActiveOnly == nil || *input.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	query = query.Order("created_at DESC")
	return listPage[models.Announcement](c, query, input.Page, input.Size, "Announcement")
}

func (h *NewsHandler) CreateAnnouncement(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateAnnouncementRequest](c)
	if input == nil {
		return errResp
	}

	announcement := models.Announcement{
		Title:      input.Title,
		Content:    input.Content,
		Attachment: input.Attachment,
		IsActive:   true,
	}
	if input.IsActive != nil {
		announcement.IsActive = *input.IsActive
	}
	return createRecord(c, &announcement, "Announcement")
}

func (h *NewsHandler) UpdateAnnouncement(c *fiber.Ctx) error {
	announcement, errResp := fetchByID[models.Announcement](c, "Announcement")
	if announcement == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateAnnouncementRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Attachment != nil {
		updates["attachment"] = *input.Attachment
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	return applyUpdates(c, announcement, updates, "Announcement")
}

func (h *NewsHandler) DeleteAnnouncement(c *fiber.Ctx) error {
	announcement, errResp := fetchByID[models.Announcement](c, "Announcement")
	if announcement == nil {
		return errResp
	}
	return deleteRecord(c, announcement, h.uploads, announcement.Attachment, "Announcement")
}

// News endpoints

func (h *NewsHandler) ListNews(c *fiber.Ctx) error {
	var input requests.NewsSearchRequest
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.News{})
	if input.PublishedOnly == nil || *input.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}
	query = query.Order("created_at DESC")
	return listPage[models.News](c, query, input.Page, input.Size, "News")
}

func (h *NewsHandler) CreateNews(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateNewsRequest](c)
	if input == nil {
		return errResp
	}

	news := models.News{
		Title:       input.Title,
		Content:     input.Content,
		Image:       input.Image,
		IsPublished: true,
	}
	if input.IsPublished != nil {
		news.IsPublished = *input.IsPublished
	}
	return createRecord(c, &news, "News")
}

func (h *NewsHandler) UpdateNews(c *fiber.Ctx) error {
	news, errResp := fetchByID[models.News](c, "News")
	if news == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateNewsRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.IsPublished != nil {
		updates["is_published"] = *input.IsPublished
	}
	return applyUpdates(c, news, updates, "News")
}

func (h *NewsHandler) DeleteNews(c *fiber.Ctx) error {
	news, errResp := fetchByID[models.News](c, "News")
	if news == nil {
		return errResp
	}
	return deleteRecord(c, news, h.uploads, news.Image, "News")
}

// Meeting endpoints

func (h *NewsHandler) ListMeetings(c *fiber.Ctx) error {
	var input requests.PageQuery
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.Meeting{}).
		Order("meeting_date DESC NULLS LAST, created_at DESC")
	return listPage[models.Meeting](c, query, input.Page, input.Size, "Meeting")
}

func (h *NewsHandler) CreateMeeting(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateMeetingRequest](c)
	if input == nil {
		return errResp
	}

	meeting := models.Meeting{
		Title:       input.Title,
		Content:     input.Content,
		MeetingDate: input.MeetingDate,
		Location:    input.Location,
		Attachment:  input.Attachment,
	}
	return createRecord(c, &meeting, "Meeting")
}

func (h *NewsHandler) UpdateMeeting(c *fiber.Ctx) error {
	meeting, errResp := fetchByID[models.Meeting](c, "Meeting")
	if meeting == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateMeetingRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.MeetingDate != nil {
		updates["meeting_date"] = *input.MeetingDate
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Attachment != nil {
		updates["attachment"] = *input.Attachment
	}
	return applyUpdates(c, meeting, updates, "Meeting")
}

func (h *NewsHandler) DeleteMeeting(c *fiber.Ctx) error {
	meeting, errResp := fetchByID[models.Meeting](c, "Meeting")
	if meeting == nil {
		return errResp
	}
	return deleteRecord(c, meeting, h.uploads, meeting.Attachment, "Meeting")
}

// Anti-corruption endpoints

func (h *NewsHandler) ListAntiCorruption(c *fiber.Ctx) error {
	var input requests.PageQuery
	if err := c.QueryParser(&input); err != nil {
		return httpx.SendResponse(c, httpx.BadRequest("Invalid query parameters", err))
	}
	input.Defaults()

	query := database.DB.Model(&models.AntiCorruption{}).Order("created_at DESC")
	return listPage[models.AntiCorruption](c, query, input.Page, input.Size, "Anti-corruption item")
}

func (h *NewsHandler) CreateAntiCorruption(c *fiber.Ctx) error {
	input, errResp := parseBody[requests.CreateAntiCorruptionRequest](c)
	if input == nil {
		return errResp
	}

	item := models.AntiCorruption{
		Title:    input.Title,
		Content:  input.Content,
		Document: input.Document,
	}
	return createRecord(c, &item, "Anti-corruption item")
}

func (h *NewsHandler) UpdateAntiCorruption(c *fiber.Ctx) error {
	item, errResp := fetchByID[models.AntiCorruption](c, "Anti-corruption item")
	if item == nil {
		return errResp
	}

	input, errResp := parseBody[requests.UpdateAntiCorruptionRequest](c)
	if input == nil {
		return errResp
	}

	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Document != nil {
		updates["document"] = *input.Document
	}
	return applyUpdates(c, item, updates, "Anti-corruption item")
}

func (h *NewsHandler) DeleteAntiCorruption(c *fiber.Ctx) error {
	item, errResp := fetchByID[models.AntiCorruption](c, "Anti-corruption item")
	if item == nil {
		return errResp
	}
	return deleteRecord(c, item, h.uploads, item.Document, "Anti-corruption item")
}

// File upload endpoints

func (h *NewsHandler) UploadImage(c *fiber.Ctx) error {
	return saveUpload(c, h.uploads, "news/images", "image")
}

func (h *NewsHandler) UploadDocument(c *fiber.Ctx) error {
	return saveUpload(c, h.uploads, "news/documents", "document")
}
