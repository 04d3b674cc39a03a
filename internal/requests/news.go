package requests

import "time"

// Announcements

type CreateAnnouncementRequest struct {
	Title      string  `json:"title" validate:"required"`
	Content    string  `json:"content" validate:"required"`
	Attachment *string `json:"attachment"`
	IsActive   *bool   `json:"isActive"`
}

type UpdateAnnouncementRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Attachment *string `json:"attachment"`
	IsActive   *bool   `json:"isActive"`
}

// AnnouncementSearchRequest filters the announcement listing
type AnnouncementSearchRequest struct {
	PageQuery
	ActiveOnly *bool `query:"active_only"`
}

// News

type CreateNewsRequest struct {
	Title       string  `json:"title" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	Image       *string `json:"image"`
	IsPublished *bool   `json:"isPublished"`
}

type UpdateNewsRequest struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Image       *string `json:"image"`
	IsPublished *bool   `json:"isPublished"`
}

// NewsSearchRequest filters the news listing
type NewsSearchRequest struct {
	PageQuery
	PublishedOnly *bool `query:"published_only"`
}

// Meetings

type CreateMeetingRequest struct {
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	MeetingDate *time.Time `json:"meetingDate"`
	Location    *string    `json:"location"`
	Attachment  *string    `json:"attachment"`
}

type UpdateMeetingRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	MeetingDate *time.Time `json:"meetingDate"`
	Location    *string    `json:"location"`
	Attachment  *string    `json:"attachment"`
}

// Anti-corruption

type CreateAntiCorruptionRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Document *string `json:"document"`
}

type UpdateAntiCorruptionRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Document *string `json:"document"`
}
