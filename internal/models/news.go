package models

import (
	"time"

	"github.com/kerimovok/go-pkg-database/sql"
)

// Announcement represents a public announcement
type Announcement struct {
	sql.BaseModel
	Title      string  `json:"title" gorm:"not null"`
	Content    string  `json:"content" gorm:"type:text;not null"`
	Attachment *string `json:"attachment"`
	IsActive   bool    `json:"isActive" gorm:"not null;default:true"`
}

// News represents a news article
type News struct {
	sql.BaseModel
	Title       string  `json:"title" gorm:"not null"`
	Content     string  `json:"content" gorm:"type:text;not null"`
	Image       *string `json:"image"`
	IsPublished bool    `json:"isPublished" gorm:"not null;default:true"`
}

// Meeting represents a scheduled or past meeting
type Meeting struct {
	sql.BaseModel
	Title       string     `json:"title" gorm:"not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	MeetingDate *time.Time `json:"meetingDate"`
	Location    *string    `json:"location"`
	Attachment  *string    `json:"attachment"`
}

// AntiCorruption represents an anti-corruption publication
type AntiCorruption struct {
	sql.BaseModel
	Title    string  `json:"title" gorm:"not null"`
	Content  string  `json:"content" gorm:"type:text;not null"`
	Document *string `json:"document"`
}
