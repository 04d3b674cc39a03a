package models

import (
	"github.com/kerimovok/go-pkg-database/sql"
)

// ManagementSystem represents a certified management system description
type ManagementSystem struct {
	sql.BaseModel
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Pdf         *string `json:"pdf"`
}
