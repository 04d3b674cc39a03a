package models

import (
	"github.com/kerimovok/go-pkg-database/sql"
)

// Contact represents institute contact details
type Contact struct {
	sql.BaseModel
	Location   string  `json:"location" gorm:"type:text;not null"`
	Phone      string  `json:"phone" gorm:"not null"`
	Email      string  `json:"email" gorm:"not null"`
	ExactEmail *string `json:"exactEmail"`
}
