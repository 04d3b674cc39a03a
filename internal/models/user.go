package models

import (
	"github.com/kerimovok/go-pkg-database/sql"
)

// User represents an authenticated account
type User struct {
	sql.BaseModel
	Email          string `json:"email" gorm:"not null;uniqueIndex"`
	HashedPassword string `json:"-" gorm:"not null"`
	FullName       string `json:"fullName" gorm:"not null"`
	IsAdmin        bool   `json:"isAdmin" gorm:"not null;default:true"`
	IsActive       bool   `json:"isActive" gorm:"not null;default:true"`
}
