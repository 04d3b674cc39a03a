package models

import (
	"time"

	"github.com/kerimovok/go-pkg-database/sql"
)

// About represents the institute overview page content
type About struct {
	sql.BaseModel
	Content string  `json:"content" gorm:"type:text;not null"`
	PdfURL  *string `json:"pdfUrl"`
}

// Management represents a member of the institute leadership
type Management struct {
	sql.BaseModel
	FullName       string  `json:"fullName" gorm:"not null"`
	Position       string  `json:"position" gorm:"not null"`
	ProfileImage   *string `json:"profileImage"`
	ReceptionDays  *string `json:"receptionDays"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Specialization *string `json:"specialization" gorm:"type:text"`
	OrderIndex     int     `json:"orderIndex" gorm:"not null;default:0"`
}

// Structure represents the organizational structure document
type Structure struct {
	sql.BaseModel
	Title  string `json:"title" gorm:"not null"`
	PdfURL string `json:"pdfUrl" gorm:"not null"`
}

// StructuralDivision represents a department of the institute
type StructuralDivision struct {
	sql.BaseModel
	Title        string  `json:"title" gorm:"not null"`
	HeadFullName string  `json:"headFullName" gorm:"not null"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	ProfileImage *string `json:"profileImage"`
}

// Vacancy represents an open position
type Vacancy struct {
	sql.BaseModel
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description" gorm:"type:text;not null"`
	Requirements string     `json:"requirements" gorm:"type:text;not null"`
	Deadline     *time.Time `json:"deadline"`
	ContactEmail string     `json:"contactEmail" gorm:"not null"`
	Attachment   *string    `json:"attachment"`
	IsActive     bool       `json:"isActive" gorm:"not null;default:true"`
}
