package requests

import "time"

// About

type CreateAboutRequest struct {
	Content string  `json:"content" validate:"required"`
	PdfURL  *string `json:"pdfUrl"`
}

type UpdateAboutRequest struct {
	Content *string `json:"content"`
	PdfURL  *string `json:"pdfUrl"`
}

// Management

type CreateManagementRequest struct {
	FullName       string  `json:"fullName" validate:"required"`
	Position       string  `json:"position" validate:"required"`
	ProfileImage   *string `json:"profileImage"`
	ReceptionDays  *string `json:"receptionDays"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Specialization *string `json:"specialization"`
	OrderIndex     int     `json:"orderIndex"`
}

type UpdateManagementRequest struct {
	FullName       *string `json:"fullName"`
	Position       *string `json:"position"`
	ProfileImage   *string `json:"profileImage"`
	ReceptionDays  *string `json:"receptionDays"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Specialization *string `json:"specialization"`
	OrderIndex     *int    `json:"orderIndex"`
}

// Structure

type CreateStructureRequest struct {
	Title  string `json:"title" validate:"required"`
	PdfURL string `json:"pdfUrl" validate:"required"`
}

type UpdateStructureRequest struct {
	Title  *string `json:"title"`
	PdfURL *string `json:"pdfUrl"`
}

// Structural divisions

type CreateStructuralDivisionRequest struct {
	Title        string  `json:"title" validate:"required"`
	HeadFullName string  `json:"headFullName" validate:"required"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	ProfileImage *string `json:"profileImage"`
}

type UpdateStructuralDivisionRequest struct {
	Title        *string `json:"title"`
	HeadFullName *string `json:"headFullName"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	ProfileImage *string `json:"profileImage"`
}

// Vacancies

type CreateVacancyRequest struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description" validate:"required"`
	Requirements string     `json:"requirements" validate:"required"`
	Deadline     *time.Time `json:"deadline"`
	ContactEmail string     `json:"contactEmail" validate:"required,email"`
	Attachment   *string    `json:"attachment"`
	IsActive     *bool      `json:"isActive"`
}

type UpdateVacancyRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	Deadline     *time.Time `json:"deadline"`
	ContactEmail *string    `json:"contactEmail" validate:"omitempty,email"`
	Attachment   *string    `json:"attachment"`
	IsActive     *bool      `json:"isActive"`
}

// VacancySearchRequest filters the vacancy listing
type VacancySearchRequest struct {
	PageQuery
	ActiveOnly *bool `query:"active_only"`
}
