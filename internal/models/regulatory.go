package models

import (
	"github.com/kerimovok/go-pkg-database/sql"
)

// ConstructionNorm represents an urban construction norm entry
type ConstructionNorm struct {
	sql.BaseModel
	Subsystem string  `json:"subsystem" gorm:"not null"`
	Group     string  `json:"group" gorm:"not null"`
	Code      string  `json:"code" gorm:"not null;uniqueIndex"`
	Title     string  `json:"title" gorm:"not null"`
	Link      *string `json:"link"`
}

// Standard represents a national standard entry
type Standard struct {
	sql.BaseModel
	Code        string  `json:"code" gorm:"not null;uniqueIndex"`
	Title       string  `json:"title" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
	Link        *string `json:"link"`
}

// BuildingRegulation represents a building regulation entry
type BuildingRegulation struct {
	sql.BaseModel
	Number string  `json:"number" gorm:"not null"`
	Code   string  `json:"code" gorm:"not null;uniqueIndex"`
	Title  string  `json:"title" gorm:"not null"`
	Link   *string `json:"link"`
}

// CostResourceNorm represents a cost resource norm entry
type CostResourceNorm struct {
	sql.BaseModel
	SrnCode         string   `json:"srnCode" gorm:"not null;uniqueIndex"`
	SrnTitle        string   `json:"srnTitle" gorm:"not null"`
	MainShnqCode    string   `json:"mainShnqCode" gorm:"not null"`
	MainShnqTitle   string   `json:"mainShnqTitle" gorm:"not null"`
	AdditionalShnqs []string `json:"additionalShnqs" gorm:"serializer:json"`
	File            *string  `json:"file"`
}

// TechnicalRegulation represents a technical regulation entry
type TechnicalRegulation struct {
	sql.BaseModel
	Code        string  `json:"code" gorm:"not null;uniqueIndex"`
	Title       string  `json:"title" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
	Link        *string `json:"link"`
}

// Reference represents a reference document entry
type Reference struct {
	sql.BaseModel
	Number string  `json:"number" gorm:"not null"`
	Title  string  `json:"title" gorm:"not null"`
	Link   *string `json:"link"`
}
