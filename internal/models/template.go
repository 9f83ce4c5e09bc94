package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateCategory string

const (
	TemplateCategoryGeneral       TemplateCategory = "general"
	TemplateCategoryCreative      TemplateCategory = "creative"
	TemplateCategoryTechnical     TemplateCategory = "technical"
	TemplateCategoryAnalytical    TemplateCategory = "analytical"
	TemplateCategoryInstructional TemplateCategory = "instructional"
	TemplateCategoryBusiness      TemplateCategory = "business"
)

// Template represents a prompt template. The structure string may contain
// bracketed placeholder tokens like [TOPIC]; the Placeholders map documents
// their default meanings and is not consulted at generation time.
type Template struct {
	ID           string           `gorm:"primarykey;type:text" json:"id"`
	Name         string           `gorm:"index;not null" json:"name"`
	Description  string           `json:"description"`
	Structure    string           `gorm:"type:text;not null" json:"structure"`
	Category     TemplateCategory `gorm:"index;not null;default:'general'" json:"category"`
	IsDefault    bool             `gorm:"index" json:"is_default"`
	Placeholders JSON             `gorm:"type:json;not null;default:'{}'" json:"placeholders"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// BeforeCreate assigns a stable identifier when none was supplied.
func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// ValidateTemplateCategory checks membership of the fixed category enumeration
func ValidateTemplateCategory(category TemplateCategory) error {
	switch category {
	case TemplateCategoryGeneral, TemplateCategoryCreative, TemplateCategoryTechnical,
		TemplateCategoryAnalytical, TemplateCategoryInstructional, TemplateCategoryBusiness:
		return nil
	}
	return fmt.Errorf("invalid template category: %q", category)
}
