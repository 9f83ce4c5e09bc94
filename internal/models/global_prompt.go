package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GlobalPrompt is a curated prompt entry. Rows are read-only from the
// application's perspective; the featured listing filters on is_featured.
type GlobalPrompt struct {
	ID            string         `gorm:"primarykey;type:text" json:"id"`
	Title         string         `json:"title"`
	RawInput      string         `gorm:"type:text;not null" json:"raw_input"`
	RefinedPrompt string         `gorm:"type:text;not null" json:"refined_prompt"`
	Category      string         `gorm:"index" json:"category"`
	TargetModel   string         `json:"target_model"`
	Settings      datatypes.JSON `gorm:"type:json" json:"settings" swaggertype:"object"`
	IsFeatured    bool           `gorm:"index" json:"is_featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (p *GlobalPrompt) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name
func (GlobalPrompt) TableName() string {
	return "global_prompts"
}
