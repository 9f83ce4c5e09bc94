package services

import (
	"encoding/json"
	"time"

	"github.com/ArvisPrime/promptgen/internal/database"
	"github.com/ArvisPrime/promptgen/internal/models"
	"github.com/ArvisPrime/promptgen/pkg/logger"
	"gorm.io/gorm"
)

const (
	TemplatesCacheKey      = "templates:all"
	TemplatesCacheDuration = 5 * time.Minute
)

// ListTemplates returns the store-backed templates followed by the locally
// created ones, concatenated without deduplication. The store-backed part is
// served from cache within the freshness window.
func ListTemplates() ([]models.Template, error) {
	stored, err := storeBackedTemplates()
	if err != nil {
		return nil, err
	}

	custom := CustomTemplates.List()
	out := make([]models.Template, 0, len(stored)+len(custom))
	out = append(out, stored...)
	out = append(out, custom...)
	return out, nil
}

func storeBackedTemplates() ([]models.Template, error) {
	// Try cache
	val, err := database.RedisClient.Get(database.Ctx, TemplatesCacheKey).Result()
	if err == nil {
		var cached []models.Template
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	// Fetch from DB
	var templates []models.Template
	if err := database.DB.Order("created_at asc").Find(&templates).Error; err != nil {
		return nil, err
	}

	// Set cache
	if data, err := json.Marshal(templates); err == nil {
		database.RedisClient.Set(database.Ctx, TemplatesCacheKey, data, TemplatesCacheDuration)
	}

	return templates, nil
}

// CreateCustomTemplate validates and stores a user-created template in local
// storage only. The relational store is never written outside seeding.
func CreateCustomTemplate(name, description, structure string, category models.TemplateCategory, placeholders models.JSON) (models.Template, error) {
	if err := models.ValidateTemplateCategory(category); err != nil {
		return models.Template{}, err
	}

	return CustomTemplates.Add(models.Template{
		Name:         name,
		Description:  description,
		Structure:    structure,
		Category:     category,
		Placeholders: placeholders,
	})
}

// ClearCustomTemplates drops all locally created templates; store-backed
// templates are untouched.
func ClearCustomTemplates() error {
	return CustomTemplates.Clear()
}

// SeedDefaultTemplates inserts the default template set once. Subsequent
// startups are no-ops.
func SeedDefaultTemplates() error {
	var count int64
	if err := database.DB.Model(&models.Template{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Log.Info("default templates already seeded")
		return nil
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i := range defaultTemplates {
			t := defaultTemplates[i]
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	database.RedisClient.Del(database.Ctx, TemplatesCacheKey)
	logger.Log.Info("seeded default templates")
	return nil
}
