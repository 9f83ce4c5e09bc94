package services

import (
	"encoding/json"
	"time"

	"github.com/ArvisPrime/promptgen/internal/database"
	"github.com/ArvisPrime/promptgen/internal/models"
)

const (
	FeaturedPromptsCacheKey      = "prompts:featured"
	FeaturedPromptsCacheDuration = 1 * time.Hour
)

// ListFeaturedPrompts retrieves the curated prompts flagged as featured,
// with caching. There is no mutation path for global prompts.
func ListFeaturedPrompts() ([]models.GlobalPrompt, error) {
	// Try cache
	val, err := database.RedisClient.Get(database.Ctx, FeaturedPromptsCacheKey).Result()
	if err == nil {
		var cached []models.GlobalPrompt
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	var prompts []models.GlobalPrompt
	if err := database.DB.Where("is_featured = ?", true).Find(&prompts).Error; err != nil {
		return nil, err
	}

	// Set cache
	if data, err := json.Marshal(prompts); err == nil {
		database.RedisClient.Set(database.Ctx, FeaturedPromptsCacheKey, data, FeaturedPromptsCacheDuration)
	}

	return prompts, nil
}
