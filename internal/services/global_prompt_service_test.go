package services

import (
	"testing"

	"github.com/ArvisPrime/promptgen/internal/database"
	"github.com/ArvisPrime/promptgen/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListFeaturedPromptsFiltersOnFlag(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	database.DB.Create(&models.GlobalPrompt{Title: "Featured", RawInput: "in", RefinedPrompt: "out", IsFeatured: true})
	database.DB.Create(&models.GlobalPrompt{Title: "Hidden", RawInput: "in", RefinedPrompt: "out", IsFeatured: false})

	prompts, err := ListFeaturedPrompts()
	assert.NoError(t, err)
	assert.Len(t, prompts, 1)
	assert.Equal(t, "Featured", prompts[0].Title)
	assert.True(t, prompts[0].IsFeatured)
}
