package localstore

import (
	"testing"

	"github.com/ArvisPrime/promptgen/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCustomTemplateAdd(t *testing.T) {
	store := newTestStore(t)
	cts, err := NewCustomTemplateStore(store)
	assert.NoError(t, err)

	created, err := cts.Add(models.Template{
		Name:      "Mine",
		Structure: "Summarize [TOPIC] briefly.",
		Category:  models.TemplateCategoryGeneral,
		IsDefault: true, // must be forced off
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsDefault)
	assert.False(t, created.CreatedAt.IsZero())

	second, err := cts.Add(models.Template{
		Name:      "Second",
		Structure: "Explain [SUBJECT].",
		Category:  models.TemplateCategoryTechnical,
	})
	assert.NoError(t, err)

	items := cts.List()
	assert.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, created.ID, items[1].ID)
}

func TestCustomTemplateClear(t *testing.T) {
	store := newTestStore(t)
	cts, err := NewCustomTemplateStore(store)
	assert.NoError(t, err)

	_, err = cts.Add(models.Template{Name: "Mine", Structure: "x", Category: models.TemplateCategoryGeneral})
	assert.NoError(t, err)

	assert.NoError(t, cts.Clear())
	assert.Len(t, cts.List(), 0)

	// Reload sees the cleared state
	reloaded, err := NewCustomTemplateStore(store)
	assert.NoError(t, err)
	assert.Len(t, reloaded.List(), 0)
}

func TestStoreGetDefaultFallback(t *testing.T) {
	store := newTestStore(t)

	settings := map[string]string{"theme": "dark"}
	found, err := store.Get(KeyUserSettings, &settings)
	assert.NoError(t, err)
	assert.False(t, found)
	// Default untouched when the key was never written
	assert.Equal(t, "dark", settings["theme"])

	assert.NoError(t, store.Set(KeyUserSettings, map[string]string{"theme": "light"}))
	found, err = store.Get(KeyUserSettings, &settings)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", settings["theme"])
}
