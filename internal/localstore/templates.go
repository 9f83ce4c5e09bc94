package localstore

import (
	"sync"
	"time"

	"github.com/ArvisPrime/promptgen/internal/models"
	"github.com/google/uuid"
)

// CustomTemplateStore holds user-created templates under the customTemplates
// key. These never reach the relational store; the only mutations are a
// prepend on create and a bulk clear.
type CustomTemplateStore struct {
	store *Store
	mu    sync.Mutex
	items []models.Template
}

// NewCustomTemplateStore loads persisted custom templates, defaulting to empty.
func NewCustomTemplateStore(store *Store) (*CustomTemplateStore, error) {
	c := &CustomTemplateStore{store: store, items: []models.Template{}}
	if _, err := store.Get(KeyCustomTemplates, &c.items); err != nil {
		return nil, err
	}
	return c, nil
}

// Add assigns an identifier and timestamps, forces IsDefault off, prepends
// the template and persists the full list before publishing it.
func (c *CustomTemplateStore) Add(t models.Template) (models.Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.IsDefault = false
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Placeholders == nil {
		t.Placeholders = models.JSON{}
	}

	updated := make([]models.Template, 0, len(c.items)+1)
	updated = append(updated, t)
	updated = append(updated, c.items...)

	if err := c.store.Set(KeyCustomTemplates, updated); err != nil {
		return models.Template{}, err
	}
	c.items = updated
	return t, nil
}

// List returns a copy of the custom templates, most-recent-first.
func (c *CustomTemplateStore) List() []models.Template {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Template, len(c.items))
	copy(out, c.items)
	return out
}

// Clear removes all custom templates and their persisted record.
func (c *CustomTemplateStore) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Remove(KeyCustomTemplates); err != nil {
		return err
	}
	c.items = []models.Template{}
	return nil
}
