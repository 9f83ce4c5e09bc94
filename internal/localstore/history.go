package localstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// HistoryLimit caps the ledger; the oldest entries are evicted on append.
const HistoryLimit = 200

// HistoryItem is a saved refinement, most-recent-first in the ledger.
// TemplateID is a weak reference: the template must exist when the item is
// created but may disappear later.
type HistoryItem struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	RawInput      string `json:"rawInput"`
	RefinedPrompt string `json:"refinedPrompt"`
	TemplateID    string `json:"templateId"`
}

// HistoryLedger is an append-only (plus bulk clear) list of past refinements
// persisted under the promptHistory key.
type HistoryLedger struct {
	store *Store
	mu    sync.Mutex
	items []HistoryItem
}

// NewHistoryLedger loads the persisted ledger, defaulting to empty.
func NewHistoryLedger(store *Store) (*HistoryLedger, error) {
	l := &HistoryLedger{store: store, items: []HistoryItem{}}
	if _, err := store.Get(KeyPromptHistory, &l.items); err != nil {
		return nil, err
	}
	return l, nil
}

// Append constructs a new record and prepends it. The full sequence is
// persisted first; memory is only updated once the write succeeded.
func (l *HistoryLedger) Append(rawInput, refinedPrompt, templateID string) (HistoryItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item := HistoryItem{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		RawInput:      rawInput,
		RefinedPrompt: refinedPrompt,
		TemplateID:    templateID,
	}

	updated := make([]HistoryItem, 0, len(l.items)+1)
	updated = append(updated, item)
	updated = append(updated, l.items...)
	if len(updated) > HistoryLimit {
		updated = updated[:HistoryLimit]
	}

	if err := l.store.Set(KeyPromptHistory, updated); err != nil {
		return HistoryItem{}, err
	}
	l.items = updated
	return item, nil
}

// List returns a copy of the ledger, most-recent-first.
func (l *HistoryLedger) List() []HistoryItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]HistoryItem, len(l.items))
	copy(out, l.items)
	return out
}

// Clear empties the ledger and removes the persisted record.
func (l *HistoryLedger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Remove(KeyPromptHistory); err != nil {
		return err
	}
	l.items = []HistoryItem{}
	return nil
}
