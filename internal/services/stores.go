package services

import (
	"github.com/ArvisPrime/promptgen/internal/localstore"
	"github.com/ArvisPrime/promptgen/internal/models"
)

// HistoryRepository is the ledger of past refinements. Append-only from the
// caller's perspective, plus a bulk clear.
type HistoryRepository interface {
	Append(rawInput, refinedPrompt, templateID string) (localstore.HistoryItem, error)
	List() []localstore.HistoryItem
	Clear() error
}

// CustomTemplateRepository holds user-created templates kept out of the
// relational store.
type CustomTemplateRepository interface {
	Add(t models.Template) (models.Template, error)
	List() []models.Template
	Clear() error
}

// Wired at startup (and replaced in tests), like database.DB.
var (
	History         HistoryRepository
	CustomTemplates CustomTemplateRepository
	Chat            ChatClient

	// DefaultModel is used when a request carries no targetModel override.
	DefaultModel = "gpt-4"
)
