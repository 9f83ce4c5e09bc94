package services

import (
	"context"
	"errors"

	"github.com/ArvisPrime/promptgen/internal/database"
	"github.com/ArvisPrime/promptgen/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoContent        = errors.New("no content returned from model")
	ErrNoResponse       = errors.New("no response from AI")
)

const (
	refineSystemPrompt = "You are a helpful assistant for prompt engineering."
	testSystemPrompt   = "You are an AI assistant."
)

// GeneratePrompt runs the refinement pipeline: template lookup, placeholder
// substitution, one chat round-trip, first-choice extraction. Lookup checks
// the relational store first, then the local custom templates.
func GeneratePrompt(ctx context.Context, templateID, rawInput, targetModel string) (string, error) {
	structure, err := lookupStructure(templateID)
	if err != nil {
		return "", err
	}

	promptText := Substitute(structure, rawInput)

	content, err := Chat.CreateChatCompletion(ctx, modelOrDefault(targetModel), []ChatMessage{
		{Role: "system", Content: refineSystemPrompt},
		{Role: "user", Content: promptText},
	})
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", ErrNoContent
	}
	return content, nil
}

// TestPrompt sends an arbitrary prompt straight to the backend so the user
// can preview model behavior. No substitution, generic assistant role.
func TestPrompt(ctx context.Context, prompt, targetModel string) (string, error) {
	content, err := Chat.CreateChatCompletion(ctx, modelOrDefault(targetModel), []ChatMessage{
		{Role: "system", Content: testSystemPrompt},
		{Role: "user", Content: prompt},
	})
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", ErrNoResponse
	}
	return content, nil
}

func lookupStructure(templateID string) (string, error) {
	var tpl models.Template
	err := database.DB.Where("id = ?", templateID).First(&tpl).Error
	if err == nil {
		return tpl.Structure, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	for _, t := range CustomTemplates.List() {
		if t.ID == templateID {
			return t.Structure, nil
		}
	}
	return "", ErrTemplateNotFound
}

func modelOrDefault(targetModel string) string {
	if targetModel == "" {
		return DefaultModel
	}
	return targetModel
}
