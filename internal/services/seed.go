package services

import "github.com/ArvisPrime/promptgen/internal/models"

// The default template set inserted by the seed step. Store-backed templates
// are read-only afterwards.
var defaultTemplates = []models.Template{
	{
		Name:        "General Purpose",
		Description: "Balanced prompts for most use cases",
		Structure:   "I need information about [TOPIC]. Please provide a [DETAIL_LEVEL] explanation covering [ASPECTS]. Format the response as [FORMAT].",
		Category:    models.TemplateCategoryGeneral,
		IsDefault:   true,
		Placeholders: models.JSON{
			"TOPIC":        "the subject matter",
			"DETAIL_LEVEL": "detailed",
			"ASPECTS":      "key aspects",
			"FORMAT":       "a well-structured document with appropriate headings",
		},
	},
	{
		Name:        "Creative Writing",
		Description: "For storytelling and creative content",
		Structure:   "Write a [GENRE] about [SUBJECT] that includes [ELEMENTS]. The tone should be [TONE] and the length approximately [LENGTH].",
		Category:    models.TemplateCategoryCreative,
		IsDefault:   true,
		Placeholders: models.JSON{
			"GENRE":    "creative piece",
			"SUBJECT":  "the subject matter",
			"ELEMENTS": "engaging elements",
			"TONE":     "balanced",
			"LENGTH":   "appropriate length",
		},
	},
	{
		Name:        "Technical Documentation",
		Description: "For technical explanations and documentation",
		Structure:   "Explain [TECHNOLOGY] in [DETAIL_LEVEL] detail. Include [SPECIFIC_ASPECTS] and provide [CODE_EXAMPLES] if relevant. Target audience is [AUDIENCE].",
		Category:    models.TemplateCategoryTechnical,
		IsDefault:   true,
		Placeholders: models.JSON{
			"TECHNOLOGY":       "the technical concept",
			"DETAIL_LEVEL":     "comprehensive",
			"SPECIFIC_ASPECTS": "key components and principles",
			"CODE_EXAMPLES":    "practical code examples",
			"AUDIENCE":         "professionals with domain knowledge",
		},
	},
	{
		Name:        "Analysis & Research",
		Description: "For analytical thinking and research",
		Structure:   "Analyze [SUBJECT] from [PERSPECTIVES]. Consider [FACTORS] and their relationships. Provide [DATA_POINTS] to support the analysis and suggest [RECOMMENDATIONS].",
		Category:    models.TemplateCategoryAnalytical,
		IsDefault:   true,
		Placeholders: models.JSON{
			"SUBJECT":         "the subject matter",
			"PERSPECTIVES":    "relevant perspectives",
			"FACTORS":         "key factors",
			"DATA_POINTS":     "supporting evidence",
			"RECOMMENDATIONS": "actionable recommendations",
		},
	},
	{
		Name:        "Educational Content",
		Description: "For teaching and tutorials",
		Structure:   "Create a lesson on [TOPIC] for [AUDIENCE_LEVEL] students. Include [CONCEPTS], [EXAMPLES], and [EXERCISES]. The learning objective is [OBJECTIVE].",
		Category:    models.TemplateCategoryInstructional,
		IsDefault:   true,
		Placeholders: models.JSON{
			"TOPIC":          "the subject matter",
			"AUDIENCE_LEVEL": "intermediate",
			"CONCEPTS":       "fundamental concepts",
			"EXAMPLES":       "practical examples",
			"EXERCISES":      "engaging exercises",
			"OBJECTIVE":      "comprehensive understanding",
		},
	},
	{
		Name:        "Business Communication",
		Description: "For professional documents",
		Structure:   "Draft a [DOCUMENT_TYPE] regarding [SUBJECT]. Include [KEY_POINTS], address [STAKEHOLDERS], and recommend [ACTIONS]. The communication style should be [STYLE].",
		Category:    models.TemplateCategoryBusiness,
		IsDefault:   true,
		Placeholders: models.JSON{
			"DOCUMENT_TYPE": "business document",
			"SUBJECT":       "the subject matter",
			"KEY_POINTS":    "essential information",
			"STAKEHOLDERS":  "relevant parties",
			"ACTIONS":       "next steps",
			"STYLE":         "professional",
		},
	},
}
