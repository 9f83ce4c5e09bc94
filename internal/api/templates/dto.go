package templates

import "github.com/ArvisPrime/promptgen/internal/models"

type CreateTemplateRequest struct {
	Name         string      `json:"name" binding:"required"`
	Description  string      `json:"description"`
	Structure    string      `json:"structure" binding:"required"`
	Category     string      `json:"category" binding:"required,oneof=general creative technical analytical instructional business"`
	Placeholders models.JSON `json:"placeholders" swaggertype:"object"`
}
