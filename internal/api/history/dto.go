package history

type AppendHistoryRequest struct {
	RawInput      string `json:"rawInput" binding:"required"`
	RefinedPrompt string `json:"refinedPrompt" binding:"required"`
	TemplateID    string `json:"templateId" binding:"required"`
}
