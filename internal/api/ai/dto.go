package ai

type GenerateRequest struct {
	TemplateID  string `json:"templateId" binding:"required"`
	RawInput    string `json:"rawInput" binding:"required"`
	TargetModel string `json:"targetModel"`
}

type GenerateResponse struct {
	RefinedPrompt string `json:"refinedPrompt"`
}

type TestPromptRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	TargetModel string `json:"targetModel"`
}

type TestPromptResponse struct {
	Completion string `json:"completion"`
}
