package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArvisPrime/promptgen/internal/utils"
	"github.com/go-resty/resty/v2"
)

// ChatMessage is a single role/content entry in a chat completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatClient dispatches a single chat-style round-trip to the generative
// backend. An empty returned string with a nil error means the backend
// answered without extractable content; callers decide how to surface that.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, model string, messages []ChatMessage) (string, error)
}

// OpenAIClient talks to an OpenAI-compatible chat completions endpoint.
// One request, one response: no retry, no streaming.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	http    *resty.Client
}

func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	c := resty.NewWithClient(utils.NewHTTPClient(60 * time.Second))
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    c,
	}
}

func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	var out ChatCompletionResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.apiKey).
		SetBody(ChatCompletionRequest{Model: model, Messages: messages, Stream: false}).
		SetResult(&out).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion: %s; body: %s", resp.Status(), resp.String())
	}

	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}
