// Package llm implements the analysis provider boundary against
// OpenAI-compatible chat-completion APIs.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/commitlens/commitlens/internal/domain/entities"
	"github.com/commitlens/commitlens/internal/domain/repositories"
)

const (
	providerName = "openai"
	callTimeout  = 60 * time.Second
	maxTokens    = 1000
)

// ErrEmptyCompletion indicates the API answered 200 with no choices.
var ErrEmptyCompletion = errors.New("provider returned an empty completion")

// OpenAIFactory builds OpenAI providers from runtime LLM settings.
type OpenAIFactory struct{}

// NewOpenAIFactory creates a new OpenAIFactory.
func NewOpenAIFactory() repositories.AnalyzerFactory {
	return &OpenAIFactory{}
}

// Create returns a provider bound to the given settings.
func (it *OpenAIFactory) Create(settings entities.LLMSettings) repositories.AnalyzerRepository {
	return &OpenAIRepository{
		endpoint: settings.Endpoint,
		model:    settings.Model,
		apiKey:   settings.APIKey,
		client:   &http.Client{Timeout: callTimeout},
	}
}

// OpenAIRepository implements repositories.AnalyzerRepository against a
// chat-completions endpoint.
type OpenAIRepository struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

func (it *OpenAIRepository) Name() string { return providerName }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Analyze sends the prompts to the chat-completions endpoint and returns
// the first completion.
func (it *OpenAIRepository) Analyze(
	ctx context.Context,
	systemPrompt, userPrompt string,
) (string, error) {
	payload := chatRequest{
		Model: it.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, reqErr := http.NewRequestWithContext(
		ctx, http.MethodPost, it.endpoint, bytes.NewReader(body),
	)
	if reqErr != nil {
		return "", fmt.Errorf("failed to build completion request: %w", reqErr)
	}
	req.Header.Set("Authorization", "Bearer "+it.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := it.client.Do(req)
	if doErr != nil {
		return "", fmt.Errorf("failed to reach %q: %w", it.endpoint, doErr)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return "", fmt.Errorf("failed to read completion response: %w", readErr)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned %s: %s", resp.Status, string(raw))
	}

	var parsed chatResponse
	if unmarshalErr := json.Unmarshal(raw, &parsed); unmarshalErr != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", unmarshalErr)
	}

	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return parsed.Choices[0].Message.Content, nil
}
