// Package luckyservice asks a generative language model for lucky lottery
// numbers that match a free text prompt.
package luckyservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

const promptTemplate = "Based on the following user prompt, generate a set of 6 unique 5-digit lucky lottery numbers. " +
	"Provide a creative and positive reasoning for your choices. User prompt: %q"

//go:generate mockgen -destination=mock_luckyservice.go -package=luckyservice . HTTPClient
type HTTPClient interface {
	Post(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, error)
}

type Suggestion struct {
	Numbers   []string
	Reasoning string
}

type Service struct {
	client HTTPClient
	url    string
	apiKey string
}

func New(client HTTPClient, url, apiKey string) *Service {
	return &Service{
		client: client,
		url:    url,
		apiKey: apiKey,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Items       *schema           `json:"items,omitempty"`
	Properties  map[string]schema `json:"properties,omitempty"`
	Required    []string          `json:"required,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
	ResponseSchema   schema `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type suggestionPayload struct {
	Numbers   []string `json:"numbers"`
	Reasoning *string  `json:"reasoning"`
}

var responseSchema = schema{
	Type: "OBJECT",
	Properties: map[string]schema{
		"numbers": {
			Type:        "ARRAY",
			Description: "An array of 6 unique 5-digit lottery numbers as strings.",
			Items:       &schema{Type: "STRING", Description: "A 5-digit lottery number."},
		},
		"reasoning": {
			Type:        "STRING",
			Description: "A short, creative, and positive explanation for why these numbers were chosen based on the user's prompt.",
		},
	},
	Required: []string{"numbers", "reasoning"},
}

func buildRequest(prompt string) ([]byte, error) {
	return json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, prompt)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseResponse(body []byte) (*Suggestion, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	text := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	var payload suggestionPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}
	if len(payload.Numbers) == 0 || payload.Reasoning == nil {
		return nil, fmt.Errorf("suggestion is missing fields")
	}
	for _, n := range payload.Numbers {
		if !isDigits(n) {
			return nil, fmt.Errorf("suggested number %q is not numeric", n)
		}
	}
	return &Suggestion{Numbers: payload.Numbers, Reasoning: *payload.Reasoning}, nil
}

// Suggest makes exactly one upstream call. Every upstream or decoding
// failure is reported as domain.ErrSuggestionUnavailable.
func (s *Service) Suggest(ctx context.Context, prompt string) (*Suggestion, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domain.NewValidationError("prompt", "is required")
	}

	body, err := buildRequest(prompt)
	if err != nil {
		zap.L().Error("can't encode suggestion request", zap.Error(err))
		return nil, domain.ErrSuggestionUnavailable
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		headers.Set("x-goog-api-key", s.apiKey)
	}

	status, respBody, err := s.client.Post(ctx, s.url, headers, body)
	if err != nil {
		zap.L().Error("suggestion request failed", zap.Error(err))
		return nil, domain.ErrSuggestionUnavailable
	}
	if status != http.StatusOK {
		zap.L().Error("suggestion request rejected", zap.Int("status", status))
		return nil, domain.ErrSuggestionUnavailable
	}

	suggestion, err := parseResponse(respBody)
	if err != nil {
		zap.L().Error("can't parse suggestion", zap.Error(err))
		return nil, domain.ErrSuggestionUnavailable
	}
	return suggestion, nil
}
