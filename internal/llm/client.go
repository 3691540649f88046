package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GenerationError represents an error from a content generation call
type GenerationError struct {
	Message string
	Cause   error
	// Quota is true when every model in the chain was rate limited
	Quota bool
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// IsQuotaExceeded reports whether err is a generation error caused by
// rate limiting or quota exhaustion
func IsQuotaExceeded(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr) && genErr.Quota
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content at the given temperature,
	// walking the model fallback chain on rate limits
	GenerateContent(ctx context.Context, prompt string, temperature float32) (string, error)
	// GenerateJSON generates JSON content at the given temperature
	GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text content at the given temperature
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, temperature float32) (string, error) {
	return c.generate(ctx, prompt, temperature, "")
}

// GenerateJSON generates JSON content at the given temperature
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error) {
	text, err := c.generate(ctx, prompt, temperature, "application/json")
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// generate walks the model chain, moving to the next model only on
// rate limit errors
func (c *GeminiClient) generate(ctx context.Context, prompt string, temperature float32, mimeType string) (string, error) {
	chain := c.config.ModelChain()
	if len(chain) == 0 {
		return "", &GenerationError{Message: "no models configured"}
	}

	var lastErr error
	for _, modelName := range chain {
		model := c.client.GenerativeModel(modelName)
		model.SetTemperature(ClampTemperature(temperature))
		if c.config.MaxOutputTokens > 0 {
			model.SetMaxOutputTokens(c.config.MaxOutputTokens)
		}
		if mimeType != "" {
			model.ResponseMIMEType = mimeType
		}

		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			if isRateLimited(err) {
				continue
			}
			break
		}

		text, err := extractTextFromResponse(resp)
		if err != nil {
			lastErr = err
			break
		}
		if strings.TrimSpace(text) != "" {
			return strings.TrimSpace(text), nil
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("empty response from all models")
	}
	return "", &GenerationError{
		Message: "failed to generate content",
		Cause:   lastErr,
		Quota:   isRateLimited(lastErr),
	}
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// isRateLimited reports whether err indicates HTTP 429 or quota exhaustion
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "quota")
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
