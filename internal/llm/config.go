// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between model tiers and future multi-provider support.
package llm

// ModelTier identifies a slot in the model fallback chain
type ModelTier string

const (
	// TierPrimary is the default model: cheaper and with fewer quota issues
	TierPrimary ModelTier = "primary"
	// TierFallback is tried when the primary model is rate limited
	TierFallback ModelTier = "fallback"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic is the Anthropic/Claude provider (future)
	ProviderAnthropic Provider = "anthropic"
)

// DefaultTemperature is used when the caller does not specify one
const DefaultTemperature float32 = 0.35

// ExtractionTemperature is used for deterministic structured extraction
const ExtractionTemperature float32 = 0.2

// Config holds the model configuration for the application
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	MaxOutputTokens int32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierPrimary:  "gemini-1.5-flash",
			TierFallback: "gemini-1.5-pro",
		},
		MaxOutputTokens: 800,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return ""
}

// ModelChain returns the models to try in order: primary first, then fallback
func (c *Config) ModelChain() []string {
	var chain []string
	for _, tier := range []ModelTier{TierPrimary, TierFallback} {
		if model := c.GetModel(tier); model != "" {
			chain = append(chain, model)
		}
	}
	return chain
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:        c.Provider,
		Models:          make(map[ModelTier]string),
		MaxOutputTokens: c.MaxOutputTokens,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// ClampTemperature bounds a temperature to the valid [0, 1] range
func ClampTemperature(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
