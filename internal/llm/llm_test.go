package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestDefaultGeminiConfig(t *testing.T) {
	config := DefaultGeminiConfig()
	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-1.5-flash", config.GetModel(TierPrimary))
	assert.Equal(t, "gemini-1.5-pro", config.GetModel(TierFallback))
}

func TestModelChain_Order(t *testing.T) {
	config := DefaultGeminiConfig()
	assert.Equal(t, []string{"gemini-1.5-flash", "gemini-1.5-pro"}, config.ModelChain())
}

func TestModelChain_MissingFallback(t *testing.T) {
	config := &Config{Models: map[ModelTier]string{TierPrimary: "gemini-1.5-flash"}}
	assert.Equal(t, []string{"gemini-1.5-flash"}, config.ModelChain())
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	config := DefaultGeminiConfig()
	custom := config.WithModel(TierPrimary, "gemini-2.0-flash")
	assert.Equal(t, "gemini-2.0-flash", custom.GetModel(TierPrimary))
	assert.Equal(t, "gemini-1.5-flash", config.GetModel(TierPrimary))
	assert.Equal(t, "gemini-1.5-pro", custom.GetModel(TierFallback))
}

func TestClampTemperature(t *testing.T) {
	assert.Equal(t, float32(0), ClampTemperature(-0.5))
	assert.Equal(t, float32(1), ClampTemperature(1.5))
	assert.Equal(t, float32(0.35), ClampTemperature(0.35))
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock(`{"a":1}`))
}

func TestExtractJSONObject(t *testing.T) {
	obj, ok := ExtractJSONObject("Sure, here it is:\n{\"role\": \"Engineer\"}\nHope that helps.")
	assert.True(t, ok)
	assert.Equal(t, `{"role": "Engineer"}`, obj)

	_, ok = ExtractJSONObject("no json here")
	assert.False(t, ok)

	obj, ok = ExtractJSONObject(`{"outer": {"inner": 1}}`)
	assert.True(t, ok)
	assert.Equal(t, `{"outer": {"inner": 1}}`, obj)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(&googleapi.Error{Code: 429}))
	assert.True(t, isRateLimited(errors.New("googleapi: Error 429: Resource exhausted")))
	assert.True(t, isRateLimited(errors.New("Quota exceeded for model")))
	assert.False(t, isRateLimited(errors.New("invalid request")))
	assert.False(t, isRateLimited(nil))
}

func TestIsQuotaExceeded(t *testing.T) {
	err := &GenerationError{Message: "failed to generate content", Quota: true}
	assert.True(t, IsQuotaExceeded(err))
	assert.False(t, IsQuotaExceeded(&GenerationError{Message: "failed"}))
	assert.False(t, IsQuotaExceeded(errors.New("other")))
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &GenerationError{Message: "failed to generate content", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to generate content: boom", err.Error())
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), DefaultGeminiConfig(), "")
	assert.Error(t, err)
}
