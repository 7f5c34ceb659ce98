package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
}

func TestGetModelFallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
		},
	}

	// Missing tier falls back to standard
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierLite))

	config = &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "gemini-2.5-flash-lite",
		},
	}

	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierStandard))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel(TierLite, "gemini-2.0-flash")

	assert.Equal(t, "gemini-2.0-flash", custom.GetModel(TierLite))
	// Original is unchanged
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	// Other tiers carried over
	assert.Equal(t, "gemini-2.5-flash", custom.GetModel(TierStandard))
}
