// Package llm provides the Gemini client used to generate optimized
// resume Markdown, behind a small provider-agnostic interface.
package llm

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite is for simple transformations and cleanup passes.
	TierLite ModelTier = "lite"
	// TierStandard is for resume generation, the default here.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for heavy rewriting that needs reasoning.
	TierAdvanced ModelTier = "advanced"
)

// Config maps model tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// Model returns the model name for a tier, falling back down the tier
// ladder when the requested one is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	for _, fallback := range []ModelTier{TierStandard, TierLite} {
		if model, ok := c.Models[fallback]; ok {
			return model
		}
	}
	return ""
}
