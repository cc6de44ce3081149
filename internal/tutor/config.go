package tutor

// Config holds generation settings for plan and daily-content calls.
// Follow-up questions intentionally use the provider's default
// temperature, so only plan/daily generation reads Temperature.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for study-plan generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
