package generator

// Config tunes course generation requests.
type Config struct {
	// MaxTokens bounds the course content response. Full courses run long.
	MaxTokens int

	// TitleMaxTokens bounds the title-only request.
	TitleMaxTokens int

	Temperature float64
}

// DefaultConfig returns generation defaults sized for a full course.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      65536,
		TitleMaxTokens: 256,
		Temperature:    0.7,
	}
}
