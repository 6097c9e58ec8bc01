// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between providers without touching the
// extraction code that sits on top of it.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGroq is the Groq OpenAI-compatible provider (default)
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultConfig returns the default configuration (currently Groq)
func DefaultConfig() *Config {
	return DefaultGroqConfig()
}

// DefaultGroqConfig returns the default Groq configuration
func DefaultGroqConfig() *Config {
	return &Config{
		Provider:    ProviderGroq,
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.1,
		MaxTokens:   8000,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.5-flash",
		Temperature: 0.1,
		MaxTokens:   8000,
	}
}
