package config

import "os"

// GroqModels defines which Groq models to use for different tasks
type GroqModels struct {
	// Generate is for study artifact generation (quality matters,
	// latency is hidden behind async notification)
	Generate string `json:"generate"`

	// Chat is for conversational answers over notebook context
	Chat string `json:"chat"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string     `json:"-"` // Never serialize
	BaseURL   string     `json:"baseUrl"`
	Models    GroqModels `json:"models"`
	TimeoutMS int        `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GROQ_API_KEY"),
		BaseURL: "https://api.groq.com/openai/v1",
		Models: GroqModels{
			Generate: getEnvOrDefault("GROQ_MODEL_GENERATE", "llama-3.3-70b-versatile"),
			Chat:     getEnvOrDefault("GROQ_MODEL_CHAT", "llama-3.3-70b-versatile"),
		},
		TimeoutMS: 30000,
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatCompletionsEndpoint returns the chat completions URL
func (c *AIConfig) ChatCompletionsEndpoint() string {
	return c.BaseURL + "/chat/completions"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
