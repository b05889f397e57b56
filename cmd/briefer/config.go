package main

import "github.com/caarlos0/env/v11"

// Config holds environment-sourced configuration. Provider API keys decide
// which backends get registered; an unset key simply leaves that provider
// unavailable.
type Config struct {
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	DBPath          string `env:"BRIEFER_DB"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
