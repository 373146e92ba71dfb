package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/mhartleigh/paydeck/internal/llm"
)

// LoadLLMConfig assembles the assistant client configuration. Precedence:
// 1. Viper configuration (from config file or PAYDECK_ env vars)
// 2. Provider environment variables (GEMINI_API_KEY, OPENAI_API_KEY)
// An empty APIKey is a valid outcome and means no client can be built.
func LoadLLMConfig() llm.Config {
	cfg := llm.Config{
		Provider:    viper.GetString("llm.provider"),
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
	}

	if cfg.APIKey == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			cfg.APIKey = key
		} else {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	return cfg
}

// LLMTimeout returns the configured resolution deadline, or zero when the
// caller should fall back to its default.
func LLMTimeout() time.Duration {
	return viper.GetDuration("llm.timeout")
}
