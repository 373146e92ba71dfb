package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadLLMConfigViperPrecedence(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("llm.provider", "openai")
	viper.Set("llm.api_key", "from-config")
	viper.Set("llm.model", "gpt-4o")
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg := LoadLLMConfig()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "from-config", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
}

func TestLoadLLMConfigEnvFallback(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg := LoadLLMConfig()
	assert.Equal(t, "gemini-key", cfg.APIKey)
}

func TestLoadLLMConfigNoCredential(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := LoadLLMConfig()
	assert.Empty(t, cfg.APIKey)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("PAYDECK_TEST_DIR", "/tmp/paydeck")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "/var/lib/paydeck.db", want: "/var/lib/paydeck.db"},
		{name: "env var", in: "$PAYDECK_TEST_DIR/paydeck.db", want: "/tmp/paydeck/paydeck.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
