package llm

import (
	"os"
	"testing"
)

func TestValidateGeminiConfig(t *testing.T) {
	if err := ValidateGeminiConfig(GeminiConfig{}); err == nil {
		t.Error("Expected error when API key is missing")
	}

	if err := ValidateGeminiConfig(GeminiConfig{APIKey: "key", Temperature: 1.5}); err == nil {
		t.Error("Expected error for temperature above 1")
	}

	if err := ValidateGeminiConfig(GeminiConfig{APIKey: "key", MaxOutputTokens: -1}); err == nil {
		t.Error("Expected error for negative max output tokens")
	}

	if err := ValidateGeminiConfig(GeminiConfig{APIKey: "key", TimeoutSeconds: -5}); err == nil {
		t.Error("Expected error for negative timeout")
	}

	if err := ValidateGeminiConfig(GeminiConfig{APIKey: "key"}); err != nil {
		t.Errorf("Expected valid config, got error: %v", err)
	}
}

func TestNewGeminiConfigFromEnv(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-api-key")
	os.Setenv("GEMINI_MODEL", "gemini-2.0-flash-lite")
	os.Setenv("GEMINI_TEMPERATURE", "0.3")
	os.Setenv("GEMINI_TIMEOUT_SECONDS", "15")
	defer func() {
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("GEMINI_MODEL")
		os.Unsetenv("GEMINI_TEMPERATURE")
		os.Unsetenv("GEMINI_TIMEOUT_SECONDS")
	}()

	config := NewGeminiConfigFromEnv()

	if config.APIKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", config.APIKey)
	}
	if config.Model != "gemini-2.0-flash-lite" {
		t.Errorf("Expected model 'gemini-2.0-flash-lite', got '%s'", config.Model)
	}
	if config.Temperature != 0.3 {
		t.Errorf("Expected temperature 0.3, got %f", config.Temperature)
	}
	if config.TimeoutSeconds != 15 {
		t.Errorf("Expected timeout 15, got %d", config.TimeoutSeconds)
	}
}

func TestNewGeminiConfigFromEnvIgnoresInvalidNumbers(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-api-key")
	os.Setenv("GEMINI_TEMPERATURE", "not-a-number")
	os.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "-10")
	defer func() {
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("GEMINI_TEMPERATURE")
		os.Unsetenv("GEMINI_MAX_OUTPUT_TOKENS")
	}()

	config := NewGeminiConfigFromEnv()

	if config.Temperature != 0 {
		t.Errorf("Expected unparseable temperature to stay 0, got %f", config.Temperature)
	}
	if config.MaxOutputTokens != 0 {
		t.Errorf("Expected negative token count to stay 0, got %d", config.MaxOutputTokens)
	}
}
