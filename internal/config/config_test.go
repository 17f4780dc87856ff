package config

import (
	"os"
	"reflect"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
		{"trims whitespace", "TEST_VAR_3", "  spaced  ", "default", "spaced"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsListOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected []string
	}{
		{"single origin", "http://localhost:5173", []string{"http://localhost:5173"}},
		{"comma separated", "https://a.example, https://b.example", []string{"https://a.example", "https://b.example"}},
		{"only separators", " , ,", []string{"*"}},
		{"unset", "", []string{"*"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_LIST", tc.envValue)

			result := getEnvAsListOrDefault("TEST_LIST", []string{"*"})
			if !reflect.DeepEqual(result, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestLoad_MissingAPIKeyIsNotFatal(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")

	cfg := Load()

	if cfg.GeminiAPIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.Port != "5050" {
		t.Errorf("Expected default port 5050, got %q", cfg.Port)
	}
	if cfg.IsDevelopment() {
		t.Error("Expected production mode by default")
	}
	if cfg.MaxBodyBytes != 100<<10 {
		t.Errorf("Expected 100kb body limit, got %d", cfg.MaxBodyBytes)
	}
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"Development", true},
		{"production", false},
		{"test", false},
	}

	for _, tc := range tests {
		t.Run(tc.env, func(t *testing.T) {
			cfg := &Config{Env: tc.env}
			if cfg.IsDevelopment() != tc.expected {
				t.Errorf("IsDevelopment(%q) = %v, want %v", tc.env, !tc.expected, tc.expected)
			}
		})
	}
}
