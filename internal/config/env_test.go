package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "voice-blog/internal/app/errors"
)

func TestGetAPIKeys(t *testing.T) {
	// Save original environment
	originalOpenAI := os.Getenv("OPENAI_API_KEY")
	originalGemini := os.Getenv("GEMINI_API_KEY")
	defer func() {
		os.Setenv("OPENAI_API_KEY", originalOpenAI)
		os.Setenv("GEMINI_API_KEY", originalGemini)
	}()

	testCases := []struct {
		name          string
		openaiKey     string
		geminiKey     string
		expectError   bool
		errorContains string
	}{
		{
			name:        "valid OpenAI key",
			openaiKey:   "sk-1234567890abcdef1234567890abcdef",
			geminiKey:   "",
			expectError: false,
		},
		{
			name:        "valid Gemini key",
			openaiKey:   "",
			geminiKey:   "AIzaTest-1234567890abcdef1234567890",
			expectError: false,
		},
		{
			name:        "both valid keys",
			openaiKey:   "sk-1234567890abcdef1234567890abcdef",
			geminiKey:   "AIzaTest-1234567890abcdef1234567890",
			expectError: false,
		},
		{
			name:          "invalid OpenAI key format",
			openaiKey:     "invalid-key",
			geminiKey:     "",
			expectError:   true,
			errorContains: "invalid OPENAI_API_KEY format",
		},
		{
			name:          "OpenAI key too short",
			openaiKey:     "sk-short",
			geminiKey:     "",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "invalid Gemini key format",
			openaiKey:     "",
			geminiKey:     "invalid-key",
			expectError:   true,
			errorContains: "invalid GEMINI_API_KEY format",
		},
		{
			name:          "Gemini key too short",
			openaiKey:     "",
			geminiKey:     "AIza-short",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:        "empty keys are allowed",
			openaiKey:   "",
			geminiKey:   "",
			expectError: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv("OPENAI_API_KEY", tc.openaiKey)
			os.Setenv("GEMINI_API_KEY", tc.geminiKey)

			apiKeys, err := GetAPIKeys()

			if tc.expectError {
				assert.Error(t, err)
				if tc.errorContains != "" {
					assert.Contains(t, err.Error(), tc.errorContains)
				}
			} else {
				assert.NoError(t, err)
				require.NotNil(t, apiKeys)
				assert.Equal(t, tc.openaiKey, apiKeys.OpenAI)
				assert.Equal(t, tc.geminiKey, apiKeys.Gemini)
			}
		})
	}
}

func TestRequireProviderKey(t *testing.T) {
	withBoth := &APIKeys{
		OpenAI: "sk-1234567890abcdef1234567890abcdef",
		Gemini: "AIzaTest-1234567890abcdef1234567890",
	}
	empty := &APIKeys{}

	testCases := []struct {
		name          string
		provider      string
		apiKeys       *APIKeys
		expectError   bool
		expectKind    apperrors.Kind
		errorContains string
	}{
		{
			name:        "gemini key present",
			provider:    "gemini",
			apiKeys:     withBoth,
			expectError: false,
		},
		{
			name:        "openai key present",
			provider:    "openai",
			apiKeys:     withBoth,
			expectError: false,
		},
		{
			name:          "gemini key missing",
			provider:      "gemini",
			apiKeys:       empty,
			expectError:   true,
			expectKind:    apperrors.KindMissingCredential,
			errorContains: "GEMINI_API_KEY",
		},
		{
			name:          "openai key missing",
			provider:      "openai",
			apiKeys:       empty,
			expectError:   true,
			expectKind:    apperrors.KindMissingCredential,
			errorContains: "OPENAI_API_KEY",
		},
		{
			name:          "unknown provider",
			provider:      "acme",
			apiKeys:       withBoth,
			expectError:   true,
			errorContains: "unknown provider",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := RequireProviderKey(tc.provider, tc.apiKeys)

			if !tc.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.errorContains != "" {
				assert.Contains(t, err.Error(), tc.errorContains)
			}
			if tc.expectKind != "" {
				assert.Equal(t, tc.expectKind, apperrors.KindOf(err))
			}
		})
	}
}

func TestKeyFor(t *testing.T) {
	apiKeys := &APIKeys{OpenAI: "sk-test", Gemini: "AIza-test"}
	assert.Equal(t, "sk-test", apiKeys.KeyFor("openai"))
	assert.Equal(t, "AIza-test", apiKeys.KeyFor("gemini"))
	assert.Equal(t, "", apiKeys.KeyFor("acme"))
}
