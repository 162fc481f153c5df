package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("ELEVENLABS_API_KEY", "xi-test")
	t.Setenv("PORT", "")
	t.Setenv("PUBLIC_BASE_URL", "")
	t.Setenv("COMPLETION_PROVIDER", "")
	t.Setenv("AUDIO_STORAGE", "")
	t.Setenv("AUDIO_DIR", "")
	t.Setenv("STRIP_JSON_FENCES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "http://localhost:3001", cfg.PublicBaseURL)
	assert.Equal(t, ProviderGroq, cfg.CompletionProvider)
	assert.Equal(t, StorageLocal, cfg.AudioStorage)
	assert.Equal(t, "public/audio", cfg.AudioDir)
	assert.False(t, cfg.StripJSONFences)
}

func TestLoadTrimsPublicBaseURL(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("ELEVENLABS_API_KEY", "xi-test")
	t.Setenv("PUBLIC_BASE_URL", "https://nova.example.com/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://nova.example.com", cfg.PublicBaseURL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			CompletionProvider: ProviderGroq,
			GroqKey:            "gsk-test",
			ElevenLabsKey:      "xi-test",
			AudioStorage:       StorageLocal,
			AudioDir:           "public/audio",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing groq key", mutate: func(c *Config) { c.GroqKey = "" }, wantErr: "GROQ_API_KEY"},
		{name: "gemini without key", mutate: func(c *Config) { c.CompletionProvider = ProviderGemini }, wantErr: "GEMINI_API_KEY"},
		{name: "gemini with key", mutate: func(c *Config) { c.CompletionProvider = ProviderGemini; c.GeminiKey = "g" }},
		{name: "unknown provider", mutate: func(c *Config) { c.CompletionProvider = "bard" }, wantErr: "COMPLETION_PROVIDER"},
		{name: "no narrator", mutate: func(c *Config) { c.ElevenLabsKey = "" }, wantErr: "CARTESIA_API_KEY"},
		{name: "cartesia only", mutate: func(c *Config) { c.ElevenLabsKey = ""; c.CartesiaKey = "c" }},
		{name: "supabase without creds", mutate: func(c *Config) { c.AudioStorage = StorageSupabase }, wantErr: "SUPABASE_URL"},
		{name: "unknown storage", mutate: func(c *Config) { c.AudioStorage = "s3" }, wantErr: "AUDIO_STORAGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
