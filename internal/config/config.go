package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Completion providers
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Audio storage backends
const (
	StorageLocal    = "local"
	StorageSupabase = "supabase"
)

type Config struct {
	// Server
	Port               string
	PublicBaseURL      string // Prefix for generated audio URLs (default http://localhost:<port>)
	BackendAPIKey      string // API key for authenticating requests (empty = no auth, dev mode)
	CorsAllowedOrigins string // Comma-separated allowed origins (empty = *, dev mode)
	LogLevel           string

	// Story generation
	CompletionProvider string // "groq" (default) or "gemini"
	GroqKey            string
	GroqBaseURL        string
	GeminiKey          string
	StripJSONFences    bool // Strip ```json fences before parsing model output

	// ElevenLabs (preferred narration provider)
	ElevenLabsKey     string
	ElevenLabsVoiceID string

	// Cartesia (used when ElevenLabs key is not set)
	CartesiaKey     string
	CartesiaURL     string
	CartesiaVoiceID string

	// Audio storage
	AudioStorage          string // "local" (default) or "supabase"
	AudioDir              string
	SupabaseURL           string
	SupabaseServiceKey    string
	SupabaseStorageBucket string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	_ = godotenv.Load()

	port := getEnv("PORT", "3001")

	cfg := &Config{
		Port:                  port,
		PublicBaseURL:         strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		BackendAPIKey:         getEnv("BACKEND_API_KEY", ""),
		CorsAllowedOrigins:    getEnv("CORS_ALLOWED_ORIGINS", ""),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		CompletionProvider:    strings.ToLower(getEnv("COMPLETION_PROVIDER", ProviderGroq)),
		GroqKey:               getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:           getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GeminiKey:             getEnv("GEMINI_API_KEY", ""),
		StripJSONFences:       getEnvBool("STRIP_JSON_FENCES", false),
		ElevenLabsKey:         getEnv("ELEVENLABS_API_KEY", ""),
		ElevenLabsVoiceID:     getEnv("ELEVENLABS_VOICE_ID", ""),
		CartesiaKey:           getEnv("CARTESIA_API_KEY", ""),
		CartesiaURL:           getEnv("CARTESIA_API_URL", "https://api.cartesia.ai"),
		CartesiaVoiceID:       getEnv("CARTESIA_VOICE_ID", ""),
		AudioStorage:          strings.ToLower(getEnv("AUDIO_STORAGE", StorageLocal)),
		AudioDir:              getEnv("AUDIO_DIR", "public/audio"),
		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "story-audio"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every selected provider has the credentials it needs.
func (c *Config) Validate() error {
	switch c.CompletionProvider {
	case ProviderGroq:
		if c.GroqKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required")
		}
	case ProviderGemini:
		if c.GeminiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when COMPLETION_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("unknown COMPLETION_PROVIDER %q (allowed: groq, gemini)", c.CompletionProvider)
	}

	// At least one narration provider must be configured
	if c.ElevenLabsKey == "" && c.CartesiaKey == "" {
		return fmt.Errorf("either ELEVENLABS_API_KEY or CARTESIA_API_KEY is required for narration")
	}

	switch c.AudioStorage {
	case StorageLocal:
		if c.AudioDir == "" {
			return fmt.Errorf("AUDIO_DIR is required")
		}
	case StorageSupabase:
		if c.SupabaseURL == "" || c.SupabaseServiceKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY are required when AUDIO_STORAGE=supabase")
		}
	default:
		return fmt.Errorf("unknown AUDIO_STORAGE %q (allowed: local, supabase)", c.AudioStorage)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}
