package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bobarin/nova/internal/api"
	"github.com/bobarin/nova/internal/config"
	"github.com/bobarin/nova/internal/services"
	"github.com/bobarin/nova/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msg("Starting NOVA story API...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Completion provider: Groq by default, Gemini when selected
	var completer services.Completer
	switch cfg.CompletionProvider {
	case config.ProviderGemini:
		completer, err = services.NewGeminiService(ctx, cfg.GeminiKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Gemini")
		}
	default:
		completer = services.NewGroqService(cfg.GroqKey, cfg.GroqBaseURL)
	}
	log.Info().Str("provider", cfg.CompletionProvider).Msg("Completion provider ready")

	// Narration provider: ElevenLabs preferred, Cartesia as fallback
	var narrator services.Narrator
	if cfg.ElevenLabsKey != "" {
		narrator = services.NewElevenLabsService(cfg.ElevenLabsKey, cfg.ElevenLabsVoiceID)
		log.Info().Msg("Narration provider: ElevenLabs (model: eleven_multilingual_v2)")
	} else {
		narrator = services.NewCartesiaService(cfg.CartesiaKey, cfg.CartesiaURL, cfg.CartesiaVoiceID)
		log.Info().Msg("Narration provider: Cartesia")
	}

	// Audio storage
	var (
		store    storage.Store
		audioDir string
	)
	switch cfg.AudioStorage {
	case config.StorageSupabase:
		store = storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
		log.Info().Str("bucket", cfg.SupabaseStorageBucket).Msg("Audio storage: Supabase")
	default:
		local, err := storage.NewLocalStore(cfg.AudioDir, cfg.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize audio storage")
		}
		store = local
		audioDir = local.Dir()
		log.Info().Str("dir", audioDir).Msg("Audio storage: local")
	}

	if cfg.StripJSONFences {
		log.Info().Msg("Markdown fence stripping enabled for story output")
	}

	handler := api.NewHandler(
		services.NewStoryService(completer, cfg.StripJSONFences),
		services.NewNarrationService(narrator, store),
	)
	router := api.NewRouter(handler, api.RouterConfig{
		BackendAPIKey:      cfg.BackendAPIKey,
		CorsAllowedOrigins: cfg.CorsAllowedOrigins,
		AudioDir:           audioDir,
	})

	if cfg.BackendAPIKey != "" {
		log.Info().Msg("API key authentication enabled")
	} else {
		log.Warn().Msg("No BACKEND_API_KEY set, API is unprotected (dev mode)")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("url", cfg.PublicBaseURL).Msg("API server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}

	log.Info().Msg("Server exited")
}
