package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig holds settings for the API router.
type RouterConfig struct {
	// BackendAPIKey is the key that must be provided in X-API-Key or Authorization: Bearer <key>.
	// If empty, auth middleware is skipped (development mode).
	BackendAPIKey string

	// CorsAllowedOrigins is a comma-separated list of allowed origins.
	// If empty, defaults to "*" (development mode).
	CorsAllowedOrigins string

	// AudioDir is served read-only under /audio/. Empty disables the file server
	// (audio lives in remote storage).
	AudioDir string
}

func NewRouter(h *Handler, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (applied to all routes including /health)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg.CorsAllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)

	// Generated audio, public so <audio> tags can load it
	if cfg.AudioDir != "" {
		fs := http.StripPrefix("/audio/", http.FileServer(http.Dir(cfg.AudioDir)))
		r.Get("/audio/*", func(w http.ResponseWriter, req *http.Request) {
			// Directory listings and in-progress writes stay hidden
			if strings.HasSuffix(req.URL.Path, "/") || strings.HasSuffix(req.URL.Path, ".part") {
				http.NotFound(w, req)
				return
			}
			fs.ServeHTTP(w, req)
		})
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.BackendAPIKey != "" {
			r.Use(APIKeyAuth(cfg.BackendAPIKey))
		}

		r.Post("/generate-story", h.GenerateStory)
		r.Post("/generate-audio", h.GenerateAudio)
	})

	return r
}

// allowedOrigins restricts CORS when configured, otherwise allows all (dev mode).
func allowedOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	trimmed := make([]string, 0, len(origins))
	for _, o := range origins {
		if s := strings.TrimSpace(o); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	if len(trimmed) == 0 {
		return []string{"*"}
	}
	return trimmed
}
