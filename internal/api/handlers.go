package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bobarin/nova/internal/models"
	"github.com/bobarin/nova/internal/services"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Client-facing messages. Provider detail never leaves the server log.
const (
	msgStoryFieldsRequired = "Name, age, interests, and story_type are required."
	msgStoryFailed         = "Failed to generate story. The AI may be busy. Please try again."
	msgTextRequired        = "Text is required."
	msgAudioFailed         = "Failed to generate audio."
	msgAudioSaveFailed     = "Failed to save audio file."
	msgInvalidBody         = "Invalid request body"
)

// maxBodyBytes bounds request bodies; narration text is the largest legitimate payload.
const maxBodyBytes = 1 << 20

// StoryGenerator produces a story document for validated inputs.
type StoryGenerator interface {
	Generate(ctx context.Context, inputs models.UserInputs) (json.RawMessage, error)
}

// AudioNarrator produces a saved narration file and returns its URL.
type AudioNarrator interface {
	Narrate(ctx context.Context, text string) (string, error)
}

type Handler struct {
	stories StoryGenerator
	audio   AudioNarrator
}

func NewHandler(stories StoryGenerator, audio AudioNarrator) *Handler {
	return &Handler{
		stories: stories,
		audio:   audio,
	}
}

// GenerateStory handles POST /api/generate-story
func (h *Handler) GenerateStory(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateStoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	logger := log.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
	logger.Info().Str("story_type", string(req.StoryType)).Msg("Received story request")

	if missing := req.Missing(); len(missing) > 0 {
		err := fmt.Errorf("%w: %s", services.ErrMissingField, strings.Join(missing, ", "))
		logger.Info().Err(err).Msg("Story request rejected")
		respondError(w, statusFor(err), msgStoryFieldsRequired)
		return
	}

	doc, err := h.stories.Generate(r.Context(), req.Inputs())
	if err != nil {
		logger.Error().Err(err).Msg("Error generating story")
		respondError(w, statusFor(err), msgStoryFailed)
		return
	}

	respondJSON(w, http.StatusOK, doc)
}

// GenerateAudio handles POST /api/generate-audio
func (h *Handler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateAudioRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		respondError(w, statusFor(fmt.Errorf("%w: text", services.ErrMissingField)), msgTextRequired)
		return
	}

	logger := log.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
	logger.Info().Int("text_len", len(req.Text)).Msg("Received request to generate audio")

	url, err := h.audio.Narrate(r.Context(), req.Text)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating audio")
		msg := msgAudioFailed
		if errors.Is(err, services.ErrStorageFailed) {
			msg = msgAudioSaveFailed
		}
		respondError(w, statusFor(err), msg)
		return
	}

	respondJSON(w, http.StatusOK, models.GenerateAudioResponse{AudioURL: url})
}

// Health check
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps the service failure kinds onto HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, services.ErrMissingField) {
		return http.StatusBadRequest
	}
	// ErrGenerationFailed, ErrStorageFailed and anything unexpected
	return http.StatusInternalServerError
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Error: message})
}
