package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ---------------------------------------------------------------------------
// ElevenLabs Text-to-Speech Service
// Uses ElevenLabs REST API to convert story narration into speech audio.
// Model: eleven_multilingual_v2 (stories may be requested in any language)
// ---------------------------------------------------------------------------

const (
	elevenLabsBaseURL      = "https://api.elevenlabs.io"
	elevenLabsModel        = "eleven_multilingual_v2"
	elevenLabsDefaultVoice = "21m00Tcm4TlvDq8ikWAM" // "Rachel"
	elevenLabsOutputFormat = "mp3_44100_128"
)

// ElevenLabsService handles text-to-speech via ElevenLabs API.
type ElevenLabsService struct {
	apiKey  string
	baseURL string
	voiceID string
	modelID string
	client  *http.Client
}

// Ensure ElevenLabsService implements Narrator at compile time.
var _ Narrator = (*ElevenLabsService)(nil)

// NewElevenLabsService creates an ElevenLabs narrator. An empty voiceID uses Rachel.
func NewElevenLabsService(apiKey, voiceID string) *ElevenLabsService {
	if voiceID == "" {
		voiceID = elevenLabsDefaultVoice
	}
	return &ElevenLabsService{
		apiKey:  apiKey,
		baseURL: elevenLabsBaseURL,
		voiceID: voiceID,
		modelID: elevenLabsModel,
		// No overall timeout: the body is streamed to disk after Do returns.
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				ResponseHeaderTimeout: 90 * time.Second,
				IdleConnTimeout:       90 * time.Second,
			},
		},
	}
}

type elevenLabsRequest struct {
	Text          string                   `json:"text"`
	ModelID       string                   `json:"model_id"`
	VoiceSettings *elevenLabsVoiceSettings `json:"voice_settings,omitempty"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

// Synthesize converts text to speech using ElevenLabs.
// The returned body IS the mp3 file.
func (s *ElevenLabsService) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	reqBody := elevenLabsRequest{
		Text:    text,
		ModelID: s.modelID,
		VoiceSettings: &elevenLabsVoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
			UseSpeakerBoost: true,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ElevenLabs request: %w", err)
	}

	// POST /v1/text-to-speech/{voice_id}?output_format=mp3_44100_128
	url := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=%s",
		s.baseURL, s.voiceID, elevenLabsOutputFormat)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create ElevenLabs request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", s.apiKey)

	log.Debug().
		Str("voice_id", s.voiceID).
		Str("model", s.modelID).
		Int("text_len", len(text)).
		Msg("[ElevenLabs] Generating speech")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ElevenLabs request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("ElevenLabs returned status %d: %s", resp.StatusCode, string(body))
	}

	return resp.Body, nil
}
