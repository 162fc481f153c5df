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

const (
	// Default Cartesia API version
	CartesiaAPIVersion = "2024-06-10"

	cartesiaDefaultURL   = "https://api.cartesia.ai"
	cartesiaModel        = "sonic-multilingual"
	cartesiaDefaultVoice = "a0e99841-438c-4a64-b679-ae501e7d6091"
)

// CartesiaService is the fallback narrator, used when no ElevenLabs key is set.
type CartesiaService struct {
	apiKey     string
	apiURL     string
	apiVersion string
	voiceID    string
	client     *http.Client
}

// Ensure CartesiaService implements Narrator at compile time.
var _ Narrator = (*CartesiaService)(nil)

// NewCartesiaService creates a Cartesia narrator. Empty apiURL or voiceID use defaults.
func NewCartesiaService(apiKey, apiURL, voiceID string) *CartesiaService {
	if apiURL == "" {
		apiURL = cartesiaDefaultURL
	}
	if voiceID == "" {
		voiceID = cartesiaDefaultVoice
	}
	return &CartesiaService{
		apiKey:     apiKey,
		apiURL:     apiURL,
		apiVersion: CartesiaAPIVersion,
		voiceID:    voiceID,
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				ResponseHeaderTimeout: 60 * time.Second,
			},
		},
	}
}

// CartesiaRequest matches the Cartesia /tts/bytes request body
type CartesiaRequest struct {
	ModelID      string                 `json:"model_id"`
	Transcript   string                 `json:"transcript"`
	Voice        CartesiaVoiceSpecifier `json:"voice"`
	OutputFormat CartesiaOutputFormat   `json:"output_format"`
}

type CartesiaVoiceSpecifier struct {
	Mode string `json:"mode"`
	ID   string `json:"id"`
}

type CartesiaOutputFormat struct {
	Container  string `json:"container"`
	SampleRate int    `json:"sample_rate"`
	BitRate    int    `json:"bit_rate,omitempty"`
}

// Synthesize generates mp3 audio from text using Cartesia TTS.
func (s *CartesiaService) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	reqBody := CartesiaRequest{
		ModelID:    cartesiaModel,
		Transcript: text,
		Voice: CartesiaVoiceSpecifier{
			Mode: "id",
			ID:   s.voiceID,
		},
		OutputFormat: CartesiaOutputFormat{
			Container:  "mp3",
			SampleRate: 44100,
			BitRate:    128000,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/tts/bytes", s.apiURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cartesia-Version", s.apiVersion)

	log.Debug().Str("voice_id", s.voiceID).Int("text_len", len(text)).Msg("[Cartesia] Generating speech")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cartesia request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("cartesia returned status %d: %s", resp.StatusCode, string(body))
	}

	return resp.Body, nil
}
