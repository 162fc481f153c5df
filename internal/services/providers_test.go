package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroqServiceComplete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama-3.1-8b-instant",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"story_title\":\"T\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`)
	}))
	defer srv.Close()

	svc := NewGroqService("gsk-test", srv.URL)
	out, err := svc.Complete(context.Background(), StorySystemPrompt, "tell me a story")
	require.NoError(t, err)
	assert.Equal(t, `{"story_title":"T"}`, out)

	assert.Equal(t, groqStoryModel, got["model"])
	format, ok := got["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])

	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, StorySystemPrompt, messages[0].(map[string]any)["content"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
	assert.Equal(t, "tell me a story", messages[1].(map[string]any)["content"])
}

func TestGroqServiceEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[]}`)
	}))
	defer srv.Close()

	_, err := NewGroqService("k", srv.URL).Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestGroqServiceProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"message":"rate limit reached","type":"rate_limit"}}`)
	}))
	defer srv.Close()

	_, err := NewGroqService("k", srv.URL).Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestElevenLabsSynthesize(t *testing.T) {
	var got elevenLabsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/"+elevenLabsDefaultVoice, r.URL.Path)
		assert.Equal(t, elevenLabsOutputFormat, r.URL.Query().Get("output_format"))
		assert.Equal(t, "xi-test", r.Header.Get("xi-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = io.WriteString(w, "mp3-bytes")
	}))
	defer srv.Close()

	svc := NewElevenLabsService("xi-test", "")
	svc.baseURL = srv.URL

	stream, err := svc.Synthesize(context.Background(), "Hello, explorer!")
	require.NoError(t, err)
	defer stream.Close()

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "mp3-bytes", string(data))
	assert.Equal(t, "Hello, explorer!", got.Text)
	assert.Equal(t, elevenLabsModel, got.ModelID)
}

func TestElevenLabsSynthesizeErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"invalid api key"}`)
	}))
	defer srv.Close()

	svc := NewElevenLabsService("bad", "voice")
	svc.baseURL = srv.URL

	_, err := svc.Synthesize(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCartesiaSynthesize(t *testing.T) {
	var got CartesiaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tts/bytes", r.URL.Path)
		assert.Equal(t, CartesiaAPIVersion, r.Header.Get("Cartesia-Version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, "cartesia-mp3")
	}))
	defer srv.Close()

	stream, err := NewCartesiaService("ck", srv.URL, "").Synthesize(context.Background(), "Bonjour")
	require.NoError(t, err)
	defer stream.Close()

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "cartesia-mp3", string(data))
	assert.Equal(t, "Bonjour", got.Transcript)
	assert.Equal(t, cartesiaDefaultVoice, got.Voice.ID)
	assert.Equal(t, "mp3", got.OutputFormat.Container)
}
