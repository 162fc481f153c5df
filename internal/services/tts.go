package services

import (
	"context"
	"io"
)

// ---------------------------------------------------------------------------
// Narrator: common interface for text-to-speech providers
// Both ElevenLabs and Cartesia implement this interface so the narration
// service can use whichever is configured without knowing the provider.
// ---------------------------------------------------------------------------

// Narrator is the interface that any TTS provider must implement.
type Narrator interface {
	// Synthesize converts the whole text to speech in a single provider call
	// and returns the audio body as a stream. The caller must close it.
	// Errors returned while reading the stream are provider failures too.
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
}

// AudioExtension is the file extension of every narration the providers return.
const AudioExtension = ".mp3"
