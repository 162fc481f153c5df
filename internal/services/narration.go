package services

import (
	"context"
	"fmt"
	"io"

	"github.com/bobarin/nova/internal/storage"
	"github.com/rs/zerolog/log"
)

// NarrationService synthesizes narration audio and stores it as a new file.
type NarrationService struct {
	narrator Narrator
	store    storage.Store
	newName  func() string
}

func NewNarrationService(narrator Narrator, store storage.Store) *NarrationService {
	return &NarrationService{
		narrator: narrator,
		store:    store,
		newName:  func() string { return storage.NewFilename(AudioExtension) },
	}
}

// Narrate returns the URL of the saved audio file.
// Provider errors (including a stream that breaks mid-read) wrap ErrGenerationFailed;
// write errors wrap ErrStorageFailed. In both cases the store leaves no file behind.
func (s *NarrationService) Narrate(ctx context.Context, text string) (string, error) {
	name := s.newName()

	stream, err := s.narrator.Synthesize(ctx, text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer stream.Close()

	src := &sourceReader{r: stream}
	url, err := s.store.Save(ctx, name, src)
	if err != nil {
		if src.err != nil {
			return "", fmt.Errorf("%w: audio stream: %v", ErrGenerationFailed, src.err)
		}
		return "", fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}

	log.Info().Str("file", name).Msg("Audio file saved")

	return url, nil
}

// sourceReader remembers a read failure on the provider stream so it can be
// told apart from a failure on the write side.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.err = err
	}
	return n, err
}
