package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Store persists one generated audio artifact and returns the URL it is served from.
type Store interface {
	// Save streams r into a new object called name. On any error nothing is
	// left under name.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// NewFilename returns a unique audio filename: a millisecond timestamp for
// ordering plus a random UUID so concurrent requests never collide.
func NewFilename(ext string) string {
	return fmt.Sprintf("story_audio_%d_%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}
