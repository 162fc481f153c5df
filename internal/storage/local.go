package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// AudioURLPrefix is the path the local audio directory is served under.
const AudioURLPrefix = "/audio/"

// LocalStore writes audio files into a directory served by the API itself.
type LocalStore struct {
	dir     string
	baseURL string
}

// Ensure LocalStore implements Store at compile time.
var _ Store = (*LocalStore)(nil)

// NewLocalStore creates the directory if needed. baseURL is the public
// scheme://host:port prefix of the server.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio dir %s: %w", dir, err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Dir returns the directory files are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes to a .part file and renames it into place only once every byte
// is on disk and the file is closed.
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid audio filename %q", name)
	}

	finalPath := filepath.Join(s.dir, name)
	partPath := finalPath + ".part"

	f, err := os.OpenFile(partPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", partPath, err)
	}

	n, copyErr := io.Copy(f, &ctxReader{ctx: ctx, r: r})
	closeErr := f.Close()

	if copyErr != nil || closeErr != nil {
		if rmErr := os.Remove(partPath); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Error().Err(rmErr).Str("path", partPath).Msg("[Storage] failed to remove partial file")
		}
		if copyErr != nil {
			return "", fmt.Errorf("failed to write %s: %w", name, copyErr)
		}
		return "", fmt.Errorf("failed to close %s: %w", name, closeErr)
	}

	if err := os.Rename(partPath, finalPath); err != nil {
		_ = os.Remove(partPath)
		return "", fmt.Errorf("failed to move %s into place: %w", name, err)
	}

	log.Info().Str("file", name).Int64("bytes", n).Msg("[Storage] audio file saved")

	return s.baseURL + AudioURLPrefix + name, nil
}

// ctxReader stops a copy once the request context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
