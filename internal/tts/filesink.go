package tts

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/platanus-hack-25/lumera-cli/internal/api"
)

// FileSink "plays" audio by writing it to Dir, one file per Play.
type FileSink struct {
	Dir string

	mu   sync.Mutex
	last string
}

// LastPath returns the file written by the latest Play.
func (s *FileSink) LastPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *FileSink) Play(_ context.Context, audio *api.Audio) (Track, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	path := filepath.Join(s.Dir, uuid.NewString()+extension(audio.ContentType))
	if err := os.WriteFile(path, audio.Data, 0o644); err != nil {
		return nil, fmt.Errorf("write audio: %w", err)
	}

	s.mu.Lock()
	s.last = path
	s.mu.Unlock()
	return fileTrack{}, nil
}

func extension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ".mp3"
	}
	switch mediaType {
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/ogg":
		return ".ogg"
	}
	if exts, _ := mime.ExtensionsByType(mediaType); len(exts) > 0 {
		return exts[0]
	}
	return ".mp3"
}

// fileTrack has nothing to control once the file exists.
type fileTrack struct{}

func (fileTrack) Pause() error  { return nil }
func (fileTrack) Resume() error { return nil }
func (fileTrack) Stop() error   { return nil }
