//go:build !portaudio
// +build !portaudio

package playback

import (
	"context"
	"fmt"
	"log/slog"

	"llm-translator/internal/domain"
)

// Speaker stub when portaudio is not available
type Speaker struct {
	logger *slog.Logger
}

func NewSpeaker(logger *slog.Logger) *Speaker {
	return &Speaker{logger: logger}
}

func (s *Speaker) Play(_ context.Context, artifact *domain.SpeechArtifact) error {
	if _, err := Decode(artifact.Audio); err != nil {
		return err
	}
	return fmt.Errorf("playback not available: rebuild with -tags portaudio")
}
