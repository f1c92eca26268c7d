//go:build portaudio
// +build portaudio

package playback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gordonklaus/portaudio"

	"llm-translator/internal/domain"
)

const framesPerBuffer = 1024

type Speaker struct {
	logger *slog.Logger
}

func NewSpeaker(logger *slog.Logger) *Speaker {
	return &Speaker{logger: logger}
}

// Play blocks until the artifact has been played or ctx is done.
func (s *Speaker) Play(ctx context.Context, artifact *domain.SpeechArtifact) error {
	pcm, err := Decode(artifact.Audio)
	if err != nil {
		return err
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("initializing portaudio: %w", err)
	}
	defer portaudio.Terminate()

	buffer := make([]int16, framesPerBuffer*pcm.Channels)

	stream, err := portaudio.OpenDefaultStream(
		0,
		pcm.Channels,
		float64(pcm.SampleRate),
		framesPerBuffer,
		buffer,
	)
	if err != nil {
		return fmt.Errorf("opening stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Stop()

	s.logger.Info("playing speech", "file", artifact.Name, "sampleRate", pcm.SampleRate, "channels", pcm.Channels)

	for offset := 0; offset < len(pcm.Samples); offset += len(buffer) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n := copy(buffer, pcm.Samples[offset:])
		clear(buffer[n:])

		if err := stream.Write(); err != nil {
			return fmt.Errorf("writing to stream: %w", err)
		}
	}

	return nil
}
