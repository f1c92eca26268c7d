package application

import (
	"context"
	"io"

	"llm-translator/internal/domain"
)

type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

type UploadStore interface {
	Save(name string, r io.Reader) (string, error)
}

// CloudSpeech synthesizes text in the language given by a two-letter code.
type CloudSpeech interface {
	Synthesize(ctx context.Context, text, languageCode, outPath string) error
}

// LocalSpeech synthesizes text offline, writing directly to outPath.
type LocalSpeech interface {
	Synthesize(ctx context.Context, text, outPath string) error
}

type Player interface {
	Play(ctx context.Context, artifact *domain.SpeechArtifact) error
}

type NoopPlayer struct{}

func (p *NoopPlayer) Play(_ context.Context, _ *domain.SpeechArtifact) error {
	return nil
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, targetLanguage, sourceLabel string) (*domain.SpeechArtifact, error)
}
