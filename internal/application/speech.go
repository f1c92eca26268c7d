package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"llm-translator/internal/domain"
)

// DefaultSourceLabel prefixes artifact names when no source label is given.
const DefaultSourceLabel = "Eng"

// Synthesizer turns translated text into an MP3 artifact in the output directory.
// The engine is chosen by domain.SelectEngine: the cloud engine for every
// language except domain.LocalOnlyLanguage, which the cloud engine cannot voice.
type Synthesizer struct {
	cloud     CloudSpeech
	local     LocalSpeech
	outputDir string
	now       func() time.Time
	logger    *slog.Logger
}

func NewSynthesizer(cloud CloudSpeech, local LocalSpeech, outputDir string, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		cloud:     cloud,
		local:     local,
		outputDir: outputDir,
		now:       time.Now,
		logger:    logger,
	}
}

// WithClock replaces the time source used for artifact names.
func (s *Synthesizer) WithClock(now func() time.Time) *Synthesizer {
	s.now = now
	return s
}

func (s *Synthesizer) Synthesize(ctx context.Context, text, targetLanguage, sourceLabel string) (*domain.SpeechArtifact, error) {
	if sourceLabel == "" {
		sourceLabel = DefaultSourceLabel
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	createdAt := s.now()
	name := domain.SpeechFileName(sourceLabel, targetLanguage, createdAt)
	path := filepath.Join(s.outputDir, name)
	engine := domain.SelectEngine(targetLanguage)

	s.logger.Info("synthesizing speech", "file", name, "engine", engine, "language", targetLanguage)

	var err error
	switch engine {
	case domain.EngineLocal:
		err = s.local.Synthesize(ctx, text, path)
	default:
		err = s.cloud.Synthesize(ctx, text, domain.LanguageCode(targetLanguage), path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s engine: %w", engine, err)
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generated audio: %w", err)
	}

	return &domain.SpeechArtifact{
		Name:      name,
		Path:      path,
		Engine:    engine,
		Audio:     audio,
		CreatedAt: createdAt,
	}, nil
}
