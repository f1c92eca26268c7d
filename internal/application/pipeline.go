package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"llm-translator/internal/domain"
)

const (
	msgEmptyInput       = "Please enter text or upload a file to translate."
	msgNothingToSpeak   = "Please translate text first before converting to speech."
	msgTranslated       = "Translation completed!"
	msgUnsupportedType  = "Unsupported file type"
	msgUploadedTemplate = "File uploaded and text extracted from: %s"
)

// Pipeline runs the extraction, translation and synthesis stages. Stages are
// never chained: each is triggered on its own with the Session from the last one.
type Pipeline struct {
	extractor   TextExtractor
	translator  Translator
	synthesizer SpeechSynthesizer
	store       UploadStore
	player      Player
	notifier    Notifier
	sourceLabel string
	logger      *slog.Logger
}

func NewPipeline(
	extractor TextExtractor,
	translator Translator,
	synthesizer SpeechSynthesizer,
	store UploadStore,
	player Player,
	notifier Notifier,
	sourceLabel string,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		translator:  translator,
		synthesizer: synthesizer,
		store:       store,
		player:      player,
		notifier:    notifier,
		sourceLabel: sourceLabel,
		logger:      logger,
	}
}

func (p *Pipeline) SetLanguage(ctx context.Context, s Session, language string) Session {
	s.Notices = nil
	if !domain.IsSupportedLanguage(language) {
		p.notify(ctx, &s, domain.NoticeError, fmt.Sprintf("Unsupported language: %s", language))
		return s
	}
	s.Language = language
	return s
}

// SetMode switches between direct text entry and file upload. The source text
// of the previous mode is dropped; a finished translation is kept.
func (p *Pipeline) SetMode(ctx context.Context, s Session, mode domain.InputMode) Session {
	s.Notices = nil
	if mode != domain.ModeDirectText && mode != domain.ModeUploadFile {
		p.notify(ctx, &s, domain.NoticeError, fmt.Sprintf("Unknown input mode: %s", mode))
		return s
	}
	if mode != s.Mode {
		s.Mode = mode
		s.SourceText = ""
		s.SourceFile = ""
	}
	s.Stage = stageOf(s)
	return s
}

func (p *Pipeline) EnterText(_ context.Context, s Session, text string) Session {
	s.Notices = nil
	s.Mode = domain.ModeDirectText
	s.SourceText = text
	s.SourceFile = ""
	s.Stage = stageOf(s)
	return s
}

// Upload stores the document in the input directory and extracts its text
// right away. Unreadable or unsupported files leave the source text empty.
func (p *Pipeline) Upload(ctx context.Context, s Session, name string, r io.Reader) Session {
	s.Notices = nil

	path, err := p.store.Save(name, r)
	if err != nil {
		p.notify(ctx, &s, domain.NoticeError, fmt.Sprintf("Error saving file: %v", err))
		return s
	}

	s.Mode = domain.ModeUploadFile
	s.SourceFile = name

	text, err := p.extractor.Extract(ctx, path)
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		s.SourceText = ""
		p.notify(ctx, &s, domain.NoticeError, msgUnsupportedType)
	case err != nil:
		s.SourceText = ""
		p.notify(ctx, &s, domain.NoticeError, fmt.Sprintf("Error reading file: %v", err))
	default:
		s.SourceText = text
		p.notify(ctx, &s, domain.NoticeSuccess, fmt.Sprintf(msgUploadedTemplate, name))
	}

	s.Stage = stageOf(s)
	return s
}

func (p *Pipeline) Translate(ctx context.Context, s Session) Session {
	s.Notices = nil

	if strings.TrimSpace(s.SourceText) == "" {
		p.notify(ctx, &s, domain.NoticeError, msgEmptyInput)
		return s
	}

	p.logger.Info("translating", "language", s.Language, "chars", len(s.SourceText))

	translated, err := p.translator.Translate(ctx, s.SourceText, s.Language)
	if err != nil {
		p.notify(ctx, &s, domain.NoticeError, fmt.Sprintf("Translation failed: %v", err))
		return s
	}

	s.Translated = translated
	s.Artifact = nil
	s.Stage = stageOf(s)
	p.notify(ctx, &s, domain.NoticeSuccess, msgTranslated)
	return s
}

func (p *Pipeline) Speak(ctx context.Context, s Session) Session {
	s.Notices = nil

	if s.Translated == "" {
		p.notify(ctx, &s, domain.NoticeWarning, msgNothingToSpeak)
		return s
	}

	artifact, err := p.synthesizer.Synthesize(ctx, s.Translated, s.Language, p.sourceLabel)
	if err != nil {
		p.notify(ctx, &s, domain.NoticeError, fmt.Sprintf("Error generating speech: %v", err))
		return s
	}

	s.Artifact = artifact
	s.Stage = stageOf(s)
	p.notify(ctx, &s, domain.NoticeSuccess, fmt.Sprintf("Speech generated: %s", artifact.Name))

	if err := p.player.Play(ctx, artifact); err != nil {
		p.notify(ctx, &s, domain.NoticeWarning, fmt.Sprintf("Playback failed: %v", err))
	}

	return s
}

func (p *Pipeline) notify(ctx context.Context, s *Session, level domain.NoticeLevel, text string) {
	notice := domain.Notice{Level: level, Text: text}
	s.Notices = append(s.Notices, notice)

	if err := p.notifier.Notify(ctx, notice); err != nil {
		p.logger.Error("forwarding notice", "error", err)
	}
}

func stageOf(s Session) Stage {
	switch {
	case s.Artifact != nil:
		return StageSpeechReady
	case s.Translated != "":
		return StageTranslated
	case strings.TrimSpace(s.SourceText) != "":
		return StageTextReady
	default:
		return StageIdle
	}
}
