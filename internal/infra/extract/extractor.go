// Package extract turns uploaded documents into plain text.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"llm-translator/internal/domain"
)

type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract returns the text content of the file at path. Unsupported extensions
// return domain.ErrUnsupportedFormat. Parser failures, including panics inside
// third-party parsers, are returned as errors and never crash the caller.
func (e *Extractor) Extract(ctx context.Context, path string) (text string, err error) {
	if path == "" {
		return "", fmt.Errorf("no file given")
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	format := domain.FormatFromName(path)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("parser panic", "path", path, "format", format, "panic", r)
			text, err = "", fmt.Errorf("reading %s file: %v", format, r)
		}
	}()

	switch format {
	case domain.FormatText:
		text, err = readPlainText(path)
	case domain.FormatPDF:
		text, err = readPDF(path)
	case domain.FormatWord:
		text, err = readWord(path)
	case domain.FormatSpreadsheet:
		text, err = readSpreadsheet(path)
	default:
		return "", domain.ErrUnsupportedFormat
	}

	if err != nil {
		return "", fmt.Errorf("reading %s file: %w", format, err)
	}

	e.logger.Debug("extracted text", "path", path, "format", format, "chars", len(text))
	return text, nil
}
