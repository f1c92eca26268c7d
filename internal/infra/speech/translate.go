// Package speech holds the text-to-speech engines: two cloud engines and one
// local engine.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	htgotts "github.com/hegedustibor/htgo-tts"
	"golang.org/x/sync/errgroup"

	"llm-translator/internal/infra"
)

// FetchFunc downloads the speech for one chunk into folder/name.mp3 and returns the path.
type FetchFunc func(text, languageCode, folder, name string) (string, error)

var errNotAudio = errors.New("engine returned a non-audio response")

// TranslateEngine speaks through the Google Translate TTS endpoint. No key is needed.
type TranslateEngine struct {
	fetch    FetchFunc
	retry    infra.RetryConfig
	parallel int
	logger   *slog.Logger
}

func NewTranslateEngine(logger *slog.Logger) *TranslateEngine {
	return NewTranslateEngineWithFetcher(htgoFetch, logger)
}

func NewTranslateEngineWithFetcher(fetch FetchFunc, logger *slog.Logger) *TranslateEngine {
	return &TranslateEngine{
		fetch:    fetch,
		retry:    infra.DefaultRetryConfig(),
		parallel: 4,
		logger:   logger,
	}
}

func htgoFetch(text, languageCode, folder, name string) (string, error) {
	s := htgotts.Speech{Folder: folder, Language: languageCode}
	return s.CreateSpeechFile(text, name)
}

// Synthesize writes the MP3 for text to outPath, replacing any file already there.
func (e *TranslateEngine) Synthesize(ctx context.Context, text, languageCode, outPath string) error {
	chunks := SplitText(text, MaxChunkChars)
	if len(chunks) == 0 {
		return fmt.Errorf("no text to synthesize")
	}

	tmp, err := os.MkdirTemp(filepath.Dir(outPath), ".tts-")
	if err != nil {
		return fmt.Errorf("creating work dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	parts := make([]string, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallel)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			name := fmt.Sprintf("part%04d", i)
			return infra.WithRetry(gctx, e.retry, func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				// the fetcher skips files that already exist, so clear leftovers of a failed try
				_ = os.Remove(filepath.Join(tmp, name+".mp3"))

				path, err := e.fetch(chunk, languageCode, tmp, name)
				if err != nil {
					return fmt.Errorf("chunk %d: %w", i, err)
				}
				if err := checkAudio(path); err != nil {
					return infra.Permanent(fmt.Errorf("chunk %d (%s): %w", i, languageCode, err))
				}
				parts[i] = path
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	e.logger.Debug("speech chunks downloaded", "chunks", len(chunks), "language", languageCode)

	return concatFiles(outPath, parts)
}

func checkAudio(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 3)
	n, _ := f.Read(head)
	head = head[:n]

	if bytes.HasPrefix(head, []byte("ID3")) || (len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0) {
		return nil
	}
	return errNotAudio
}

func concatFiles(outPath string, parts []string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	for _, p := range parts {
		data, err := os.ReadFile(p)
		if err != nil {
			out.Close()
			return fmt.Errorf("reading chunk: %w", err)
		}
		if _, err := out.Write(data); err != nil {
			out.Close()
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
	}

	return out.Close()
}
