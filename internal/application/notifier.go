package application

import (
	"context"
	"log/slog"

	"llm-translator/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice) error
}

type NoopNotifier struct{}

func (n *NoopNotifier) Notify(_ context.Context, _ domain.Notice) error {
	return nil
}

// LogNotifier writes notices to the application log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, notice domain.Notice) error {
	level := slog.LevelInfo
	switch notice.Level {
	case domain.NoticeWarning:
		level = slog.LevelWarn
	case domain.NoticeError:
		level = slog.LevelError
	}
	n.logger.Log(ctx, level, notice.Text, "notice", notice.Level)
	return nil
}
