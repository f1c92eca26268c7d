package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"llm-translator/config"
	"llm-translator/internal/application"
	"llm-translator/internal/domain"
	"llm-translator/internal/infra/anthropic"
	"llm-translator/internal/infra/extract"
	"llm-translator/internal/infra/gemini"
	"llm-translator/internal/infra/openai"
	"llm-translator/internal/infra/playback"
	"llm-translator/internal/infra/pushover"
	"llm-translator/internal/infra/speech"
	"llm-translator/internal/infra/storage"
	"llm-translator/internal/infra/web"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// .env is optional; variables already in the environment win
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down")
		cancel()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("translator error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	for _, dir := range []string{cfg.Storage.InputDir, cfg.Storage.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	translator, err := createTranslator(cfg.Translator)
	if err != nil {
		return err
	}

	cloud, closeCloud, err := createCloudSpeech(ctx, cfg.Speech, logger)
	if err != nil {
		return err
	}
	defer closeCloud()

	local := speech.NewLocalEngine(cfg.Speech.LocalCommand, cfg.Speech.LocalVoice, logger)
	synthesizer := application.NewSynthesizer(cloud, local, cfg.Storage.OutputDir, logger)

	var player application.Player
	if cfg.Playback.Enabled {
		player = playback.NewSpeaker(logger)
	} else {
		player = &application.NoopPlayer{}
	}

	var notifier application.Notifier
	if cfg.Pushover.Enabled {
		notifier = pushover.NewClient(cfg.Pushover.Token, cfg.Pushover.UserKey, domain.NoticeLevel(cfg.Pushover.MinLevel))
	} else {
		notifier = application.NewLogNotifier(logger)
	}

	pipeline := application.NewPipeline(
		extract.NewExtractor(logger),
		translator,
		synthesizer,
		storage.NewFileStore(cfg.Storage.InputDir),
		player,
		notifier,
		cfg.Speech.SourceLabel,
		logger,
	)

	server := web.NewServer(pipeline, web.Options{
		Addr:        cfg.HTTP.Addr,
		OutputDir:   cfg.Storage.OutputDir,
		RateLimit:   cfg.HTTP.RateLimit,
		MaxUploadMB: cfg.HTTP.MaxUploadMB,
	}, logger)

	logger.Info("starting translator",
		"provider", cfg.Translator.Provider,
		"model", cfg.Translator.Model,
		"cloud_speech", cfg.Speech.Cloud,
	)

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	<-ctx.Done()

	return server.Stop()
}

func createTranslator(cfg config.TranslatorConfig) (application.Translator, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.BaseURL != "" {
			return gemini.NewClientWithURL(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
		}
		return gemini.NewClient(cfg.APIKey, cfg.Model), nil
	case "anthropic":
		if cfg.BaseURL != "" {
			return anthropic.NewClaudeClientWithURL(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
		}
		return anthropic.NewClaudeClient(cfg.APIKey, cfg.Model), nil
	case "openai":
		if cfg.BaseURL != "" {
			return openai.NewChatClientWithURL(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
		}
		return openai.NewChatClient(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown translator provider: %q", cfg.Provider)
	}
}

func createCloudSpeech(ctx context.Context, cfg config.SpeechConfig, logger *slog.Logger) (application.CloudSpeech, func(), error) {
	switch cfg.Cloud {
	case "translate":
		return speech.NewTranslateEngine(logger), func() {}, nil
	case "google":
		engine, err := speech.NewGoogleEngine(ctx, cfg.GoogleCredentials)
		if err != nil {
			return nil, nil, fmt.Errorf("creating google speech engine: %w", err)
		}
		return engine, func() {
			if err := engine.Close(); err != nil {
				logger.Warn("closing google speech client", "error", err)
			}
		}, nil
	default:
		logger.Warn("unknown cloud speech engine, using translate", "engine", cfg.Cloud)
		return speech.NewTranslateEngine(logger), func() {}, nil
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
