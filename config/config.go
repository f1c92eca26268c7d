package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Translator TranslatorConfig `yaml:"translator"`
	Speech     SpeechConfig     `yaml:"speech"`
	Storage    StorageConfig    `yaml:"storage"`
	HTTP       HTTPConfig       `yaml:"http"`
	Playback   PlaybackConfig   `yaml:"playback"`
	Pushover   PushoverConfig   `yaml:"pushover"`
	Log        LogConfig        `yaml:"log"`
}

type TranslatorConfig struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

type SpeechConfig struct {
	Cloud             string `yaml:"cloud"`
	SourceLabel       string `yaml:"source_label"`
	LocalCommand      string `yaml:"local_command"`
	LocalVoice        string `yaml:"local_voice"`
	GoogleCredentials string `yaml:"google_credentials"`
}

type StorageConfig struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
}

type HTTPConfig struct {
	Addr        string `yaml:"addr"`
	RateLimit   int    `yaml:"rate_limit"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

type PlaybackConfig struct {
	Enabled bool `yaml:"enabled"`
}

type PushoverConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Token    string `yaml:"token"`
	UserKey  string `yaml:"user_key"`
	MinLevel string `yaml:"min_level"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Translator.Provider == "" {
		c.Translator.Provider = "gemini"
	}
	if c.Translator.Model == "" {
		switch c.Translator.Provider {
		case "anthropic":
			c.Translator.Model = "claude-sonnet-4-20250514"
		case "openai":
			c.Translator.Model = "gpt-4o-mini"
		default:
			c.Translator.Model = "gemini-1.5-flash"
		}
	}
	if c.Speech.Cloud == "" {
		c.Speech.Cloud = "translate"
	}
	if c.Speech.SourceLabel == "" {
		c.Speech.SourceLabel = "Eng"
	}
	if c.Speech.LocalCommand == "" {
		c.Speech.LocalCommand = "espeak-ng"
	}
	if c.Storage.InputDir == "" {
		c.Storage.InputDir = "./Files_To_Upload"
	}
	if c.Storage.OutputDir == "" {
		c.Storage.OutputDir = "./Downloaded_Speech"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8501"
	}
	if c.HTTP.RateLimit == 0 {
		c.HTTP.RateLimit = 30
	}
	if c.HTTP.MaxUploadMB == 0 {
		c.HTTP.MaxUploadMB = 20
	}
	if c.Pushover.MinLevel == "" {
		c.Pushover.MinLevel = "warning"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}
