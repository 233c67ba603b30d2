package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = "v2b.yaml"

// Settings is the full tool configuration. Every field has a working
// default, a config file only overrides what it names.
type Settings struct {
	Workspace string          `yaml:"workspace"`
	Provider  string          `yaml:"provider" validate:"oneof=gemini openai"`
	Parallel  int             `yaml:"parallel" validate:"min=1,max=16"`
	Freshness string          `yaml:"freshness" validate:"oneof=existence mtime hash"`
	Timeouts  TimeoutSettings `yaml:"timeouts"`
	Audio     AudioSettings   `yaml:"audio"`
	Models    ModelSettings   `yaml:"models"`
	History   HistorySettings `yaml:"history"`
	Archive   ArchiveSettings `yaml:"archive"`
}

// TimeoutSettings caps each step's wall-clock time. Transcription gets the
// largest budget since whole recordings are uploaded in one request.
type TimeoutSettings struct {
	PreprocessSeconds int `yaml:"preprocess_seconds" validate:"min=1,max=3600"`
	TranscribeSeconds int `yaml:"transcribe_seconds" validate:"min=1,max=3600"`
	GenerateSeconds   int `yaml:"generate_seconds" validate:"min=1,max=3600"`
}

// Preprocess returns the step 1 deadline.
func (t TimeoutSettings) Preprocess() time.Duration {
	return time.Duration(t.PreprocessSeconds) * time.Second
}

// Transcribe returns the step 2 deadline.
func (t TimeoutSettings) Transcribe() time.Duration {
	return time.Duration(t.TranscribeSeconds) * time.Second
}

// Generate returns the step 3 deadline.
func (t TimeoutSettings) Generate() time.Duration {
	return time.Duration(t.GenerateSeconds) * time.Second
}

// AudioSettings selects which cleanup stages the preprocessor applies and
// the bitrate of the produced mp3.
type AudioSettings struct {
	Stages  []string `yaml:"stages" validate:"min=1,dive,oneof=mono silence noise normalize compress resample"`
	Bitrate string   `yaml:"bitrate" validate:"required"`
}

// ModelSettings names the models each provider uses.
type ModelSettings struct {
	Gemini           string `yaml:"gemini" validate:"required"`
	OpenAITranscribe string `yaml:"openai_transcribe" validate:"required"`
	OpenAIChat       string `yaml:"openai_chat" validate:"required"`
}

// HistorySettings selects where step outcomes are recorded.
type HistorySettings struct {
	Backend string `yaml:"backend" validate:"oneof=sqlite postgres"`
	Path    string `yaml:"path"` // sqlite file, resolved against the workspace when relative
	DSN     string `yaml:"dsn"`  // postgres connection string
}

// ArchiveSettings configures the optional S3-compatible artifact archive.
type ArchiveSettings struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// Defaults returns the built-in configuration.
func Defaults() *Settings {
	return &Settings{
		Workspace: ".",
		Provider:  "gemini",
		Parallel:  1,
		Freshness: "existence",
		Timeouts: TimeoutSettings{
			PreprocessSeconds: 300,
			TranscribeSeconds: 600,
			GenerateSeconds:   300,
		},
		Audio: AudioSettings{
			Stages:  []string{"mono", "silence", "noise", "normalize", "compress", "resample"},
			Bitrate: "128k",
		},
		Models: ModelSettings{
			Gemini:           "gemini-2.5-flash",
			OpenAITranscribe: "whisper-1",
			OpenAIChat:       "gpt-3.5-turbo",
		},
		History: HistorySettings{
			Backend: "sqlite",
			Path:    filepath.Join("data", "v2b.db"),
		},
		Archive: ArchiveSettings{
			Endpoint: "localhost:9000",
			Bucket:   "v2b-artifacts",
		},
	}
}

// Load builds the settings from defaults plus an optional YAML file. An
// explicit path must exist; the default v2b.yaml is used only when present.
func Load(configPath string) (*Settings, error) {
	settings := Defaults()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigFile
	}
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); err != nil {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return settings, settings.Validate()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return settings, settings.Validate()
}

// Validate checks the settings against their constraints.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if s.History.Backend == "postgres" && s.History.DSN == "" {
		return fmt.Errorf("invalid configuration: history.dsn is required for the postgres backend")
	}
	return nil
}

// HistoryPath returns the sqlite history file resolved against the
// workspace.
func (s *Settings) HistoryPath() string {
	if filepath.IsAbs(s.History.Path) {
		return s.History.Path
	}
	return filepath.Join(s.Workspace, s.History.Path)
}
