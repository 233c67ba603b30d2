package app

import (
	"fmt"

	"go.uber.org/zap"

	"voice-blog/internal/app/api"
	"voice-blog/internal/app/api/gemini"
	"voice-blog/internal/app/api/openai"
	"voice-blog/internal/app/audio"
	"voice-blog/internal/app/repository"
	"voice-blog/internal/app/repository/pg"
	"voice-blog/internal/app/repository/sqlite"
	"voice-blog/internal/app/workflow"
	"voice-blog/internal/config"
)

func provideLayout(cfg *config.Settings) workflow.Layout {
	return workflow.NewLayout(cfg.Workspace)
}

func providePolicy(cfg *config.Settings) (workflow.Policy, error) {
	return workflow.NewPolicy(cfg.Freshness)
}

// provideHistory opens the configured history backend. The cleanup
// closes it after the run.
func provideHistory(cfg *config.Settings) (repository.HistoryDAO, func(), error) {
	var dao repository.HistoryDAO
	var err error

	switch cfg.History.Backend {
	case "postgres":
		dao, err = pg.NewPostgresDB(cfg.History.DSN)
	default:
		dao, err = sqlite.NewSQLiteDB(cfg.HistoryPath())
	}
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = dao.Close()
	}
	return dao, cleanup, nil
}

// OpenHistory opens the configured history backend outside the injector,
// for commands that only read the run history.
func OpenHistory(cfg *config.Settings) (repository.HistoryDAO, func(), error) {
	return provideHistory(cfg)
}

// provideAdapters builds the three step adapters for the configured
// provider. Gemini transcribes the audio directly; openai goes through
// whisper plus a redaction pass.
func provideAdapters(cfg *config.Settings, keys *config.APIKeys, log *zap.SugaredLogger) (workflow.Adapters, error) {
	preprocessor := audio.NewFFmpegPreprocessor(cfg.Audio.Stages, cfg.Audio.Bitrate, log)

	var transcriber api.Transcriber
	var generator api.Generator

	switch cfg.Provider {
	case "gemini":
		transcriber = gemini.NewTranscriber(keys.Gemini, cfg.Models.Gemini, log)
		generator = gemini.NewGenerator(keys.Gemini, cfg.Models.Gemini, log)
	case "openai":
		client := openai.NewClient(keys.OpenAI, "")
		transcriber = openai.NewTranscriber(client, cfg.Models.OpenAITranscribe, cfg.Models.OpenAIChat, log)
		generator = openai.NewGenerator(client, cfg.Models.OpenAIChat, log)
	default:
		return workflow.Adapters{}, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}

	return workflow.Adapters{
		Preprocessor: preprocessor,
		Transcriber:  transcriber,
		Generator:    generator,
	}, nil
}
