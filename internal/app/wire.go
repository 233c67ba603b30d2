//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"voice-blog/internal/app/workflow"
	"voice-blog/internal/config"
)

// InitializeWorkflow assembles the pipeline for the configured provider,
// freshness policy, and history backend. The returned cleanup closes the
// history database.
func InitializeWorkflow(cfg *config.Settings, keys *config.APIKeys, log *zap.SugaredLogger) (*workflow.Workflow, func(), error) {
	wire.Build(
		workflow.New,
		provideLayout,
		providePolicy,
		provideHistory,
		provideAdapters,
	)
	return nil, nil, nil
}
