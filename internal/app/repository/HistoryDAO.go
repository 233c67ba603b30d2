package repository

import (
	"voice-blog/internal/app/model"
)

// HistoryDAO persists step outcomes across runs. The pipeline's skip logic
// never consults it, freshness is decided from the filesystem alone, so a
// lost or empty history never changes what gets processed.
type HistoryDAO interface {
	Close() error

	RecordStepRun(run model.StepRun) error

	GetByFolder(folder string) ([]model.StepRun, error)

	GetAll() ([]model.StepRun, error)
}
