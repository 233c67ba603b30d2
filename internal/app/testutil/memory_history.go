package testutil

import (
	"sync"

	"voice-blog/internal/app/model"
	"voice-blog/internal/app/repository"
)

// MemoryHistory is an in-memory HistoryDAO for tests.
type MemoryHistory struct {
	mu   sync.Mutex
	rows []model.StepRun
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (h *MemoryHistory) RecordStepRun(run model.StepRun) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	run.ID = len(h.rows) + 1
	h.rows = append(h.rows, run)
	return nil
}

func (h *MemoryHistory) GetByFolder(folder string) ([]model.StepRun, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []model.StepRun
	for _, r := range h.rows {
		if r.Folder == folder {
			out = append(out, r)
		}
	}
	return out, nil
}

func (h *MemoryHistory) GetAll() ([]model.StepRun, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]model.StepRun, len(h.rows))
	copy(out, h.rows)
	return out, nil
}

func (h *MemoryHistory) Close() error { return nil }

// Rows returns a copy of everything recorded so far.
func (h *MemoryHistory) Rows() []model.StepRun {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]model.StepRun, len(h.rows))
	copy(out, h.rows)
	return out
}

var _ repository.HistoryDAO = (*MemoryHistory)(nil)
