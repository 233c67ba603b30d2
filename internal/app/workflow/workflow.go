package workflow

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "voice-blog/internal/app/errors"
	"voice-blog/internal/app/repository"
	"voice-blog/internal/app/util/files"
	"voice-blog/internal/config"
)

// Request selects what one invocation processes.
type Request struct {
	// Folders are explicit folder names, or the "all" sentinel.
	Folders []string
	// Steps are the requested step numbers; empty means the whole pipeline.
	Steps []int
	// Force re-runs steps whose outputs look fresh.
	Force bool
	// Parallel overrides the configured worker count when positive.
	Parallel int
}

// Workflow drives the pipeline across folders. Folders never share
// state: each one walks its requested steps independently and a failure
// in one folder does not stop the others.
type Workflow struct {
	cfg      *config.Settings
	keys     *config.APIKeys
	layout   Layout
	runner   *StepRunner
	adapters Adapters
	timeouts config.TimeoutSettings
	history  repository.HistoryDAO
	logger   *zap.SugaredLogger

	// histMu serializes history writes; the sqlite backend wants a
	// single writer.
	histMu sync.Mutex
}

func New(cfg *config.Settings, keys *config.APIKeys, layout Layout, adapters Adapters, policy Policy, history repository.HistoryDAO, logger *zap.SugaredLogger) *Workflow {
	return &Workflow{
		cfg:      cfg,
		keys:     keys,
		layout:   layout,
		runner:   NewStepRunner(policy, logger),
		adapters: adapters,
		timeouts: cfg.Timeouts,
		history:  history,
		logger:   logger,
	}
}

// Execute runs the requested steps over the requested folders and
// returns the full per-step accounting. Only request-level problems
// (bad step numbers, no resolvable folders, missing credentials) come
// back as an error; per-folder failures land in the Result.
func (w *Workflow) Execute(ctx context.Context, req Request) (*Result, error) {
	steps, err := NormalizeSteps(req.Steps)
	if err != nil {
		return nil, err
	}

	// Credentials are checked once, before anything runs, so a missing
	// key cannot fail folder #37 after an hour of API spend.
	if needsProvider(steps) {
		if err := config.RequireProviderKey(w.cfg.Provider, w.keys); err != nil {
			return nil, err
		}
	}

	jobs, err := ResolveJobs(w.layout, req.Folders)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no folders with a %s found under %s", RawAudioName, w.layout.InputRoot())
	}

	parallel := req.Parallel
	if parallel < 1 {
		parallel = w.cfg.Parallel
	}
	if parallel < 1 {
		parallel = 1
	}
	if parallel > len(jobs) {
		parallel = len(jobs)
	}

	specs := w.specsFor(steps)
	result := &Result{
		RunID:   uuid.NewString(),
		Steps:   steps,
		Folders: make([]FolderResult, len(jobs)),
	}

	w.logger.Infow("run starting", "run_id", result.RunID,
		"folders", len(jobs), "steps", steps, "parallel", parallel, "force", req.Force)

	progress := NewProgressManager(ProgressConfig{Enabled: ShouldShowProgress(false) && len(jobs) > 1})
	bar := progress.CreateBar(len(jobs), "Processing folders")

	if parallel == 1 {
		for i, job := range jobs {
			result.Folders[i] = w.runFolder(ctx, result.RunID, specs, job, req.Force)
			bar.Increment()
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan bool, parallel)

		for i, job := range jobs {
			wg.Add(1)
			go func(i int, job Job) {
				defer wg.Done()
				defer bar.Increment()

				sem <- true
				result.Folders[i] = w.runFolder(ctx, result.RunID, specs, job, req.Force)
				<-sem
			}(i, job)
		}
		wg.Wait()
	}

	bar.Complete()
	progress.Wait()

	succeeded, skipped, failed, notRun := result.Counts()
	w.logger.Infow("run finished", "run_id", result.RunID,
		"succeeded", succeeded, "skipped", skipped, "failed", failed, "not_run", notRun)

	return result, nil
}

// runFolder walks one folder through the requested steps under its
// lock. After a failed step the remaining steps are reported as not run
// instead of being attempted against a broken upstream artifact.
func (w *Workflow) runFolder(ctx context.Context, runID string, specs []stepSpec, job Job, force bool) FolderResult {
	unlock, err := w.lockFolder(job.Folder)
	if err != nil {
		return w.rejectFolder(runID, specs, job, err)
	}
	defer unlock()

	fr := FolderResult{Folder: job.Folder}
	failed := false
	for _, spec := range specs {
		var outcome StepOutcome
		switch {
		case failed:
			outcome = notRunOutcome(spec, job, "earlier step failed")
		case ctx.Err() != nil:
			outcome = notRunOutcome(spec, job, "run canceled")
		default:
			outcome = w.runner.Run(ctx, spec, job, force)
		}

		if outcome.Status == StatusFailed {
			failed = true
		}
		w.record(runID, job.Folder, outcome)
		fr.Outcomes = append(fr.Outcomes, outcome)
	}
	return fr
}

// lockFolder takes the folder's advisory lock without blocking. A held
// lock means another invocation is working the same folder right now.
func (w *Workflow) lockFolder(folder string) (func(), error) {
	lockPath := w.layout.LockFile(folder)
	if err := files.EnsureDir(filepath.Dir(lockPath)); err != nil {
		return nil, apperrors.Wrapf(err, "failed to prepare lock for folder %s", folder)
	}

	fileLock := flock.New(lockPath)
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to lock folder %s", folder)
	}
	if !locked {
		return nil, apperrors.Conflict(folder)
	}

	return func() {
		if err := fileLock.Unlock(); err != nil {
			w.logger.Warnw("failed to unlock folder", "folder", folder, "error", err)
		}
	}, nil
}

// rejectFolder reports a folder that could not even start: the first
// requested step carries the cause, the rest are not run.
func (w *Workflow) rejectFolder(runID string, specs []stepSpec, job Job, cause error) FolderResult {
	w.logger.Errorw("folder rejected", "folder", job.Folder, "error", cause)

	fr := FolderResult{Folder: job.Folder}
	for i, spec := range specs {
		var outcome StepOutcome
		if i == 0 {
			outcome = StepOutcome{
				Step:       spec.number,
				Name:       spec.name,
				Status:     StatusFailed,
				OutputPath: spec.output(job),
				StartedAt:  time.Now(),
				Err:        cause,
			}
		} else {
			outcome = notRunOutcome(spec, job, "earlier step failed")
		}
		w.record(runID, job.Folder, outcome)
		fr.Outcomes = append(fr.Outcomes, outcome)
	}
	return fr
}

func notRunOutcome(spec stepSpec, job Job, reason string) StepOutcome {
	return StepOutcome{
		Step:       spec.number,
		Name:       spec.name,
		Status:     StatusNotRun,
		OutputPath: spec.output(job),
		Reason:     reason,
		StartedAt:  time.Now(),
	}
}

func (w *Workflow) record(runID, folder string, outcome StepOutcome) {
	if w.history == nil {
		return
	}

	w.histMu.Lock()
	defer w.histMu.Unlock()
	if err := w.history.RecordStepRun(outcome.ToStepRun(runID, folder)); err != nil {
		w.logger.Warnw("failed to record step history", "folder", folder, "step", outcome.Name, "error", err)
	}
}

func needsProvider(steps []int) bool {
	for _, s := range steps {
		if s == StepTranscribe || s == StepGenerate {
			return true
		}
	}
	return false
}
