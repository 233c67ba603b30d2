package workflow

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	apperrors "voice-blog/internal/app/errors"
	"voice-blog/internal/app/util/files"
)

// StepRunner executes one step for one job: validate the input, consult
// the freshness policy, apply the deadline, invoke the adapter, verify
// the output. It holds no per-folder state, the same runner serves every
// worker.
type StepRunner struct {
	policy Policy
	logger *zap.SugaredLogger
}

func NewStepRunner(policy Policy, logger *zap.SugaredLogger) *StepRunner {
	return &StepRunner{policy: policy, logger: logger}
}

func (r *StepRunner) Run(ctx context.Context, spec stepSpec, job Job, force bool) StepOutcome {
	outcome := StepOutcome{
		Step:       spec.number,
		Name:       spec.name,
		OutputPath: spec.output(job),
		StartedAt:  time.Now(),
	}

	inputPath := spec.input(job)
	outputPath := spec.output(job)

	if !files.ExistsNonEmpty(inputPath) {
		if spec.number == StepPreprocess {
			outcome.fail(apperrors.MissingInput(inputPath))
		} else {
			outcome.fail(apperrors.MissingDependency(spec.name, inputPath))
		}
		r.logger.Errorw("step input missing", "folder", job.Folder, "step", spec.name, "input", inputPath)
		return outcome
	}

	decision := r.policy.Decide(inputPath, outputPath, force)
	outcome.Reason = decision.Reason
	if !decision.Run {
		outcome.Status = StatusSkipped
		r.logger.Infow("step skipped", "folder", job.Folder, "step", spec.name, "reason", decision.Reason)
		return outcome
	}
	r.logger.Debugw("step will run", "folder", job.Folder, "step", spec.name, "reason", decision.Reason)

	if err := files.EnsureDir(filepath.Dir(outputPath)); err != nil {
		outcome.fail(apperrors.Wrapf(err, "failed to create output directory for %s", job.Folder))
		return outcome
	}

	stepCtx := ctx
	if spec.timeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, spec.timeout)
		defer cancel()
	}

	started := time.Now()
	err := spec.invoke(stepCtx, job)
	outcome.Duration = time.Since(started)

	if err != nil {
		outcome.fail(r.classify(spec, err))
		r.logger.Errorw("step failed", "folder", job.Folder, "step", spec.name,
			"kind", outcome.ErrorKind(), "error", outcome.Err)
		return outcome
	}

	// The adapter reported success; trust movement on disk, not the
	// return value.
	if !files.ExistsNonEmpty(outputPath) {
		outcome.fail(apperrors.EmptyResult(spec.name + " output"))
		r.logger.Errorw("step produced no output", "folder", job.Folder, "step", spec.name, "output", outputPath)
		return outcome
	}

	if err := r.policy.Record(inputPath, outputPath); err != nil {
		r.logger.Warnw("failed to record freshness state", "folder", job.Folder, "step", spec.name, "error", err)
	}

	outcome.Status = StatusSucceeded
	r.logger.Infow("step succeeded", "folder", job.Folder, "step", spec.name,
		"output", outputPath, "duration", outcome.Duration)
	return outcome
}

func (r *StepRunner) classify(spec stepSpec, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Timeout(spec.name, spec.timeout)
	}
	if errors.Is(err, context.Canceled) {
		return apperrors.Wrap(err, spec.name+" interrupted")
	}
	if apperrors.KindOf(err) != "" {
		return err
	}
	// Unclassified adapter failures map to the step's natural kind.
	if spec.number == StepPreprocess {
		return apperrors.ToolError(spec.name, err)
	}
	return apperrors.APIError(0, err)
}

func (o *StepOutcome) fail(err error) {
	o.Status = StatusFailed
	o.Err = err
}
