package workflow

import (
	"time"

	apperrors "voice-blog/internal/app/errors"
	"voice-blog/internal/app/model"
)

// Status is a step's terminal state within one run.
type Status string

const (
	// StatusSucceeded means the adapter ran and the output verified.
	StatusSucceeded Status = "succeeded"
	// StatusSkipped means the freshness policy found the output good;
	// the adapter was never invoked.
	StatusSkipped Status = "skipped"
	// StatusFailed means validation or the adapter failed.
	StatusFailed Status = "failed"
	// StatusNotRun means an earlier step's failure stopped the folder
	// before this step.
	StatusNotRun Status = "not_run"
)

// StepOutcome is one step's result for one folder.
type StepOutcome struct {
	Step       int
	Name       string
	Status     Status
	OutputPath string
	Reason     string
	Duration   time.Duration
	StartedAt  time.Time
	Err        error
}

// ErrorKind returns the outcome's failure classification, empty for
// non-failures and unclassified errors.
func (o StepOutcome) ErrorKind() string {
	if o.Err == nil {
		return ""
	}
	return string(apperrors.KindOf(o.Err))
}

// ToStepRun converts the outcome into its history row.
func (o StepOutcome) ToStepRun(runID, folder string) model.StepRun {
	run := model.StepRun{
		RunID:      runID,
		Folder:     folder,
		Step:       o.Step,
		StepName:   o.Name,
		Status:     string(o.Status),
		OutputPath: o.OutputPath,
		DurationMS: o.Duration.Milliseconds(),
		ErrorKind:  o.ErrorKind(),
		StartedAt:  o.StartedAt,
	}
	if o.Err != nil {
		run.ErrorMessage = o.Err.Error()
	}
	return run
}

// FolderResult collects one folder's outcomes in step order.
type FolderResult struct {
	Folder   string
	Outcomes []StepOutcome
}

// Failed reports whether any step of the folder failed.
func (fr FolderResult) Failed() bool {
	for _, o := range fr.Outcomes {
		if o.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Result is a complete run: folders in request order.
type Result struct {
	RunID   string
	Steps   []int
	Folders []FolderResult
}

// Failed reports whether any folder failed. The process exit code
// follows this: zero only when every requested step of every folder
// succeeded or was skipped.
func (r *Result) Failed() bool {
	for _, fr := range r.Folders {
		if fr.Failed() {
			return true
		}
	}
	return false
}

// Counts returns the totals of each terminal status across the run.
func (r *Result) Counts() (succeeded, skipped, failed, notRun int) {
	for _, fr := range r.Folders {
		for _, o := range fr.Outcomes {
			switch o.Status {
			case StatusSucceeded:
				succeeded++
			case StatusSkipped:
				skipped++
			case StatusFailed:
				failed++
			case StatusNotRun:
				notRun++
			}
		}
	}
	return
}
