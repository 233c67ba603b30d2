package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	apperrors "voice-blog/internal/app/errors"
)

func newTestRunner() *StepRunner {
	return NewStepRunner(ExistencePolicy{}, zap.NewNop().Sugar())
}

func TestRunnerValidatesInputBeforeFreshness(t *testing.T) {
	f := newFixture(t)
	// fresh-looking output, but the raw recording is gone
	writeFile(t, f.layout.ProcessedAudio("01"), "already processed")

	specs := f.workflow.specsFor([]int{StepPreprocess})
	outcome := f.workflow.runner.Run(context.Background(), specs[0], NewJob(f.layout, "01"), false)

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, apperrors.KindMissingInput, apperrors.KindOf(outcome.Err))
}

func TestClassifyTimeout(t *testing.T) {
	r := newTestRunner()
	spec := stepSpec{number: StepTranscribe, name: "transcribe", timeout: 5 * time.Second}

	err := r.classify(spec, context.DeadlineExceeded)
	assert.Equal(t, apperrors.KindTimeout, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "timed out after 5s")
}

func TestClassifyUnkindedErrors(t *testing.T) {
	r := newTestRunner()

	toolErr := r.classify(stepSpec{number: StepPreprocess, name: "preprocess"}, errors.New("boom"))
	assert.Equal(t, apperrors.KindToolError, apperrors.KindOf(toolErr))

	apiErr := r.classify(stepSpec{number: StepGenerate, name: "generate"}, errors.New("boom"))
	assert.Equal(t, apperrors.KindAPIError, apperrors.KindOf(apiErr))
}

func TestClassifyKeepsKindedErrors(t *testing.T) {
	r := newTestRunner()

	orig := apperrors.APIError(429, errors.New("rate limited"))
	got := r.classify(stepSpec{number: StepTranscribe, name: "transcribe"}, orig)

	assert.Equal(t, apperrors.KindAPIError, apperrors.KindOf(got))
	assert.Equal(t, 429, apperrors.StatusOf(got))
}

func TestClassifyCanceled(t *testing.T) {
	r := newTestRunner()

	got := r.classify(stepSpec{number: StepTranscribe, name: "transcribe"}, context.Canceled)
	assert.Equal(t, apperrors.Kind(""), apperrors.KindOf(got))
	assert.ErrorIs(t, got, context.Canceled)
}
