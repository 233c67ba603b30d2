package workflow

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "voice-blog/internal/app/errors"
)

func TestRenderReport(t *testing.T) {
	result := &Result{
		RunID: "run-123",
		Steps: []int{1, 2, 3},
		Folders: []FolderResult{
			{Folder: "01", Outcomes: []StepOutcome{
				{Step: 1, Name: "preprocess", Status: StatusSkipped, Reason: "output exists"},
				{Step: 2, Name: "transcribe", Status: StatusSucceeded, OutputPath: "output/01/transcript.txt", Duration: 1200 * time.Millisecond},
				{Step: 3, Name: "generate", Status: StatusSucceeded, OutputPath: "output/01/blog_post.md", Duration: 3400 * time.Millisecond},
			}},
			{Folder: "02", Outcomes: []StepOutcome{
				{Step: 1, Name: "preprocess", Status: StatusFailed, Err: apperrors.ToolError("preprocess", errors.New("exit status 1"))},
				{Step: 2, Name: "transcribe", Status: StatusNotRun, Reason: "earlier step failed"},
				{Step: 3, Name: "generate", Status: StatusNotRun, Reason: "earlier step failed"},
			}},
		},
	}

	var buf bytes.Buffer
	Render(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "01  [ok]")
	assert.Contains(t, out, "02  [FAILED]")
	assert.Contains(t, out, "output/01/transcript.txt (1.2s)")
	assert.Contains(t, out, "tool_error: preprocess failed: exit status 1")
	assert.Contains(t, out, "run run-123: 2 succeeded, 1 skipped, 1 failed, 2 not run")
}
