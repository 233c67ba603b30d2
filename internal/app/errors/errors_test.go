package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "missing_input",
			err:      MissingInput("input/audio-file/7/raw.mp3"),
			expected: KindMissingInput,
		},
		{
			name:     "missing_dependency",
			err:      MissingDependency("transcribe", "output/7/processed.mp3"),
			expected: KindMissingDependency,
		},
		{
			name:     "tool_error",
			err:      ToolError("ffmpeg", stderrors.New("exit status 1")),
			expected: KindToolError,
		},
		{
			name:     "api_error",
			err:      APIError(429, stderrors.New("quota exceeded")),
			expected: KindAPIError,
		},
		{
			name:     "empty_result",
			err:      EmptyResult("transcript"),
			expected: KindEmptyResult,
		},
		{
			name:     "timeout",
			err:      Timeout("transcribe", 600*time.Second),
			expected: KindTimeout,
		},
		{
			name:     "missing_credential",
			err:      MissingCredential("GEMINI_API_KEY"),
			expected: KindMissingCredential,
		},
		{
			name:     "kind_survives_plain_wrapping",
			err:      fmt.Errorf("step failed: %w", APIError(500, stderrors.New("boom"))),
			expected: KindAPIError,
		},
		{
			name:     "kind_survives_package_wrapping",
			err:      Wrap(Timeout("preprocess", time.Minute), "folder 3"),
			expected: KindTimeout,
		},
		{
			name:     "unclassified_error",
			err:      stderrors.New("plain"),
			expected: Kind(""),
		},
		{
			name:     "unclassified_wrapped_error",
			err:      Wrap(stderrors.New("plain"), "context"),
			expected: Kind(""),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KindOf(tc.err))
		})
	}
}

func TestAPIErrorStatus(t *testing.T) {
	err := APIError(503, stderrors.New("overloaded"))
	assert.Equal(t, 503, err.Status())
	assert.Contains(t, err.Error(), "status 503")

	wrapped := Wrap(err, "generate blog post")
	assert.Equal(t, 503, StatusOf(wrapped))
	assert.Equal(t, 0, StatusOf(stderrors.New("plain")))
}

func TestMessages(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "missing_input_names_path",
			err:      MissingInput("input/audio-file/9/raw.mp3"),
			contains: "input/audio-file/9/raw.mp3",
		},
		{
			name:     "missing_dependency_names_step_and_path",
			err:      MissingDependency("generate", "output/9/transcript.txt"),
			contains: "generate needs output/9/transcript.txt",
		},
		{
			name:     "tool_error_carries_cause",
			err:      ToolError("ffmpeg", stderrors.New("unknown encoder")),
			contains: "unknown encoder",
		},
		{
			name:     "timeout_names_limit",
			err:      Timeout("transcribe", 10*time.Minute),
			contains: "10m0s",
		},
		{
			name:     "missing_credential_names_variable",
			err:      MissingCredential("OPENAI_API_KEY"),
			contains: "OPENAI_API_KEY is not set",
		},
		{
			name:     "conflict_names_folder",
			err:      Conflict("12"),
			contains: "folder 12 is locked",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, tc.err.Error(), tc.contains)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ToolError("ffprobe", cause)
	assert.True(t, stderrors.Is(err, cause))
}
