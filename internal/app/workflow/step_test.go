package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSteps(t *testing.T) {
	testCases := []struct {
		name    string
		steps   []int
		want    []int
		wantErr bool
	}{
		{name: "empty_means_all", steps: nil, want: []int{1, 2, 3}},
		{name: "subset_sorted_ascending", steps: []int{3, 2}, want: []int{2, 3}},
		{name: "duplicates_collapse", steps: []int{2, 2, 2}, want: []int{2}},
		{name: "single_step", steps: []int{1}, want: []int{1}},
		{name: "step_zero_rejected", steps: []int{0}, wantErr: true},
		{name: "step_four_rejected", steps: []int{1, 4}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeSteps(tc.steps)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStepName(t *testing.T) {
	assert.Equal(t, "preprocess", StepName(StepPreprocess))
	assert.Equal(t, "transcribe", StepName(StepTranscribe))
	assert.Equal(t, "generate", StepName(StepGenerate))
	assert.Equal(t, "step-9", StepName(9))
}
