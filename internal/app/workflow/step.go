package workflow

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"voice-blog/internal/app/api"
	"voice-blog/internal/app/audio"
	apperrors "voice-blog/internal/app/errors"
	"voice-blog/internal/app/util/files"
)

// Pipeline step numbers. These are the CLI contract and stay stable even
// if steps are ever added in between.
const (
	StepPreprocess = 1
	StepTranscribe = 2
	StepGenerate   = 3
)

// AllSteps returns the full pipeline in execution order.
func AllSteps() []int {
	return []int{StepPreprocess, StepTranscribe, StepGenerate}
}

// StepName maps a step number to its human name.
func StepName(step int) string {
	switch step {
	case StepPreprocess:
		return "preprocess"
	case StepTranscribe:
		return "transcribe"
	case StepGenerate:
		return "generate"
	default:
		return fmt.Sprintf("step-%d", step)
	}
}

// NormalizeSteps validates and orders the requested step numbers. An
// empty request means the whole pipeline. Duplicates collapse and the
// result is always ascending, however the flags were written.
func NormalizeSteps(steps []int) ([]int, error) {
	if len(steps) == 0 {
		return AllSteps(), nil
	}
	unique := lo.Uniq(steps)
	sort.Ints(unique)
	for _, s := range unique {
		if s < StepPreprocess || s > StepGenerate {
			return nil, fmt.Errorf("unknown step %d: valid steps are 1 (preprocess), 2 (transcribe), 3 (generate)", s)
		}
	}
	return unique, nil
}

// Adapters bundles the external capabilities the steps call out to.
type Adapters struct {
	Preprocessor audio.Preprocessor
	Transcriber  api.Transcriber
	Generator    api.Generator
}

// stepSpec binds a step number to its artifact paths, deadline, and
// adapter invocation. The invoke functions own artifact writing and use
// atomic writes throughout, so no failure path leaves a partial file.
type stepSpec struct {
	number  int
	name    string
	input   func(Job) string
	output  func(Job) string
	timeout time.Duration
	invoke  func(ctx context.Context, job Job) error
}

func (w *Workflow) stepSpecs() []stepSpec {
	return []stepSpec{
		{
			number:  StepPreprocess,
			name:    StepName(StepPreprocess),
			input:   func(j Job) string { return j.RawAudio },
			output:  func(j Job) string { return j.ProcessedAudio },
			timeout: w.timeouts.Preprocess(),
			invoke: func(ctx context.Context, job Job) error {
				return w.adapters.Preprocessor.Process(ctx, job.RawAudio, job.ProcessedAudio)
			},
		},
		{
			number:  StepTranscribe,
			name:    StepName(StepTranscribe),
			input:   func(j Job) string { return j.ProcessedAudio },
			output:  func(j Job) string { return j.Transcript },
			timeout: w.timeouts.Transcribe(),
			invoke: func(ctx context.Context, job Job) error {
				text, err := w.adapters.Transcriber.Transcribe(ctx, job.ProcessedAudio)
				if err != nil {
					return err
				}
				if strings.TrimSpace(text) == "" {
					return apperrors.EmptyResult("transcript")
				}
				return files.WriteAtomic(job.Transcript, []byte(text+"\n"))
			},
		},
		{
			number:  StepGenerate,
			name:    StepName(StepGenerate),
			input:   func(j Job) string { return j.Transcript },
			output:  func(j Job) string { return j.BlogPost },
			timeout: w.timeouts.Generate(),
			invoke: func(ctx context.Context, job Job) error {
				transcript, err := files.ReadTrimmed(job.Transcript)
				if err != nil {
					return fmt.Errorf("failed to read transcript: %w", err)
				}
				post, err := w.adapters.Generator.Generate(ctx, transcript)
				if err != nil {
					return err
				}
				if strings.TrimSpace(post) == "" {
					return apperrors.EmptyResult("blog post")
				}
				return files.WriteAtomic(job.BlogPost, []byte(post+"\n"))
			},
		},
	}
}

// specsFor filters the full table down to the requested (already
// normalized) steps.
func (w *Workflow) specsFor(steps []int) []stepSpec {
	all := w.stepSpecs()
	var selected []stepSpec
	for _, spec := range all {
		for _, n := range steps {
			if spec.number == n {
				selected = append(selected, spec)
			}
		}
	}
	return selected
}
