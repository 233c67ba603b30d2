package app

import (
	"context"
	"fmt"
	"os"

	"voice-blog/internal/app/logger"
	"voice-blog/internal/app/workflow"
	"voice-blog/internal/config"
)

// RunOptions carries the CLI flags shared by the pipeline commands.
type RunOptions struct {
	ConfigPath string
	Folders    []string
	Steps      []int
	Force      bool
	Parallel   int
	Verbose    bool
}

// RunPipeline loads configuration and credentials, assembles the
// workflow, executes it, and prints the report. The returned error is
// non-nil when the run could not start or when any step failed, so the
// CLI exits non-zero exactly then.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	keys, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	log := logger.MustNew(opts.Verbose).Sugar()
	defer log.Sync()

	wf, cleanup, err := InitializeWorkflow(cfg, keys, log)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := wf.Execute(ctx, workflow.Request{
		Folders:  opts.Folders,
		Steps:    opts.Steps,
		Force:    opts.Force,
		Parallel: opts.Parallel,
	})
	if err != nil {
		return err
	}

	workflow.Render(os.Stdout, result)

	if ctx.Err() != nil {
		return fmt.Errorf("run interrupted")
	}
	if result.Failed() {
		_, _, failed, _ := result.Counts()
		return fmt.Errorf("%d step(s) failed", failed)
	}
	return nil
}
