package run

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voice-blog/internal/app"
)

var (
	force    bool
	steps    []int
	parallel int
)

func init() {
	Cmd.Flags().BoolVarP(&force, "force", "f", false,
		"re-run steps even when their outputs look fresh")
	Cmd.Flags().IntSliceVarP(&steps, "steps", "s", nil,
		"steps to run: 1=preprocess, 2=transcribe, 3=generate (default all)")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 0,
		"process up to N folders concurrently (default from config)")
}

// Cmd represents the run command
var Cmd = &cobra.Command{
	Use:   "run [folders...|all]",
	Short: "Run the recording-to-blog pipeline over the given folders",
	Long: `Run the recording-to-blog pipeline over the given folders

- preprocess cleans input/audio-file/<folder>/raw.mp3 into output/<folder>/processed.mp3
- transcribe turns processed.mp3 into transcript.txt
- generate writes blog_post.md from the transcript
Pass folder names, or 'all' to process every folder with a recording.
Steps whose outputs already exist are skipped unless --force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		verbose, _ := cmd.Flags().GetBool("verbose")
		configPath, _ := cmd.Flags().GetString("config")

		return app.RunPipeline(ctx, app.RunOptions{
			ConfigPath: configPath,
			Folders:    args,
			Steps:      steps,
			Force:      force,
			Parallel:   parallel,
			Verbose:    verbose,
		})
	},
}
