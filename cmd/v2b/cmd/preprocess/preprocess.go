package preprocess

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voice-blog/internal/app"
	"voice-blog/internal/app/workflow"
)

var (
	force    bool
	parallel int
)

func init() {
	Cmd.Flags().BoolVarP(&force, "force", "f", false,
		"re-process recordings even when processed.mp3 looks fresh")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 0,
		"process up to N folders concurrently (default from config)")
}

// Cmd represents the preprocess command
var Cmd = &cobra.Command{
	Use:   "preprocess [folders...|all]",
	Short: "Clean up raw recordings with ffmpeg without transcribing them",
	Long: `Clean up raw recordings with ffmpeg without transcribing them

Runs only the audio cleanup: silence trimming, noise reduction,
loudness normalization, compression, and downsampling to 16 kHz mono.
No API key is needed for this step.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		verbose, _ := cmd.Flags().GetBool("verbose")
		configPath, _ := cmd.Flags().GetString("config")

		return app.RunPipeline(ctx, app.RunOptions{
			ConfigPath: configPath,
			Folders:    args,
			Steps:      []int{workflow.StepPreprocess},
			Force:      force,
			Parallel:   parallel,
			Verbose:    verbose,
		})
	},
}
