package transcribe

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
		"re-transcribe even when transcript.txt looks fresh")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 0,
		"process up to N folders concurrently (default from config)")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [folders...|all]",
	Short: "Transcribe processed recordings into transcript.txt",
	Long: `Transcribe processed recordings into transcript.txt

Requires output/<folder>/processed.mp3 from an earlier preprocess run;
this command never runs the preprocess step itself. The transcript is
lightly redacted: filler words go, paragraphs appear, the spoken words
stay untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		verbose, _ := cmd.Flags().GetBool("verbose")
		configPath, _ := cmd.Flags().GetString("config")

		return app.RunPipeline(ctx, app.RunOptions{
			ConfigPath: configPath,
			Folders:    args,
			Steps:      []int{workflow.StepTranscribe},
			Force:      force,
			Parallel:   parallel,
			Verbose:    verbose,
		})
	},
}
