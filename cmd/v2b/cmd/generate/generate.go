package generate

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
		"re-generate even when blog_post.md looks fresh")
	Cmd.Flags().IntVarP(&parallel, "parallel", "p", 0,
		"process up to N folders concurrently (default from config)")
}

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate [folders...|all]",
	Short: "Generate blog post drafts from existing transcripts",
	Long: `Generate blog post drafts from existing transcripts

Requires output/<folder>/transcript.txt from an earlier transcribe run;
this command never runs the earlier steps itself. Useful for retrying
generation with a different model or after editing a transcript.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		verbose, _ := cmd.Flags().GetBool("verbose")
		configPath, _ := cmd.Flags().GetString("config")

		return app.RunPipeline(ctx, app.RunOptions{
			ConfigPath: configPath,
			Folders:    args,
			Steps:      []int{workflow.StepGenerate},
			Force:      force,
			Parallel:   parallel,
			Verbose:    verbose,
		})
	},
}
