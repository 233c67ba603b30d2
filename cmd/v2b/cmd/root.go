package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"voice-blog/cmd/v2b/cmd/archive"
	"voice-blog/cmd/v2b/cmd/export"
	"voice-blog/cmd/v2b/cmd/generate"
	"voice-blog/cmd/v2b/cmd/preprocess"
	"voice-blog/cmd/v2b/cmd/run"
	"voice-blog/cmd/v2b/cmd/transcribe"
	"voice-blog/cmd/v2b/cmd/version"
)

var Verbose bool
var ConfigPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "v2b",
	Short: "An application for turning folders of voice recordings into blog post drafts",
	Long: `An application for turning folders of voice recordings into blog post drafts.
- Drop recordings into input/audio-file/<folder>/raw.mp3
- preprocess cleans the audio with ffmpeg, transcribe and generate call the configured model
- Existing outputs are skipped, so interrupted runs resume where they stopped
- Every step outcome is recorded to the run history database.`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(preprocess.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(archive.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "config file (default is ./v2b.yaml)")
}
