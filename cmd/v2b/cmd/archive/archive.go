package archive

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"voice-blog/internal/app/archive"
	"voice-blog/internal/app/logger"
	"voice-blog/internal/app/workflow"
	"voice-blog/internal/config"
)

// Cmd represents the archive command
var Cmd = &cobra.Command{
	Use:   "archive [folders...|all]",
	Short: "Upload finished artifacts to the configured object storage",
	Long: `Upload finished artifacts to the configured object storage

Pushes processed.mp3, transcript.txt, and blog_post.md of each folder
to the S3-compatible bucket from the archive section of the config.
Folders that have not produced any artifacts yet are reported and the
command exits non-zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		verbose, _ := cmd.Flags().GetBool("verbose")
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		log := logger.MustNew(verbose).Sugar()
		defer log.Sync()

		uploader, err := archive.NewUploader(cfg.Archive, log)
		if err != nil {
			return err
		}
		if err := uploader.EnsureBucket(ctx); err != nil {
			return err
		}

		layout := workflow.NewLayout(cfg.Workspace)
		jobs, err := workflow.ResolveJobs(layout, args)
		if err != nil {
			return err
		}

		failures := 0
		for _, job := range jobs {
			keys, err := uploader.UploadFolder(ctx, job)
			if err != nil {
				failures++
				fmt.Printf("%s: %v\n", job.Folder, err)
				continue
			}
			for _, key := range keys {
				fmt.Printf("%s: %s\n", job.Folder, uploader.ObjectURL(key))
			}
		}

		if failures > 0 {
			return fmt.Errorf("%d folder(s) failed to archive", failures)
		}
		return nil
	},
}
