package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"voice-blog/internal/app"
	"voice-blog/internal/app/export"
	"voice-blog/internal/app/model"
	"voice-blog/internal/config"
)

var folder string
var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&folder, "folder", "n", "", "only export history rows for this folder")
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run history to excel",
	Long: `Export the run history to excel

- One row per step execution: folder, step, status, error kind, timing
- Use --folder to narrow the export to a single folder`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		dao, cleanup, err := app.OpenHistory(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		var runs []model.StepRun
		if folder != "" {
			runs, err = dao.GetByFolder(folder)
		} else {
			runs, err = dao.GetAll()
		}
		if err != nil {
			return err
		}

		if err := export.ToExcel(runs, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
