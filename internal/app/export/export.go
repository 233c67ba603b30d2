package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"voice-blog/internal/app/model"
)

// ToExcel writes run history rows to an xlsx workbook, newest rows in
// whatever order the caller queried them.
func ToExcel(runs []model.StepRun, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Step Runs")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Run ID"
	headerRow.AddCell().Value = "Folder"
	headerRow.AddCell().Value = "Step"
	headerRow.AddCell().Value = "Step Name"
	headerRow.AddCell().Value = "Status"
	headerRow.AddCell().Value = "Output Path"
	headerRow.AddCell().Value = "Duration (ms)"
	headerRow.AddCell().Value = "Error Kind"
	headerRow.AddCell().Value = "Error Message"
	headerRow.AddCell().Value = "Started At"

	for _, r := range runs {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.RunID
		row.AddCell().Value = r.Folder
		row.AddCell().Value = fmt.Sprint(r.Step)
		row.AddCell().Value = r.StepName
		row.AddCell().Value = r.Status
		row.AddCell().Value = r.OutputPath
		row.AddCell().Value = fmt.Sprint(r.DurationMS)
		row.AddCell().Value = r.ErrorKind
		row.AddCell().Value = r.ErrorMessage
		row.AddCell().Value = r.StartedAt.Format(time.RFC3339)
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
