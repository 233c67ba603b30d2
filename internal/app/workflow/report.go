package workflow

import (
	"fmt"
	"io"
	"time"
)

// Render writes the human-readable run report: one block per folder in
// run order, one line per requested step, then the totals.
func Render(out io.Writer, result *Result) {
	for i, fr := range result.Folders {
		if i > 0 {
			fmt.Fprintln(out)
		}

		marker := "ok"
		if fr.Failed() {
			marker = "FAILED"
		}
		fmt.Fprintf(out, "%s  [%s]\n", fr.Folder, marker)

		for _, o := range fr.Outcomes {
			fmt.Fprintf(out, "  %d %-10s %-9s %s\n", o.Step, o.Name, o.Status, describeOutcome(o))
		}
	}

	succeeded, skipped, failed, notRun := result.Counts()
	fmt.Fprintf(out, "\nrun %s: %d succeeded, %d skipped, %d failed, %d not run\n",
		result.RunID, succeeded, skipped, failed, notRun)
}

func describeOutcome(o StepOutcome) string {
	switch o.Status {
	case StatusSucceeded:
		return fmt.Sprintf("%s (%s)", o.OutputPath, o.Duration.Round(time.Millisecond))
	case StatusSkipped, StatusNotRun:
		return o.Reason
	case StatusFailed:
		if kind := o.ErrorKind(); kind != "" {
			return fmt.Sprintf("%s: %v", kind, o.Err)
		}
		return fmt.Sprintf("%v", o.Err)
	}
	return ""
}
