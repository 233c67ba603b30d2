package audio

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// Duration returns a file's audio length in whole seconds via ffprobe.
func Duration(ctx context.Context, filePath string) (int, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	return parseDuration(string(output))
}

func parseDuration(output string) (int, error) {
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(output), 64)
	if err != nil {
		return 0, err
	}
	return int(durationFloat + 0.5), nil
}
