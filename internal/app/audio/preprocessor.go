package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	apperrors "voice-blog/internal/app/errors"
	"voice-blog/internal/app/util/files"
)

// Preprocessor turns a raw recording into speech-to-text friendly audio.
type Preprocessor interface {
	Process(ctx context.Context, inputPath, outputPath string) error
}

// Filter constants for the cleanup chain: silence below -40dB lasting 500ms
// or more is dropped with 300ms padding kept, loudness lands at -20,
// compression is 4:1 above -20dB with 5ms attack and 50ms release, and
// speech is resampled to 16kHz.
const (
	silenceFilter   = "silenceremove=start_periods=1:start_threshold=-40dB:start_duration=0.5:start_silence=0.3:stop_periods=-1:stop_threshold=-40dB:stop_duration=0.5:stop_silence=0.3"
	noiseFilter     = "afftdn=nr=20"
	normalizeFilter = "loudnorm=I=-20:TP=-1.5:LRA=11"
	compressFilter  = "acompressor=threshold=-20dB:ratio=4:attack=5:release=50"
	resampleFilter  = "aresample=16000"
)

// FFmpegPreprocessor runs the whole cleanup chain as a single ffmpeg
// invocation. Output goes to a hidden temp file first and is renamed into
// place only on success, so a killed or failed run leaves no partial
// artifact behind.
type FFmpegPreprocessor struct {
	ffmpegPath string
	stages     []string
	bitrate    string
	logger     *zap.SugaredLogger
}

func NewFFmpegPreprocessor(stages []string, bitrate string, logger *zap.SugaredLogger) *FFmpegPreprocessor {
	return &FFmpegPreprocessor{
		ffmpegPath: "ffmpeg",
		stages:     stages,
		bitrate:    bitrate,
		logger:     logger,
	}
}

func (p *FFmpegPreprocessor) Process(ctx context.Context, inputPath, outputPath string) error {
	if err := files.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return err
	}

	tmpPath := filepath.Join(filepath.Dir(outputPath), ".tmp-"+filepath.Base(outputPath))
	defer os.Remove(tmpPath)

	args := p.buildArgs(inputPath, tmpPath)
	p.logger.Debugw("running ffmpeg", "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, p.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg interrupted: %w", ctx.Err())
		}
		return apperrors.ToolError("ffmpeg", fmt.Errorf("%v, stderr: %s", err, lastLines(stderr.String(), 5)))
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		return fmt.Errorf("failed to move processed audio into place: %w", err)
	}

	if duration, err := Duration(ctx, outputPath); err == nil {
		p.logger.Infow("audio preprocessing completed", "output", outputPath, "audio_seconds", duration)
	} else {
		p.logger.Infow("audio preprocessing completed", "output", outputPath)
	}
	return nil
}

func (p *FFmpegPreprocessor) buildArgs(inputPath, outputPath string) []string {
	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", inputPath, "-vn"}
	if lo.Contains(p.stages, "mono") {
		args = append(args, "-ac", "1")
	}
	if chain := p.filterChain(); chain != "" {
		args = append(args, "-af", chain)
	}
	args = append(args, "-codec:a", "libmp3lame", "-b:a", p.bitrate, outputPath)
	return args
}

// filterChain assembles the -af graph in the configured stage order.
func (p *FFmpegPreprocessor) filterChain() string {
	var filters []string
	for _, stage := range p.stages {
		switch stage {
		case "silence":
			filters = append(filters, silenceFilter)
		case "noise":
			filters = append(filters, noiseFilter)
		case "normalize":
			filters = append(filters, normalizeFilter)
		case "compress":
			filters = append(filters, compressFilter)
		case "resample":
			filters = append(filters, resampleFilter)
		}
	}
	return strings.Join(filters, ",")
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
