package workflow

import (
	"fmt"
	"os"

	"voice-blog/internal/app/util/files"
)

// Decision says whether a step must run and why, in words fit for the
// per-step report.
type Decision struct {
	Run    bool
	Reason string
}

// Policy decides whether an existing output is still good. Decide never
// touches the network or the history database, only the two files in
// front of it.
type Policy interface {
	Name() string
	Decide(inputPath, outputPath string, force bool) Decision
	// Record runs after a verified success so stateful policies can
	// remember what the output was built from.
	Record(inputPath, outputPath string) error
}

// NewPolicy maps a configured mode name to its implementation.
func NewPolicy(mode string) (Policy, error) {
	switch mode {
	case "", "existence":
		return ExistencePolicy{}, nil
	case "mtime":
		return MtimePolicy{}, nil
	case "hash":
		return HashPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown freshness mode: %s", mode)
	}
}

// ExistencePolicy is the default: any non-empty output is fresh. A
// replaced input with an older output is NOT detected; use mtime or hash
// when inputs get re-recorded in place.
type ExistencePolicy struct{}

func (ExistencePolicy) Name() string { return "existence" }

func (ExistencePolicy) Decide(inputPath, outputPath string, force bool) Decision {
	if force {
		return Decision{Run: true, Reason: "force flag set"}
	}
	if !files.ExistsNonEmpty(outputPath) {
		return Decision{Run: true, Reason: "output missing or empty"}
	}
	return Decision{Run: false, Reason: "output exists"}
}

func (ExistencePolicy) Record(inputPath, outputPath string) error { return nil }

// MtimePolicy additionally re-runs when the input file is newer than the
// output.
type MtimePolicy struct{}

func (MtimePolicy) Name() string { return "mtime" }

func (MtimePolicy) Decide(inputPath, outputPath string, force bool) Decision {
	if force {
		return Decision{Run: true, Reason: "force flag set"}
	}
	if !files.ExistsNonEmpty(outputPath) {
		return Decision{Run: true, Reason: "output missing or empty"}
	}
	inInfo, err := os.Stat(inputPath)
	if err != nil {
		return Decision{Run: false, Reason: "output exists"}
	}
	outInfo, err := os.Stat(outputPath)
	if err != nil {
		return Decision{Run: true, Reason: "output missing or empty"}
	}
	if inInfo.ModTime().After(outInfo.ModTime()) {
		return Decision{Run: true, Reason: "input newer than output"}
	}
	return Decision{Run: false, Reason: "output up to date"}
}

func (MtimePolicy) Record(inputPath, outputPath string) error { return nil }

// HashPolicy re-runs when the input's checksum differs from the one
// recorded in a sidecar file at the last success. Robust against restored
// backups and copied trees where mtimes lie.
type HashPolicy struct{}

func (HashPolicy) Name() string { return "hash" }

func sidecarPath(outputPath string) string {
	return outputPath + ".src.sha256"
}

func (HashPolicy) Decide(inputPath, outputPath string, force bool) Decision {
	if force {
		return Decision{Run: true, Reason: "force flag set"}
	}
	if !files.ExistsNonEmpty(outputPath) {
		return Decision{Run: true, Reason: "output missing or empty"}
	}
	recorded, err := os.ReadFile(sidecarPath(outputPath))
	if err != nil {
		return Decision{Run: true, Reason: "no recorded source checksum"}
	}
	current, err := files.FileHash(inputPath)
	if err != nil {
		return Decision{Run: true, Reason: "source unreadable for checksum"}
	}
	if current != string(recorded) {
		return Decision{Run: true, Reason: "source checksum changed"}
	}
	return Decision{Run: false, Reason: "source checksum unchanged"}
}

func (HashPolicy) Record(inputPath, outputPath string) error {
	hash, err := files.FileHash(inputPath)
	if err != nil {
		return fmt.Errorf("failed to hash %s: %w", inputPath, err)
	}
	return files.WriteAtomic(sidecarPath(outputPath), []byte(hash))
}
