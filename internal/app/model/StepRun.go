package model

import "time"

// StepRun is one step execution record in the run history. Every requested
// step of every folder produces exactly one row per run, whatever its
// outcome, so the history reconstructs complete runs.
type StepRun struct {
	ID           int
	RunID        string
	Folder       string
	Step         int
	StepName     string
	Status       string
	OutputPath   string
	DurationMS   int64
	ErrorKind    string
	ErrorMessage string
	StartedAt    time.Time
}
