package workflow

import "path/filepath"

// Artifact file names. These are the on-disk contract shared with whatever
// drops recordings into the workspace and whatever publishes the posts.
const (
	RawAudioName       = "raw.mp3"
	ProcessedAudioName = "processed.mp3"
	TranscriptName     = "transcript.txt"
	BlogPostName       = "blog_post.md"
)

// Layout resolves every pipeline path inside one workspace root.
// Recordings arrive under input/audio-file/<folder>/ and all derived
// artifacts live under output/<folder>/.
type Layout struct {
	Root string
}

func NewLayout(root string) Layout {
	return Layout{Root: root}
}

func (l Layout) InputRoot() string {
	return filepath.Join(l.Root, "input", "audio-file")
}

func (l Layout) OutputRoot() string {
	return filepath.Join(l.Root, "output")
}

func (l Layout) InputDir(folder string) string {
	return filepath.Join(l.InputRoot(), folder)
}

func (l Layout) OutputDir(folder string) string {
	return filepath.Join(l.OutputRoot(), folder)
}

func (l Layout) RawAudio(folder string) string {
	return filepath.Join(l.InputDir(folder), RawAudioName)
}

func (l Layout) ProcessedAudio(folder string) string {
	return filepath.Join(l.OutputDir(folder), ProcessedAudioName)
}

func (l Layout) Transcript(folder string) string {
	return filepath.Join(l.OutputDir(folder), TranscriptName)
}

func (l Layout) BlogPost(folder string) string {
	return filepath.Join(l.OutputDir(folder), BlogPostName)
}

// LockFile lives outside output/ so that locking a folder never creates
// artifact directories for it.
func (l Layout) LockFile(folder string) string {
	return filepath.Join(l.Root, "data", "locks", folder+".lock")
}
