package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobPaths(t *testing.T) {
	layout := NewLayout("/work")
	job := NewJob(layout, "42")

	assert.Equal(t, filepath.Join("/work", "input", "audio-file", "42", "raw.mp3"), job.RawAudio)
	assert.Equal(t, filepath.Join("/work", "output", "42", "processed.mp3"), job.ProcessedAudio)
	assert.Equal(t, filepath.Join("/work", "output", "42", "transcript.txt"), job.Transcript)
	assert.Equal(t, filepath.Join("/work", "output", "42", "blog_post.md"), job.BlogPost)
}

func TestResolveJobsExplicit(t *testing.T) {
	layout := NewLayout(t.TempDir())

	// duplicates collapse, numeric names sort numerically, names without
	// recordings are kept so the run can report them as failed
	jobs, err := ResolveJobs(layout, []string{"10", "2", "10", "intro"})
	require.NoError(t, err)

	var names []string
	for _, j := range jobs {
		names = append(names, j.Folder)
	}
	assert.Equal(t, []string{"2", "10", "intro"}, names)
}

func TestResolveJobsAll(t *testing.T) {
	layout := NewLayout(t.TempDir())

	for _, folder := range []string{"10", "1", "2"} {
		writeFile(t, layout.RawAudio(folder), "audio")
	}
	// folder without a recording
	require.NoError(t, os.MkdirAll(layout.InputDir("drafts"), 0o755))
	// recording present but zero bytes
	writeFile(t, layout.RawAudio("stub"), "")

	jobs, err := ResolveJobs(layout, []string{"ALL"})
	require.NoError(t, err)

	var names []string
	for _, j := range jobs {
		names = append(names, j.Folder)
	}
	assert.Equal(t, []string{"1", "2", "10"}, names)
}

func TestResolveJobsEmptySelector(t *testing.T) {
	_, err := ResolveJobs(NewLayout(t.TempDir()), nil)
	assert.Error(t, err)
}

func TestDiscoverFoldersMissingRoot(t *testing.T) {
	names, err := DiscoverFolders(NewLayout(filepath.Join(t.TempDir(), "nope")))
	require.NoError(t, err)
	assert.Empty(t, names)
}
