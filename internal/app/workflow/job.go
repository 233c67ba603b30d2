package workflow

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"voice-blog/internal/app/util/files"
)

// AllFolders is the selector that expands to every folder with a raw
// recording present.
const AllFolders = "all"

// Job is one folder's unit of work. Paths are resolved once at job
// creation; all freshness decisions later re-read the filesystem.
type Job struct {
	Folder         string
	RawAudio       string
	ProcessedAudio string
	Transcript     string
	BlogPost       string
}

func NewJob(layout Layout, folder string) Job {
	return Job{
		Folder:         folder,
		RawAudio:       layout.RawAudio(folder),
		ProcessedAudio: layout.ProcessedAudio(folder),
		Transcript:     layout.Transcript(folder),
		BlogPost:       layout.BlogPost(folder),
	}
}

// ResolveJobs expands the folder selector into jobs in deterministic
// ascending order. The "all" sentinel (anywhere in the list) selects every
// folder whose raw recording exists; explicit names are kept even when the
// recording is missing, so the run can report them as failed rather than
// silently dropping them.
func ResolveJobs(layout Layout, selector []string) ([]Job, error) {
	if len(selector) == 0 {
		return nil, fmt.Errorf("no folders requested")
	}

	var names []string
	if containsAll(selector) {
		discovered, err := DiscoverFolders(layout)
		if err != nil {
			return nil, err
		}
		names = discovered
	} else {
		names = lo.Uniq(selector)
		files.SortFolders(names)
	}

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, NewJob(layout, name))
	}
	return jobs, nil
}

// DiscoverFolders lists workspace folders that contain a non-empty raw
// recording, in the same ascending order ResolveJobs uses.
func DiscoverFolders(layout Layout) ([]string, error) {
	subdirs, err := files.ListSubdirs(layout.InputRoot())
	if err != nil {
		return nil, err
	}

	var names []string
	for _, name := range subdirs {
		if files.ExistsNonEmpty(layout.RawAudio(name)) {
			names = append(names, name)
		}
	}
	return names, nil
}

func containsAll(selector []string) bool {
	return lo.SomeBy(selector, func(s string) bool {
		return strings.EqualFold(s, AllFolders)
	})
}
