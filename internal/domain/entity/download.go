package entity

// DownloadState mirrors the lifecycle of a file being downloaded.
type DownloadState string

const (
	DownloadInProgress  DownloadState = "in_progress"
	DownloadComplete    DownloadState = "complete"
	DownloadInterrupted DownloadState = "interrupted"
)

// DownloadItem is one entry returned by a download search.
type DownloadItem struct {
	Path  string
	State DownloadState
}

// AnyInProgress reports whether at least one item is still downloading.
func AnyInProgress(items []DownloadItem) bool {
	for _, item := range items {
		if item.State == DownloadInProgress {
			return true
		}
	}
	return false
}
