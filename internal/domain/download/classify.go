// Package download classifies files in a download directory.
package download

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/stayup/internal/domain/entity"
)

// DefaultPartialSuffixes are the temporary extensions browsers and download
// tools give files that are still being written.
var DefaultPartialSuffixes = []string{".part", ".crdownload", ".download", ".partial"}

// DefaultStaleAfter is how long a partial file may go unmodified before it is
// considered interrupted.
const DefaultStaleAfter = 10 * time.Minute

// Classifier maps a file to a download state.
type Classifier struct {
	suffixes   []string
	staleAfter time.Duration
}

// NewClassifier creates a classifier. Empty suffixes fall back to the defaults;
// a non-positive staleAfter disables interrupted detection.
func NewClassifier(suffixes []string, staleAfter time.Duration) Classifier {
	if len(suffixes) == 0 {
		suffixes = DefaultPartialSuffixes
	}
	normalized := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		normalized = append(normalized, s)
	}
	return Classifier{suffixes: normalized, staleAfter: staleAfter}
}

// StaleAfter returns the interrupted threshold; zero or less means disabled.
func (c Classifier) StaleAfter() time.Duration {
	return c.staleAfter
}

// IsPartial reports whether name carries a partial-download suffix.
func (c Classifier) IsPartial(name string) bool {
	lower := strings.ToLower(filepath.Base(name))
	for _, s := range c.suffixes {
		if strings.HasSuffix(lower, s) && len(lower) > len(s) {
			return true
		}
	}
	return false
}

// State classifies a file given its last modification time.
func (c Classifier) State(name string, modTime, now time.Time) entity.DownloadState {
	if !c.IsPartial(name) {
		return entity.DownloadComplete
	}
	if c.staleAfter > 0 && now.Sub(modTime) > c.staleAfter {
		return entity.DownloadInterrupted
	}
	return entity.DownloadInProgress
}
