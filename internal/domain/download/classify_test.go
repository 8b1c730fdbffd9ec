package download

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/stayup/internal/domain/entity"
)

func TestClassifier_IsPartial(t *testing.T) {
	c := NewClassifier(nil, DefaultStaleAfter)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "firefox partial", input: "ubuntu.iso.part", expected: true},
		{name: "chromium partial", input: "/home/u/Downloads/video.mp4.crdownload", expected: true},
		{name: "upper case suffix", input: "ARCHIVE.ZIP.PART", expected: true},
		{name: "finished file", input: "ubuntu.iso", expected: false},
		{name: "bare suffix", input: ".part", expected: false},
		{name: "suffix in the middle", input: "my.part.txt", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.IsPartial(tt.input))
		})
	}
}

func TestClassifier_CustomSuffixesAreNormalized(t *testing.T) {
	c := NewClassifier([]string{"TMP", " .aria2 ", ""}, 0)

	assert.True(t, c.IsPartial("file.tmp"))
	assert.True(t, c.IsPartial("file.aria2"))
	assert.False(t, c.IsPartial("file.part"))
}

func TestClassifier_State(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewClassifier(nil, 10*time.Minute)

	assert.Equal(t, entity.DownloadComplete, c.State("a.iso", now, now))
	assert.Equal(t, entity.DownloadInProgress, c.State("a.iso.part", now.Add(-time.Minute), now))
	assert.Equal(t, entity.DownloadInterrupted, c.State("a.iso.part", now.Add(-time.Hour), now))

	noStale := NewClassifier(nil, 0)
	assert.Equal(t, entity.DownloadInProgress, noStale.State("a.iso.part", now.Add(-time.Hour), now))
}
