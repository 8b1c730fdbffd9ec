package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableHeaders(content string) []string {
	var headers []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			headers = append(headers, strings.Trim(line, "[]"))
		}
	}
	return headers
}

func TestWriteConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Idle.DetectionInterval = Duration(90 * time.Second)
	cfg.Downloads.Dirs = []string{"/tmp/dl"}

	require.NoError(t, WriteConfigFile(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want := make([]string, 0, len(writtenSections))
	for _, sec := range writtenSections {
		want = append(want, sec.name)
	}
	assert.Equal(t, want, tableHeaders(string(content)))
	assert.Contains(t, string(content), "# backend: auto, portal or logind")

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, 90*time.Second, decoded.Idle.DetectionInterval.Std())
	assert.Equal(t, []string{"/tmp/dl"}, decoded.Downloads.Dirs)
	assert.Equal(t, cfg.KeepAwake, decoded.KeepAwake)
}

func TestWriteConfigFile_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("garbage = ["), 0o644))

	require.NoError(t, WriteConfigFile(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "garbage")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteConfigFile_Nil(t *testing.T) {
	assert.Error(t, WriteConfigFile(nil, filepath.Join(t.TempDir(), "c.toml")))
}
