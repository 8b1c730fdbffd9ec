package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// configSection is one top-level table of the written file.
type configSection struct {
	name    string
	comment string
	value   func(*Config) any
}

// writtenSections fixes the order and the comments of the generated file.
var writtenSections = []configSection{
	{"keep_awake", "backend: auto, portal or logind", func(c *Config) any { return c.KeepAwake }},
	{"idle", "how long without input before the session counts as idle", func(c *Config) any { return c.Idle }},
	{"sound", "cue player command and sound files", func(c *Config) any { return c.Sound }},
	{"indicator", "status file for waybar or other bars", func(c *Config) any { return c.Indicator }},
	{"downloads", "directories watched when the downloads permission is granted", func(c *Config) any { return c.Downloads }},
	{"journal", "activation history kept in the state database", func(c *Config) any { return c.Journal }},
	{"database", "", func(c *Config) any { return c.Database }},
	{"logging", "level: trace, debug, info, warn, error", func(c *Config) any { return c.Logging }},
}

// WriteConfigFile writes cfg as commented TOML, one table per section, and
// replaces path atomically.
func WriteConfigFile(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	content, err := encodeConfig(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

func encodeConfig(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# stayup configuration\n")

	for _, sec := range writtenSections {
		buf.WriteString("\n")
		if sec.comment != "" {
			fmt.Fprintf(&buf, "# %s\n", sec.comment)
		}
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(map[string]any{sec.name: sec.value(cfg)}); err != nil {
			return nil, fmt.Errorf("encode [%s]: %w", sec.name, err)
		}
	}
	return buf.Bytes(), nil
}
