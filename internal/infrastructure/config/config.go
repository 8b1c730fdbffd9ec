// Package config loads the daemon configuration from TOML with viper.
package config

import (
	"fmt"
	"time"
)

// Config is the daemon configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database"`
	Idle      IdleConfig      `mapstructure:"idle" toml:"idle"`
	KeepAwake KeepAwakeConfig `mapstructure:"keep_awake" toml:"keep_awake"`
	Sound     SoundConfig     `mapstructure:"sound" toml:"sound"`
	Indicator IndicatorConfig `mapstructure:"indicator" toml:"indicator"`
	Downloads DownloadsConfig `mapstructure:"downloads" toml:"downloads"`
	Journal   JournalConfig   `mapstructure:"journal" toml:"journal"`
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level"`
	Format        string `mapstructure:"format" toml:"format"` // console or json
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age"` // days
	Compress      bool   `mapstructure:"compress" toml:"compress"`
}

// DatabaseConfig locates the state database (permissions, journal).
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// IdleConfig tunes idle detection.
type IdleConfig struct {
	DetectionInterval Duration `mapstructure:"detection_interval" toml:"detection_interval"`
}

// KeepAwakeBackend selects how the keep-awake grant is taken.
type KeepAwakeBackend string

const (
	KeepAwakeAuto   KeepAwakeBackend = "auto"
	KeepAwakePortal KeepAwakeBackend = "portal"
	KeepAwakeLogind KeepAwakeBackend = "logind"
)

// KeepAwakeConfig configures the keep-awake backend.
type KeepAwakeConfig struct {
	Backend KeepAwakeBackend `mapstructure:"backend" toml:"backend"`
	Reason  string           `mapstructure:"reason" toml:"reason"`
}

// SoundConfig configures the audio cues.
type SoundConfig struct {
	Player   string   `mapstructure:"player" toml:"player"`
	OnSound  string   `mapstructure:"on_sound" toml:"on_sound"`
	OffSound string   `mapstructure:"off_sound" toml:"off_sound"`
	Throttle Duration `mapstructure:"throttle" toml:"throttle"`
}

// IndicatorConfig configures the status file read by status bars.
type IndicatorConfig struct {
	StatusFile string `mapstructure:"status_file" toml:"status_file"`
}

// DownloadsConfig configures download observation.
type DownloadsConfig struct {
	Dirs            []string `mapstructure:"dirs" toml:"dirs"`
	PartialSuffixes []string `mapstructure:"partial_suffixes" toml:"partial_suffixes"`
	StaleAfter      Duration `mapstructure:"stale_after" toml:"stale_after"`
}

// JournalConfig bounds the activation journal.
type JournalConfig struct {
	Keep int `mapstructure:"keep" toml:"keep"`
}

// Duration is a time.Duration written as "60s" in TOML.
type Duration time.Duration

// Std returns the standard library duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// String implements fmt.Stringer.
func (d Duration) String() string { return time.Duration(d).String() }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}
