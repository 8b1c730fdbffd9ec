package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/stayup/internal/domain/download"
)

// Default configuration constants
const (
	defaultDetectionInterval = 60 * time.Second
	defaultCueThrottle       = 100 * time.Millisecond
	defaultSoundPlayer       = "paplay"
	defaultOnSound           = "/usr/share/sounds/freedesktop/stereo/device-added.oga"
	defaultOffSound          = "/usr/share/sounds/freedesktop/stereo/device-removed.oga"
	defaultKeepAwakeReason   = "Keeping the session awake"
	defaultLogMaxSizeMB      = 10
	defaultLogMaxBackups     = 3
	defaultMaxLogAgeDays     = 7 // days
	defaultJournalKeep       = 500
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		Idle: IdleConfig{
			DetectionInterval: Duration(defaultDetectionInterval),
		},
		KeepAwake: KeepAwakeConfig{
			Backend: KeepAwakeAuto,
			Reason:  defaultKeepAwakeReason,
		},
		Sound: SoundConfig{
			Player:   defaultSoundPlayer,
			OnSound:  defaultOnSound,
			OffSound: defaultOffSound,
			Throttle: Duration(defaultCueThrottle),
		},
		Downloads: DownloadsConfig{
			Dirs:            []string{defaultDownloadDir()},
			PartialSuffixes: append([]string(nil), download.DefaultPartialSuffixes...),
			StaleAfter:      Duration(download.DefaultStaleAfter),
		},
		Journal: JournalConfig{
			Keep: defaultJournalKeep,
		},
	}
}

// defaultDownloadDir honours XDG_DOWNLOAD_DIR when the session exports it.
func defaultDownloadDir() string {
	if dir := os.Getenv("XDG_DOWNLOAD_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "Downloads"
	}
	return filepath.Join(home, "Downloads")
}

// ResolvedDefaultConfig returns DefaultConfig with its XDG paths filled in.
func ResolvedDefaultConfig() *Config {
	cfg := DefaultConfig()
	_ = resolvePaths(cfg)
	return cfg
}
