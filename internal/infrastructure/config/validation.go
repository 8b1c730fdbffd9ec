package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const minDetectionInterval = time.Second

func normalizeConfig(config *Config) {
	switch strings.ToLower(string(config.KeepAwake.Backend)) {
	case "", string(KeepAwakeAuto):
		config.KeepAwake.Backend = KeepAwakeAuto
	case string(KeepAwakePortal):
		config.KeepAwake.Backend = KeepAwakePortal
	case string(KeepAwakeLogind):
		config.KeepAwake.Backend = KeepAwakeLogind
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Sound.Player = strings.TrimSpace(config.Sound.Player)

	dirs := config.Downloads.Dirs[:0]
	for _, dir := range config.Downloads.Dirs {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	config.Downloads.Dirs = dirs
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil || config.Logging.Level == "" {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be a zerolog level (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}

	if config.Idle.DetectionInterval.Std() < minDetectionInterval {
		validationErrors = append(validationErrors, "idle.detection_interval must be at least 1s")
	}

	switch config.KeepAwake.Backend {
	case KeepAwakeAuto, KeepAwakePortal, KeepAwakeLogind:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("keep_awake.backend must be one of: auto, portal, logind (got: %s)", config.KeepAwake.Backend))
	}

	if config.Sound.Throttle.Std() < 0 {
		validationErrors = append(validationErrors, "sound.throttle must be non-negative")
	}
	if config.Downloads.StaleAfter.Std() < 0 {
		validationErrors = append(validationErrors, "downloads.stale_after must be non-negative")
	}
	if config.Journal.Keep < 0 {
		validationErrors = append(validationErrors, "journal.keep must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%s", strings.Join(validationErrors, "; "))
	}
	return nil
}
