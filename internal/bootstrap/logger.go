package bootstrap

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/stayup/internal/infrastructure/config"
	"github.com/bnema/stayup/internal/logging"
)

// NewLogger builds the process logger from config. The configured level is
// applied globally so ApplyLogLevel can change it on a config reload; the
// logger itself lets everything through.
func NewLogger(cfg *config.Config, fileLog bool) (zerolog.Logger, func(), error) {
	ApplyLogLevel(cfg)

	return logging.NewWithFile(
		logging.Config{
			Level:      zerolog.TraceLevel,
			Format:     cfg.Logging.Format,
			TimeFormat: time.RFC3339,
		},
		logging.FileConfig{
			Enabled:       fileLog && cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAge,
			Compress:      cfg.Logging.Compress,
			WriteToStderr: true,
		},
	)
}

// ApplyLogLevel sets the global zerolog level from cfg. STAYUP_LOG_LEVEL
// wins over the file.
func ApplyLogLevel(cfg *config.Config) {
	level := cfg.Logging.Level
	if env := os.Getenv("STAYUP_LOG_LEVEL"); env != "" {
		level = env
	}
	zerolog.SetGlobalLevel(logging.ParseLevel(level))
}
