package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager for the XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a manager for an explicit config file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// Most variables map automatically, e.g. STAYUP_IDLE_DETECTION_INTERVAL.
	v.SetEnvPrefix("STAYUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "STAYUP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind STAYUP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "STAYUP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind STAYUP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables, writing
// a default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.reload()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// reload rebuilds m.config from viper. Must be called with m.mu held.
func (m *Manager) reload() error {
	config := &Config{}
	err := m.viper.Unmarshal(config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}

	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// resolvePaths fills path settings left empty with their XDG locations.
func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	if config.Indicator.StatusFile == "" {
		statusFile, err := GetStatusFile()
		if err != nil {
			return fmt.Errorf("failed to get status file path: %w", err)
		}
		config.Indicator.StatusFile = statusFile
	}
	for i, dir := range config.Downloads.Dirs {
		config.Downloads.Dirs[i] = expandHome(dir)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the defaults to the config file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigFile(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", m.configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setIdleDefaults(defaults)
	m.setKeepAwakeDefaults(defaults)
	m.setSoundDefaults(defaults)
	m.setDownloadsDefaults(defaults)
	m.viper.SetDefault("journal.keep", defaults.Journal.Keep)
	// database.path and indicator.status_file resolve to XDG locations in Load
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("indicator.status_file", "")
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setIdleDefaults(defaults *Config) {
	m.viper.SetDefault("idle.detection_interval", defaults.Idle.DetectionInterval.String())
}

func (m *Manager) setKeepAwakeDefaults(defaults *Config) {
	m.viper.SetDefault("keep_awake.backend", string(defaults.KeepAwake.Backend))
	m.viper.SetDefault("keep_awake.reason", defaults.KeepAwake.Reason)
}

func (m *Manager) setSoundDefaults(defaults *Config) {
	m.viper.SetDefault("sound.player", defaults.Sound.Player)
	m.viper.SetDefault("sound.on_sound", defaults.Sound.OnSound)
	m.viper.SetDefault("sound.off_sound", defaults.Sound.OffSound)
	m.viper.SetDefault("sound.throttle", defaults.Sound.Throttle.String())
}

func (m *Manager) setDownloadsDefaults(defaults *Config) {
	m.viper.SetDefault("downloads.dirs", defaults.Downloads.Dirs)
	m.viper.SetDefault("downloads.partial_suffixes", defaults.Downloads.PartialSuffixes)
	m.viper.SetDefault("downloads.stale_after", defaults.Downloads.StaleAfter.String())
}
