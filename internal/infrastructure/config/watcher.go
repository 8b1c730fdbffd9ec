package config

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/stayup/internal/logging"
)

// reloadDebounce coalesces the burst of events an editor save produces.
const reloadDebounce = 200 * time.Millisecond

// Watch reloads the config file when it changes and notifies the
// OnConfigChange callbacks. A file that fails to parse or validate keeps the
// previous values.
func (m *Manager) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}

	var pending *time.Timer
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")
		if pending != nil {
			pending.Stop()
		}
		pending = time.AfterFunc(reloadDebounce, func() { m.reloadAndNotify(ctx) })
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

func (m *Manager) reloadAndNotify(ctx context.Context) {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	if err := m.viper.ReadInConfig(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("failed to re-read config, keeping previous values")
		return
	}
	if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("invalid config, keeping previous values")
		return
	}
	snapshot := *m.config
	callbacks := append([]func(*Config){}, m.callbacks...)
	m.mu.Unlock()

	for _, fn := range callbacks {
		cfg := snapshot
		fn(&cfg)
	}
}

// OnConfigChange registers fn to run after every successful reload.
func (m *Manager) OnConfigChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}
