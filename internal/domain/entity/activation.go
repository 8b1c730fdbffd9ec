package entity

import "time"

// Store keys. Status and DownloadActivated live in the session store and
// vanish with the daemon; Preferences lives in the durable store.
const (
	StatusKey            = "status"
	DownloadActivatedKey = "downloadInProgress"
	PreferencesKey       = "preferences"
)

// DefaultIdleDetection is the idle detection interval configured at startup.
const DefaultIdleDetection = 60 * time.Second

// Intent is an explicit user command delivered over the command channel.
type Intent string

const (
	IntentActivate   Intent = "activate"
	IntentDeactivate Intent = "deactivate"
)

// ToggleCommand is the keyboard shortcut command identifier.
const ToggleCommand = "toggleOnOff"

// Trigger names the event that caused a transition. Used for logs and the journal.
type Trigger string

const (
	TriggerUser       Trigger = "user"
	TriggerShortcut   Trigger = "shortcut"
	TriggerIdleLock   Trigger = "idle_lock"
	TriggerDownloads  Trigger = "downloads"
	TriggerPreference Trigger = "preference"
)

// Mode is the externally visible activation state.
type Mode string

const (
	ModeOff Mode = "off"
	ModeOn  Mode = "on"
)

// ModeFor maps the activation flag to a Mode.
func ModeFor(active bool) Mode {
	if active {
		return ModeOn
	}
	return ModeOff
}

// KeepAwakeScope selects what the held resource keeps awake.
type KeepAwakeScope string

const (
	// ScopeDisplay keeps the screen on (and therefore the system too).
	ScopeDisplay KeepAwakeScope = "display"
	// ScopeSystem only prevents system sleep; the screen may still blank.
	ScopeSystem KeepAwakeScope = "system"
)

// Valid reports whether s is a known scope.
func (s KeepAwakeScope) Valid() bool {
	return s == ScopeDisplay || s == ScopeSystem
}

// IdleState is reported by the idle monitor.
type IdleState string

const (
	IdleActive IdleState = "active"
	IdleIdle   IdleState = "idle"
	IdleLocked IdleState = "locked"
)

// ActivationStatus is a read-only snapshot of the persisted activation state.
type ActivationStatus struct {
	Active            bool
	DownloadActivated bool
	Scope             KeepAwakeScope
}

// Mode returns the top-level mode of the snapshot.
func (s ActivationStatus) Mode() Mode {
	return ModeFor(s.Active)
}
