package entity

// PreferenceName identifies one toggle in the preferences record.
type PreferenceName string

const (
	PrefSounds        PreferenceName = "sounds"
	PrefDisplaySleep  PreferenceName = "displaySleep"
	PrefAutoDownloads PreferenceName = "autoDownloads"
)

// PreferenceNames lists the toggles in display order.
func PreferenceNames() []PreferenceName {
	return []PreferenceName{PrefSounds, PrefDisplaySleep, PrefAutoDownloads}
}

// Toggle is a single boolean preference, optionally gated by permissions.
type Toggle struct {
	Status      bool     `json:"status" mapstructure:"status" toml:"status"`
	Permissions []string `json:"permissions" mapstructure:"permissions" toml:"permissions,omitempty"`
}

// RequiresPermission reports whether enabling the toggle needs a grant.
func (t Toggle) RequiresPermission() bool {
	return len(t.Permissions) > 0
}

// Preferences is the durable preference record.
type Preferences struct {
	Sounds        Toggle `json:"sounds" mapstructure:"sounds" toml:"sounds"`
	DisplaySleep  Toggle `json:"displaySleep" mapstructure:"displaySleep" toml:"displaySleep"`
	AutoDownloads Toggle `json:"autoDownloads" mapstructure:"autoDownloads" toml:"autoDownloads"`
}

// DefaultPreferences returns the fixed defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		Sounds:        Toggle{Status: true},
		DisplaySleep:  Toggle{Status: false},
		AutoDownloads: Toggle{Status: false, Permissions: []string{string(PermissionTypeDownloads)}},
	}
}

// Scope returns the keep-awake scope selected by the displaySleep toggle.
func (p Preferences) Scope() KeepAwakeScope {
	return ScopeForDisplaySleep(p.DisplaySleep.Status)
}

// ScopeForDisplaySleep maps the displaySleep status to a scope.
func ScopeForDisplaySleep(displaySleep bool) KeepAwakeScope {
	if displaySleep {
		return ScopeDisplay
	}
	return ScopeSystem
}

// Get returns the toggle for name.
func (p Preferences) Get(name PreferenceName) (Toggle, bool) {
	switch name {
	case PrefSounds:
		return p.Sounds, true
	case PrefDisplaySleep:
		return p.DisplaySleep, true
	case PrefAutoDownloads:
		return p.AutoDownloads, true
	default:
		return Toggle{}, false
	}
}

// WithStatus returns a copy of p with the named toggle's status replaced.
func (p Preferences) WithStatus(name PreferenceName, status bool) (Preferences, bool) {
	switch name {
	case PrefSounds:
		p.Sounds.Status = status
	case PrefDisplaySleep:
		p.DisplaySleep.Status = status
	case PrefAutoDownloads:
		p.AutoDownloads.Status = status
	default:
		return p, false
	}
	return p, true
}
