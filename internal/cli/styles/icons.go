package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	// Activation
	IconCoffee   = "\uf0f4" // coffee (keeping awake)
	IconMoon     = "\uf186" // moon (sleep allowed)
	IconDisplay  = "\uf108" // desktop
	IconDownload = "\uf019" // download
	IconVolume   = "\uf028" // volume up
	IconKey      = "\uf084" // key (permissions)
	IconClock    = "\uf017" // clock
	IconPower    = "\uf011" // power
	IconArrow    = "\uf061" // arrow right
)
