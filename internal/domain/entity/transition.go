package entity

import "time"

// Transition is one accepted activation change, kept in the journal.
type Transition struct {
	ID      int64
	From    Mode
	To      Mode
	Trigger Trigger
	Scope   KeepAwakeScope
	At      time.Time
}
