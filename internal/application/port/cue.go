package port

import "context"

// CueMessageType is the only message type understood by a cue surface.
const CueMessageType = "play_sound"

// Cue names an audio cue.
type Cue string

const (
	CueOn  Cue = "on"
	CueOff Cue = "off"
)

// CueMessage is dispatched to the playback surface.
type CueMessage struct {
	Type  string `json:"type"`
	Sound Cue    `json:"sound"`
}

// CueSurface is the off-screen playback surface. It must exist before Send.
type CueSurface interface {
	HasSurface(ctx context.Context) (bool, error)
	CreateSurface(ctx context.Context) error
	Send(ctx context.Context, msg CueMessage) error
}
