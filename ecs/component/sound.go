package component

// SoundCue names a fire-and-forget sound hook.
type SoundCue string

const (
	CueStart   SoundCue = "start"
	CueFall    SoundCue = "fall"
	CueHazard  SoundCue = "hazard"
	CueVictory SoundCue = "victory"
	CueMusic   SoundCue = "music"
)

type SoundAction int

const (
	SoundPlay SoundAction = iota
	SoundLoop
	SoundStop
)

// SoundRequest is a one-shot request consumed by the sound system. Each
// request lives on its own entity, which the sound system destroys.
type SoundRequest struct {
	Cue    SoundCue
	Action SoundAction
}

var SoundRequestComponent = NewComponent[SoundRequest]()
