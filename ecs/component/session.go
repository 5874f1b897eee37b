package component

type SessionState int

const (
	SessionNotStarted SessionState = iota
	SessionRunning
	SessionEnded
)

func (s SessionState) String() string {
	switch s {
	case SessionNotStarted:
		return "not_started"
	case SessionRunning:
		return "running"
	case SessionEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason is the terminal condition that moved a session to Ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndFallOut
	EndHazard
	EndLevelCap
)

func (r EndReason) String() string {
	switch r {
	case EndFallOut:
		return "fall_out"
	case EndHazard:
		return "hazard"
	case EndLevelCap:
		return "level_cap"
	default:
		return "none"
	}
}

// Session is the singleton lifecycle state of one game.
type Session struct {
	State      SessionState
	Reason     EndReason
	FinalLevel int
	// Ticks counts gameplay ticks run while the session was Running.
	Ticks int
}

var SessionComponent = NewComponent[Session]()
