package component

import (
	"fmt"
	"strings"
)

type PlatformType int

const (
	PlatformNormal PlatformType = iota
	PlatformMoving
	PlatformJump
)

func (t PlatformType) String() string {
	switch t {
	case PlatformNormal:
		return "normal"
	case PlatformMoving:
		return "moving"
	case PlatformJump:
		return "jump"
	default:
		return fmt.Sprintf("PlatformType(%d)", int(t))
	}
}

func ParsePlatformType(s string) (PlatformType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return PlatformNormal, nil
	case "moving":
		return PlatformMoving, nil
	case "jump":
		return PlatformJump, nil
	}
	return 0, fmt.Errorf("unknown platform type %q", s)
}

type Platform struct {
	Type PlatformType
	// Drift is the signed horizontal step per tick; zero unless Type is moving.
	Drift float64
	PrevY float64
}

var PlatformComponent = NewComponent[Platform]()
