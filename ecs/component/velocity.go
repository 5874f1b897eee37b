package component

import "github.com/jakecoffman/cp"

// Velocity is the per-tick displacement applied by the movement system.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
