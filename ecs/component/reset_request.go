package component

// ResetRequest asks the reset system to rebuild the world for a new session.
type ResetRequest struct{}

var ResetRequestComponent = NewComponent[ResetRequest]()
