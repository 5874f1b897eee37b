package component

// Hazard marks an entity whose Body ends the session on contact.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()
