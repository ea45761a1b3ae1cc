package core

// Reference viewport, in world pixels.
const (
	ViewportW = 240
	ViewportH = 160
)

// DefaultTickRate is the simulation rate used when none is given.
const DefaultTickRate = 60
