package component

import "github.com/jakecoffman/cp"

// PlayerTag marks the player entity.
type PlayerTag struct{}

// PlayerController holds movement tuning and the last non-zero move
// direction (used to face the door marker after a sequence).
type PlayerController struct {
	MoveSpeed float64
	Facing    cp.Vector
}

var PlayerTagKind = NewKind[PlayerTag]()
var PlayerControllerKind = NewKind[PlayerController]()
