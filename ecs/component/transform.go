package component

import "github.com/jakecoffman/cp"

// Transform is an entity's world position.
type Transform struct {
	Pos cp.Vector
}

var TransformKind = NewKind[Transform]()
