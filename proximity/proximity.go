// Package proximity is the per-frame distance check that arms door triggers.
package proximity

import "github.com/jakecoffman/cp"

// Target is a trigger's resolved world position. A nil Target stands for a
// trigger that is absent (room still loading, or already torn down).
type Target struct {
	Pos    cp.Vector
	Radius float64
}

// InRange reports whether the player is within the target's capture radius.
// Pure function: no side effects, no memory of prior frames. An absent
// target is never in range.
func InRange(player cp.Vector, t *Target) bool {
	if t == nil || t.Radius <= 0 {
		return false
	}
	return player.Distance(t.Pos) < t.Radius
}
