package system

import (
	"github.com/jakecoffman/cp"

	"github.com/mirrorhall/mirrorhall/ecs"
	"github.com/mirrorhall/mirrorhall/ecs/component"
	"github.com/mirrorhall/mirrorhall/rooms"
)

// playerHalfWidth keeps the player's probe points inside walkable tiles.
const playerHalfWidth = 10.0

// MovementSystem applies WASD displacement to the player, clamped against
// the room's wall tiles axis by axis. Suppressed while the control lock is
// held (cinematic, prompt, or room transition).
type MovementSystem struct {
	level *rooms.Level
}

func NewMovementSystem() *MovementSystem { return &MovementSystem{} }

// SetLevel swaps in the freshly loaded room's layout.
func (s *MovementSystem) SetLevel(level *rooms.Level) {
	s.level = level
}

func (s *MovementSystem) Update(w *ecs.World) {
	if lockEnt, ok := ecs.First(w, component.ControlLockKind); ok {
		if lock, ok := ecs.Get(w, lockEnt, component.ControlLockKind); ok && lock.Locked {
			return
		}
	}

	in := inputState(w)
	if in == nil {
		return
	}

	dir := cp.Vector{}
	if in.Up {
		dir.Y--
	}
	if in.Down {
		dir.Y++
	}
	if in.Left {
		dir.X--
	}
	if in.Right {
		dir.X++
	}
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	dir = dir.Normalize()

	ecs.ForEach3(w, component.PlayerTagKind, component.TransformKind, component.PlayerControllerKind,
		func(_ ecs.Entity, _ *component.PlayerTag, tf *component.Transform, pc *component.PlayerController) {
			step := dir.Mult(pc.MoveSpeed)
			pc.Facing = dir

			// axis-separated so sliding along a wall works
			next := tf.Pos.Add(cp.Vector{X: step.X})
			if !s.blocked(next) {
				tf.Pos = next
			}
			next = tf.Pos.Add(cp.Vector{Y: step.Y})
			if !s.blocked(next) {
				tf.Pos = next
			}
		})
}

func (s *MovementSystem) blocked(pos cp.Vector) bool {
	if s.level == nil {
		return true
	}
	for _, probe := range []cp.Vector{
		{X: pos.X - playerHalfWidth, Y: pos.Y - playerHalfWidth},
		{X: pos.X + playerHalfWidth, Y: pos.Y - playerHalfWidth},
		{X: pos.X - playerHalfWidth, Y: pos.Y + playerHalfWidth},
		{X: pos.X + playerHalfWidth, Y: pos.Y + playerHalfWidth},
	} {
		if s.level.SolidAtWorld(probe) {
			return true
		}
	}
	return false
}
