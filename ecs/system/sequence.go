package system

import (
	"github.com/mirrorhall/mirrorhall/ecs"
	"github.com/mirrorhall/mirrorhall/ecs/component"
	"github.com/mirrorhall/mirrorhall/sequence"
)

// SequenceSystem bridges the world and the door sequence controller: it
// ticks the controller, starts the current room's door when the player
// confirms inside an armed trigger, and publishes the control lock.
type SequenceSystem struct {
	ctrl *sequence.Controller
	door sequence.Door
}

func NewSequenceSystem(ctrl *sequence.Controller) *SequenceSystem {
	return &SequenceSystem{ctrl: ctrl}
}

// SetDoor binds the freshly loaded room's door content. Called by the game
// on every room load, replacing the previous room's door wholesale.
func (s *SequenceSystem) SetDoor(door sequence.Door) {
	s.door = door
}

func (s *SequenceSystem) Update(w *ecs.World) {
	s.ctrl.Tick()

	lockEnt, ok := ecs.First(w, component.ControlLockKind)
	if !ok {
		lockEnt = w.CreateEntity()
		_ = ecs.Add(w, lockEnt, component.ControlLockKind, &component.ControlLock{})
	}
	lock, _ := ecs.Get(w, lockEnt, component.ControlLockKind)

	if !s.ctrl.Busy() {
		// A proximity re-trigger or repeated confirm while Running never
		// reaches here; Activate would reject it anyway.
		if in := inputState(w); in != nil && in.Confirm {
			ecs.ForEach(w, component.DoorTriggerKind, func(_ ecs.Entity, trig *component.DoorTrigger) {
				if !trig.Armed || trig.Consumed || trig.DoorID != s.door.ID {
					return
				}
				if s.ctrl.Activate(s.door) {
					trig.Consumed = true
				}
			})
		}
	}

	// Published after the confirm handling so movement, which runs later in
	// the same tick, is suppressed on the very tick Running is entered.
	if lock != nil {
		lock.Locked = s.ctrl.Busy()
	}
}

func inputState(w *ecs.World) *component.InputState {
	ent, ok := ecs.First(w, component.InputStateKind)
	if !ok {
		return nil
	}
	in, _ := ecs.Get(w, ent, component.InputStateKind)
	return in
}
