package system

import (
	"log"

	"github.com/mirrorhall/mirrorhall/ecs"
	"github.com/mirrorhall/mirrorhall/ecs/component"
	"github.com/mirrorhall/mirrorhall/proximity"
)

// ProximitySystem recomputes every trigger's Armed flag from the player's
// position each tick. A consumed door never re-arms; a missing player (room
// mid-load) disarms everything.
type ProximitySystem struct{}

func NewProximitySystem() *ProximitySystem { return &ProximitySystem{} }

func (s *ProximitySystem) Update(w *ecs.World) {
	var playerPos *component.Transform
	if ent, ok := ecs.First(w, component.PlayerTagKind); ok {
		playerPos, _ = ecs.Get(w, ent, component.TransformKind)
	}

	ecs.ForEach2(w, component.DoorTriggerKind, component.TransformKind,
		func(_ ecs.Entity, trig *component.DoorTrigger, tf *component.Transform) {
			if playerPos == nil || trig.Consumed {
				trig.Armed = false
				return
			}
			armed := proximity.InRange(playerPos.Pos, &proximity.Target{
				Pos:    tf.Pos,
				Radius: trig.Radius,
			})
			if armed && !trig.Armed && trig.TriggerID != "" {
				log.Printf("trigger %s armed for %s", trig.TriggerID, trig.DoorID)
			}
			trig.Armed = armed
		})
}
