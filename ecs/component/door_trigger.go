package component

// DoorTrigger is a named point in a room whose proximity to the player arms
// the door's reflection sequence. One per room.
type DoorTrigger struct {
	// TriggerID is the manifest's trigger name, carried for log lines.
	TriggerID string
	DoorID    string
	// Radius is the capture distance in world units.
	Radius float64
	// Armed is recomputed every tick by the proximity system.
	Armed bool
	// Consumed is set once the door's sequence has completed so the same
	// door cannot fire itself again.
	Consumed bool
}

var DoorTriggerKind = NewKind[DoorTrigger]()
