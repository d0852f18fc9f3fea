package component

// RoomTransitionPhase sequences the cross-fade around a room change.
type RoomTransitionPhase int

const (
	RoomTransitionFadeOut RoomTransitionPhase = iota
	RoomTransitionFadeIn
)

// RoomTransition holds transient state for an in-progress room change. It
// lives on a singleton entity that is destroyed when the fade-in ends; its
// existence means the overlay is owned by the room transition, never by a
// door cinematic (the sequence controller must be Idle before one spawns).
type RoomTransition struct {
	Phase   RoomTransitionPhase
	Alpha   float64
	Timer   int
	Req     RoomChangeRequest
	ReqSent bool
}

var RoomTransitionKind = NewKind[RoomTransition]()
