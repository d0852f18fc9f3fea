package component

// RoomScoped marks entities that are discarded wholesale when a new room
// loads. The player, triggers, and per-room decorations carry it; the
// singletons (input, control lock) and the transition runtime do not.
type RoomScoped struct{}

// RoomChangeRequest is a one-shot request asking the outer game loop to load
// a different room. Systems only emit data; the Game owns the IO.
type RoomChangeRequest struct {
	TargetIndex int
}

// RoomLoaded signals that the outer loop finished loading the requested
// room, letting an in-flight transition move from fade-out to fade-in.
type RoomLoaded struct {
	Index int
}

var RoomScopedKind = NewKind[RoomScoped]()
var RoomChangeRequestKind = NewKind[RoomChangeRequest]()
var RoomLoadedKind = NewKind[RoomLoaded]()
