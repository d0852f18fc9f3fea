package component

// InputState is the singleton per-tick input sample. The input system writes
// it; gameplay systems only read.
type InputState struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Confirm bool // pressed this tick, not held
}

var InputStateKind = NewKind[InputState]()
