package component

// ControlLock is a singleton that suppresses player movement while a
// cinematic, prompt, or room transition owns the screen.
type ControlLock struct {
	Locked bool
}

var ControlLockKind = NewKind[ControlLock]()
