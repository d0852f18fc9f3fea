package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed logic tick rate the frame timers below assume.
	TPS = 60

	// TileSize is the room layout grid cell size in world pixels.
	TileSize = 32
)

// Frame budgets for the door cinematic. The fade and settle pauses are
// deliberate fixed waits; the media wait is a readiness event with
// MediaTimeoutFrames as its upper bound.
const (
	FadeFrames         = 180
	SettleFrames       = 150
	MediaTimeoutFrames = 600
	RoomFadeFrames     = 45
)

// DefaultTriggerRadius is used when a room's manifest omits one: three
// tiles, a wider capture distance than the single-question demo used.
const DefaultTriggerRadius = 3 * TileSize

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
