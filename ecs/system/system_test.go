package system

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/mirrorhall/mirrorhall/common"
	"github.com/mirrorhall/mirrorhall/ecs"
	"github.com/mirrorhall/mirrorhall/ecs/component"
	"github.com/mirrorhall/mirrorhall/rooms"
	"github.com/mirrorhall/mirrorhall/sequence"
	"github.com/mirrorhall/mirrorhall/session"
)

type nopOverlay struct{}

func (nopOverlay) ShowPrompt(string) {}
func (nopOverlay) HidePrompt()       {}
func (nopOverlay) ShowFade()         {}
func (nopOverlay) HideFade()         {}
func (nopOverlay) ShowMedia()        {}
func (nopOverlay) HideMedia()        {}

func testWorld() *ecs.World {
	return ecs.NewWorld()
}

func addPlayer(w *ecs.World, pos cp.Vector) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.PlayerTagKind, &component.PlayerTag{})
	_ = ecs.Add(w, e, component.TransformKind, &component.Transform{Pos: pos})
	_ = ecs.Add(w, e, component.PlayerControllerKind, &component.PlayerController{MoveSpeed: 4})
	return e
}

func addTrigger(w *ecs.World, pos cp.Vector, doorID string, radius float64) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformKind, &component.Transform{Pos: pos})
	_ = ecs.Add(w, e, component.DoorTriggerKind, &component.DoorTrigger{DoorID: doorID, Radius: radius})
	return e
}

func TestProximitySystemArming(t *testing.T) {
	cases := []struct {
		name      string
		player    cp.Vector
		wantArmed bool
	}{
		{"inside", cp.Vector{X: 105, Y: 100}, true},
		{"outside", cp.Vector{X: 300, Y: 100}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := testWorld()
			addPlayer(w, c.player)
			trigEnt := addTrigger(w, cp.Vector{X: 100, Y: 100}, "door-1", 50)

			NewProximitySystem().Update(w)

			trig, _ := ecs.Get(w, trigEnt, component.DoorTriggerKind)
			if trig.Armed != c.wantArmed {
				t.Fatalf("Armed = %v, want %v", trig.Armed, c.wantArmed)
			}
		})
	}
}

func TestProximitySystemConsumedNeverRearms(t *testing.T) {
	w := testWorld()
	addPlayer(w, cp.Vector{X: 100, Y: 100})
	trigEnt := addTrigger(w, cp.Vector{X: 100, Y: 100}, "door-1", 50)
	trig, _ := ecs.Get(w, trigEnt, component.DoorTriggerKind)
	trig.Consumed = true

	NewProximitySystem().Update(w)

	if trig.Armed {
		t.Fatalf("consumed trigger must stay disarmed")
	}
}

func TestProximitySystemNoPlayerDisarms(t *testing.T) {
	w := testWorld()
	trigEnt := addTrigger(w, cp.Vector{X: 100, Y: 100}, "door-1", 50)
	trig, _ := ecs.Get(w, trigEnt, component.DoorTriggerKind)
	trig.Armed = true

	NewProximitySystem().Update(w)

	if trig.Armed {
		t.Fatalf("trigger must disarm while no player exists")
	}
}

func newController(rec *session.Record) *sequence.Controller {
	return sequence.New(sequence.Config{
		FadeFrames:         2,
		SettleFrames:       2,
		MediaTimeoutFrames: 4,
	}, nopOverlay{}, rec, func(string) {})
}

func TestSequenceSystemActivatesOnConfirm(t *testing.T) {
	w := testWorld()
	addPlayer(w, cp.Vector{X: 100, Y: 100})
	trigEnt := addTrigger(w, cp.Vector{X: 100, Y: 100}, "door-1", 50)

	ctrl := newController(session.NewRecord())
	sys := NewSequenceSystem(ctrl)
	sys.SetDoor(sequence.Door{ID: "door-1", Questions: []string{"q"}})

	NewProximitySystem().Update(w)

	in := inputState(w)
	if in == nil {
		e := w.CreateEntity()
		st := &component.InputState{}
		_ = ecs.Add(w, e, component.InputStateKind, st)
		in = st
	}
	in.Confirm = true

	sys.Update(w)

	if ctrl.State() != sequence.StateRunning {
		t.Fatalf("controller state = %v, want Running", ctrl.State())
	}
	trig, _ := ecs.Get(w, trigEnt, component.DoorTriggerKind)
	if !trig.Consumed {
		t.Fatalf("trigger must be consumed on activation")
	}

	lockEnt, ok := ecs.First(w, component.ControlLockKind)
	if !ok {
		t.Fatalf("control lock singleton missing")
	}
	// The lock is held on the activation tick itself, not one tick later.
	lock, _ := ecs.Get(w, lockEnt, component.ControlLockKind)
	if !lock.Locked {
		t.Fatalf("lock must be held on the tick Running is entered")
	}
}

func TestActivationTickSuppressesMovement(t *testing.T) {
	w := testWorld()
	playerEnt := addPlayer(w, cp.Vector{X: 2.5 * common.TileSize, Y: 2.5 * common.TileSize})
	tf, _ := ecs.Get(w, playerEnt, component.TransformKind)
	addTrigger(w, tf.Pos, "door-1", 50)

	ctrl := newController(session.NewRecord())
	seqSys := NewSequenceSystem(ctrl)
	seqSys.SetDoor(sequence.Door{ID: "door-1", Questions: []string{"q"}})
	moveSys := NewMovementSystem()
	moveSys.SetLevel(parseRoom(t, openRoom))

	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.InputStateKind, &component.InputState{Right: true, Confirm: true})

	start := tf.Pos

	// One tick in the registered system order.
	NewProximitySystem().Update(w)
	seqSys.Update(w)
	NewRoomTransitionSystem().Update(w)
	moveSys.Update(w)

	if ctrl.State() != sequence.StateRunning {
		t.Fatalf("controller state = %v, want Running", ctrl.State())
	}
	if tf.Pos != start {
		t.Fatalf("player moved %v -> %v on the activation tick", start, tf.Pos)
	}
}

func TestSequenceSystemIgnoresConfirmWhenDisarmed(t *testing.T) {
	w := testWorld()
	addPlayer(w, cp.Vector{X: 500, Y: 500})
	addTrigger(w, cp.Vector{X: 100, Y: 100}, "door-1", 50)

	ctrl := newController(session.NewRecord())
	sys := NewSequenceSystem(ctrl)
	sys.SetDoor(sequence.Door{ID: "door-1", Questions: []string{"q"}})

	NewProximitySystem().Update(w)
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.InputStateKind, &component.InputState{Confirm: true})

	sys.Update(w)

	if ctrl.State() != sequence.StateIdle {
		t.Fatalf("disarmed confirm must not start the sequence")
	}
}

const openRoom = `##########
#........#
#........#
#........#
##########`

func parseRoom(t *testing.T, layout string) *rooms.Level {
	t.Helper()
	lvl, err := rooms.ParseLevel([]byte(strings.TrimSpace(layout)))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	return lvl
}

func TestMovementSystemMovesAndClamps(t *testing.T) {
	w := testWorld()
	playerEnt := addPlayer(w, cp.Vector{X: 2.5 * common.TileSize, Y: 2.5 * common.TileSize})
	_ = ecs.Add(w, w.CreateEntity(), component.InputStateKind, &component.InputState{Left: true})

	sys := NewMovementSystem()
	sys.SetLevel(parseRoom(t, openRoom))

	tf, _ := ecs.Get(w, playerEnt, component.TransformKind)
	startX := tf.Pos.X

	sys.Update(w)
	if tf.Pos.X >= startX {
		t.Fatalf("player should move left, x %v -> %v", startX, tf.Pos.X)
	}

	// Walk into the left wall; position must settle, never enter a solid.
	for i := 0; i < 120; i++ {
		sys.Update(w)
	}
	if tf.Pos.X-playerHalfWidth < common.TileSize {
		t.Fatalf("player probe entered wall tile, x=%v", tf.Pos.X)
	}
	before := tf.Pos.X
	sys.Update(w)
	if tf.Pos.X != before {
		t.Fatalf("player should be pinned against the wall")
	}
}

func TestMovementSystemHonorsControlLock(t *testing.T) {
	w := testWorld()
	playerEnt := addPlayer(w, cp.Vector{X: 2.5 * common.TileSize, Y: 2.5 * common.TileSize})
	_ = ecs.Add(w, w.CreateEntity(), component.InputStateKind, &component.InputState{Right: true})
	_ = ecs.Add(w, w.CreateEntity(), component.ControlLockKind, &component.ControlLock{Locked: true})

	sys := NewMovementSystem()
	sys.SetLevel(parseRoom(t, openRoom))

	tf, _ := ecs.Get(w, playerEnt, component.TransformKind)
	start := tf.Pos

	sys.Update(w)

	if tf.Pos != start {
		t.Fatalf("locked player must not move")
	}
}

func TestRoomTransitionPhases(t *testing.T) {
	w := testWorld()
	sys := NewRoomTransitionSystem()

	if !BeginTransition(w, 2) {
		t.Fatalf("BeginTransition should start")
	}
	if BeginTransition(w, 3) {
		t.Fatalf("second transition must be refused while one runs")
	}

	// Fade out to completion; the room change request appears exactly once.
	for i := 0; i < common.RoomFadeFrames+3; i++ {
		sys.Update(w)
	}
	reqEnt, ok := ecs.First(w, component.RoomChangeRequestKind)
	if !ok {
		t.Fatalf("fade-out must emit a room change request")
	}
	req, _ := ecs.Get(w, reqEnt, component.RoomChangeRequestKind)
	if req.TargetIndex != 2 {
		t.Fatalf("TargetIndex = %d, want 2", req.TargetIndex)
	}
	count := 0
	ecs.ForEach(w, component.RoomChangeRequestKind, func(ecs.Entity, *component.RoomChangeRequest) { count++ })
	if count != 1 {
		t.Fatalf("request must be emitted once, got %d", count)
	}
	if a := TransitionAlpha(w); a != 1 {
		t.Fatalf("alpha should be held at 1 awaiting the load, got %v", a)
	}

	// Outer loop answers the request and reports the load.
	w.DestroyEntity(reqEnt)
	marker := w.CreateEntity()
	_ = ecs.Add(w, marker, component.RoomLoadedKind, &component.RoomLoaded{Index: 2})

	sys.Update(w)
	for i := 0; i < common.RoomFadeFrames+1; i++ {
		sys.Update(w)
	}

	if _, ok := ecs.First(w, component.RoomTransitionKind); ok {
		t.Fatalf("transition runtime must be destroyed after fade-in")
	}
	if _, ok := ecs.First(w, component.RoomLoadedKind); ok {
		t.Fatalf("loaded marker must be cleared with the transition")
	}
	if a := TransitionAlpha(w); a != 0 {
		t.Fatalf("alpha should be 0 after the transition, got %v", a)
	}
}

func TestBeginTransitionClearsStaleLoadedMarker(t *testing.T) {
	w := testWorld()
	stale := w.CreateEntity()
	_ = ecs.Add(w, stale, component.RoomLoadedKind, &component.RoomLoaded{Index: 1})

	BeginTransition(w, 2)

	if _, ok := ecs.First(w, component.RoomLoadedKind); ok {
		t.Fatalf("marker from the previous load must not survive into a new transition")
	}
}

func TestRoomTransitionHoldsControlLock(t *testing.T) {
	w := testWorld()
	lockEnt := w.CreateEntity()
	_ = ecs.Add(w, lockEnt, component.ControlLockKind, &component.ControlLock{})

	BeginTransition(w, 2)
	NewRoomTransitionSystem().Update(w)

	lock, _ := ecs.Get(w, lockEnt, component.ControlLockKind)
	if !lock.Locked {
		t.Fatalf("transition must hold the control lock")
	}
}
