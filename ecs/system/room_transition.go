package system

import (
	"github.com/mirrorhall/mirrorhall/common"
	"github.com/mirrorhall/mirrorhall/ecs"
	"github.com/mirrorhall/mirrorhall/ecs/component"
)

// RoomTransitionSystem advances the cross-fade around a room change. The
// runtime entity is spawned by the game when a door completes; this system
// only updates timers/alpha and progresses phases. The actual room IO stays
// with the outer game loop, which answers the RoomChangeRequest and raises
// RoomLoaded when done.
type RoomTransitionSystem struct{}

func NewRoomTransitionSystem() *RoomTransitionSystem { return &RoomTransitionSystem{} }

// BeginTransition spawns the fade-out runtime for a move to targetIndex.
// No-op if a transition is already in flight.
func BeginTransition(w *ecs.World, targetIndex int) bool {
	if _, exists := ecs.First(w, component.RoomTransitionKind); exists {
		return false
	}
	// The marker from the previous load would end this fade-out early.
	if marker, ok := ecs.First(w, component.RoomLoadedKind); ok {
		w.DestroyEntity(marker)
	}
	ent := w.CreateEntity()
	_ = ecs.Add(w, ent, component.RoomTransitionKind, &component.RoomTransition{
		Phase: component.RoomTransitionFadeOut,
		Timer: common.RoomFadeFrames,
		Req:   component.RoomChangeRequest{TargetIndex: targetIndex},
	})
	return true
}

func (s *RoomTransitionSystem) Update(w *ecs.World) {
	rtEnt, ok := ecs.First(w, component.RoomTransitionKind)
	if !ok {
		return
	}
	rt, ok := ecs.Get(w, rtEnt, component.RoomTransitionKind)
	if !ok {
		return
	}

	// Hold the control lock for the whole transition, on top of whatever
	// the sequence system decided this tick.
	if lockEnt, ok := ecs.First(w, component.ControlLockKind); ok {
		if lock, ok := ecs.Get(w, lockEnt, component.ControlLockKind); ok {
			lock.Locked = true
		}
	}

	if rt.Timer > 0 {
		rt.Timer--
	}

	switch rt.Phase {
	case component.RoomTransitionFadeOut:
		rt.Alpha = 1 - float64(rt.Timer)/float64(common.RoomFadeFrames)
		if rt.Timer <= 0 && !rt.ReqSent {
			reqEnt := w.CreateEntity()
			req := rt.Req
			_ = ecs.Add(w, reqEnt, component.RoomChangeRequestKind, &req)
			rt.ReqSent = true
		}
		if rt.ReqSent {
			if _, loaded := ecs.First(w, component.RoomLoadedKind); loaded {
				rt.Phase = component.RoomTransitionFadeIn
				rt.Timer = common.RoomFadeFrames
				rt.Alpha = 1
			}
		}
	case component.RoomTransitionFadeIn:
		rt.Alpha = float64(rt.Timer) / float64(common.RoomFadeFrames)
		if rt.Timer <= 0 {
			w.DestroyEntity(rtEnt)
			if lvlEnt, ok := ecs.First(w, component.RoomLoadedKind); ok {
				w.DestroyEntity(lvlEnt)
			}
		}
	}
}

// AbortTransition tears down an in-flight transition and its marker. Used
// when the requested room never arrives, so the fade cannot be left
// covering the screen.
func AbortTransition(w *ecs.World) {
	if ent, ok := ecs.First(w, component.RoomTransitionKind); ok {
		w.DestroyEntity(ent)
	}
	if ent, ok := ecs.First(w, component.RoomLoadedKind); ok {
		w.DestroyEntity(ent)
	}
}

// TransitionAlpha returns the current cross-fade opacity for rendering.
func TransitionAlpha(w *ecs.World) float64 {
	ent, ok := ecs.First(w, component.RoomTransitionKind)
	if !ok {
		return 0
	}
	rt, ok := ecs.Get(w, ent, component.RoomTransitionKind)
	if !ok {
		return 0
	}
	return rt.Alpha
}
