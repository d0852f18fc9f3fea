package rooms

import (
	"fmt"
	"sync"
)

// LoadedRoom is everything a room needs, resolved and ready: the manifest
// entry, the parsed layout, and the door's compiled answer hook (nil when
// the door has no script).
type LoadedRoom struct {
	Room  Room
	Level *Level
	Hook  AnswerHook
}

// Pending is an in-flight room load. The game polls it once per frame; the
// actual IO runs off the loop.
type Pending struct {
	mu       sync.Mutex
	progress float64
	room     *LoadedRoom
	err      error
	done     bool
}

// Progress returns the load fraction in [0,1].
func (p *Pending) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// Result returns the loaded room once done. A load error is surfaced, never
// swallowed: the room must not silently become playable without its
// trigger.
func (p *Pending) Result() (*LoadedRoom, error, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.done {
		return nil, nil, false
	}
	return p.room, p.err, true
}

func (p *Pending) step(progress float64) {
	p.mu.Lock()
	p.progress = progress
	p.mu.Unlock()
}

func (p *Pending) finish(room *LoadedRoom, err error) {
	p.mu.Lock()
	p.progress = 1
	p.room = room
	p.err = err
	p.done = true
	p.mu.Unlock()
}

// StartLoad begins loading room `index` from the manifest.
func StartLoad(src *Source, m *Manifest, index int) *Pending {
	p := &Pending{}
	go func() {
		room, err := m.RoomAt(index)
		if err != nil {
			p.finish(nil, err)
			return
		}
		p.step(0.2)

		layoutData, err := src.Load(room.Layout)
		if err != nil {
			p.finish(nil, fmt.Errorf("rooms: room %d layout %s: %w", index, room.Layout, err))
			return
		}
		p.step(0.5)

		level, err := ParseLevel(layoutData)
		if err != nil {
			p.finish(nil, fmt.Errorf("rooms: room %d: %w", index, err))
			return
		}
		p.step(0.7)

		var hook AnswerHook
		if room.Door.Script != "" {
			scriptData, err := src.Load(room.Door.Script)
			if err != nil {
				p.finish(nil, fmt.Errorf("rooms: room %d script %s: %w", index, room.Door.Script, err))
				return
			}
			hook, err = CompileAnswerHook(room.Door.Script, scriptData)
			if err != nil {
				p.finish(nil, err)
				return
			}
		}

		p.finish(&LoadedRoom{Room: room, Level: level, Hook: hook}, nil)
	}()
	return p
}
