// Package rooms loads the walkthrough manifest: the ordered set of rooms,
// each with a layout, a spawn pose, a named door trigger, and the door's
// question list. Everything a room needs is resolved here once at load
// time; nothing downstream looks objects up by name mid-frame.
package rooms

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mirrorhall/mirrorhall/common"
)

// TriggerSpec places a door trigger. X/Y are tile coordinates; Radius is
// the capture distance in world units.
type TriggerSpec struct {
	ID     string  `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// SpawnSpec is the player's entry pose for a room, in tile coordinates.
type SpawnSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Facing string  `yaml:"facing"`
}

// DoorSpec is a door's content: its question list in presentation order,
// an optional cinematic media track, and an optional answer hook script.
type DoorSpec struct {
	ID        string   `yaml:"id"`
	Media     string   `yaml:"media"`
	Script    string   `yaml:"script"`
	Questions []string `yaml:"questions"`
}

// Room is one manifest entry.
type Room struct {
	Index   int         `yaml:"index"`
	Name    string      `yaml:"name"`
	Layout  string      `yaml:"layout"`
	Trigger TriggerSpec `yaml:"trigger"`
	Spawn   SpawnSpec   `yaml:"spawn"`
	Door    DoorSpec    `yaml:"door"`
}

// Manifest is the whole walkthrough.
type Manifest struct {
	Title string `yaml:"title"`
	Rooms []Room `yaml:"rooms"`
}

// ParseManifest decodes and validates a manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("rooms: unmarshal manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Rooms) == 0 {
		return fmt.Errorf("rooms: manifest has no rooms")
	}
	for i := range m.Rooms {
		r := &m.Rooms[i]
		if r.Index != i+1 {
			return fmt.Errorf("rooms: entry %d has index %d, want contiguous 1..%d", i, r.Index, len(m.Rooms))
		}
		if strings.TrimSpace(r.Layout) == "" {
			return fmt.Errorf("rooms: room %d has no layout", r.Index)
		}
		if strings.TrimSpace(r.Trigger.ID) == "" {
			return fmt.Errorf("rooms: room %d trigger has no id", r.Index)
		}
		if strings.TrimSpace(r.Door.ID) == "" {
			return fmt.Errorf("rooms: room %d door has no id", r.Index)
		}
		if len(r.Door.Questions) == 0 {
			return fmt.Errorf("rooms: room %d door %q has no questions", r.Index, r.Door.ID)
		}
		for qi, q := range r.Door.Questions {
			if strings.TrimSpace(q) == "" {
				return fmt.Errorf("rooms: room %d door %q question %d is blank", r.Index, r.Door.ID, qi)
			}
		}
		if r.Trigger.Radius <= 0 {
			r.Trigger.Radius = common.DefaultTriggerRadius
		}
	}
	return nil
}

// Count returns the number of rooms in the run.
func (m *Manifest) Count() int {
	return len(m.Rooms)
}

// RoomAt returns the manifest entry for a 1-based room index.
func (m *Manifest) RoomAt(index int) (Room, error) {
	if index < 1 || index > len(m.Rooms) {
		return Room{}, fmt.Errorf("rooms: no room with index %d (have 1..%d)", index, len(m.Rooms))
	}
	return m.Rooms[index-1], nil
}
