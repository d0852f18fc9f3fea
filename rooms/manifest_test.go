package rooms

import (
	"strings"
	"testing"

	"github.com/mirrorhall/mirrorhall/common"
)

const minimalManifest = `
title: test
rooms:
  - index: 1
    name: one
    layout: room1.txt
    trigger: { id: t1, x: 5, y: 5 }
    spawn: { x: 1, y: 1, facing: east }
    door:
      id: door-1
      questions: [ "Why?" ]
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(minimalManifest))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if m.Count() != 1 {
		t.Fatalf("Count = %d, want 1", m.Count())
	}
	room, err := m.RoomAt(1)
	if err != nil {
		t.Fatalf("RoomAt(1): %v", err)
	}
	if room.Door.ID != "door-1" || room.Trigger.ID != "t1" {
		t.Fatalf("room = %+v", room)
	}
	if room.Trigger.Radius != common.DefaultTriggerRadius {
		t.Fatalf("omitted radius = %v, want default %v", room.Trigger.Radius, float64(common.DefaultTriggerRadius))
	}
}

func TestParseManifestRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{"no_rooms", func(string) string { return "title: x\nrooms: []\n" }, "no rooms"},
		{"bad_index", func(s string) string { return strings.Replace(s, "index: 1", "index: 2", 1) }, "contiguous"},
		{"no_questions", func(s string) string { return strings.Replace(s, `[ "Why?" ]`, "[]", 1) }, "no questions"},
		{"blank_question", func(s string) string { return strings.Replace(s, `"Why?"`, `"  "`, 1) }, "is blank"},
		{"no_trigger_id", func(s string) string { return strings.Replace(s, "id: t1", `id: ""`, 1) }, "trigger has no id"},
		{"no_layout", func(s string) string { return strings.Replace(s, "layout: room1.txt", `layout: ""`, 1) }, "no layout"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(c.mutate(minimalManifest)))
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("err = %v, want contains %q", err, c.wantErr)
			}
		})
	}
}

func TestRoomAtOutOfRange(t *testing.T) {
	m, err := ParseManifest([]byte(minimalManifest))
	if err != nil {
		t.Fatal(err)
	}
	for _, idx := range []int{0, 2, -1} {
		if _, err := m.RoomAt(idx); err == nil {
			t.Fatalf("RoomAt(%d) should fail", idx)
		}
	}
}

func TestEmbeddedManifestIsValid(t *testing.T) {
	src := &Source{}
	m, err := src.LoadManifest()
	if err != nil {
		t.Fatalf("embedded manifest: %v", err)
	}
	for i := 1; i <= m.Count(); i++ {
		room, err := m.RoomAt(i)
		if err != nil {
			t.Fatal(err)
		}
		data, err := src.Load(room.Layout)
		if err != nil {
			t.Fatalf("room %d layout: %v", i, err)
		}
		level, err := ParseLevel(data)
		if err != nil {
			t.Fatalf("room %d layout: %v", i, err)
		}
		if level.SolidAtWorld(TileToWorld(room.Spawn.X, room.Spawn.Y)) {
			t.Fatalf("room %d spawn is inside a wall", i)
		}
		if level.SolidAtWorld(TileToWorld(room.Trigger.X, room.Trigger.Y)) {
			t.Fatalf("room %d trigger is inside a wall", i)
		}
		if room.Door.Script != "" {
			scriptData, err := src.Load(room.Door.Script)
			if err != nil {
				t.Fatalf("room %d script: %v", i, err)
			}
			if _, err := CompileAnswerHook(room.Door.Script, scriptData); err != nil {
				t.Fatalf("room %d script: %v", i, err)
			}
		}
	}
}
