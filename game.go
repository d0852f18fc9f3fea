package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.design/x/clipboard"

	"github.com/mirrorhall/mirrorhall/common"
	"github.com/mirrorhall/mirrorhall/ecs"
	"github.com/mirrorhall/mirrorhall/ecs/component"
	"github.com/mirrorhall/mirrorhall/ecs/system"
	"github.com/mirrorhall/mirrorhall/export"
	"github.com/mirrorhall/mirrorhall/media"
	"github.com/mirrorhall/mirrorhall/rooms"
	"github.com/mirrorhall/mirrorhall/sequence"
	"github.com/mirrorhall/mirrorhall/session"
	"github.com/mirrorhall/mirrorhall/ui"
)

type screen int

const (
	screenHome screen = iota
	screenLoading
	screenPlaying
	screenSummary
)

// overlayView is the slice of the UI surface the game loop drives. The
// sequence controller holds its own sequence.Overlay view of the same UI.
type overlayView interface {
	Update()
	Draw(screen *ebiten.Image)
	DrawRoomFade(screen *ebiten.Image, alpha float64)
	ShowHome()
	HideHome()
	ShowSummary(text string)
	SetSummaryNote(note string)
}

type Game struct {
	cfg Config

	world   *ecs.World
	seqSys  *system.SequenceSystem
	moveSys *system.MovementSystem

	record   *session.Record
	ctrl     *sequence.Controller
	overlay  overlayView
	exporter *export.Writer

	src      *rooms.Source
	manifest *rooms.Manifest
	watcher  *rooms.Watcher
	audioCtx *audio.Context

	screen    screen
	roomIndex int
	pending   *rooms.Pending
	current   *rooms.LoadedRoom
	track     *media.Track

	lastSummary   string
	clipboardOK   bool
	manifestDirty bool

	white *ebiten.Image
}

func NewGame(cfg Config) (*Game, error) {
	src := &rooms.Source{Dir: cfg.RoomsDir}
	manifest, err := src.LoadManifest()
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	if cfg.StartRoom > manifest.Count() {
		return nil, fmt.Errorf("start room %d out of range, manifest has %d", cfg.StartRoom, manifest.Count())
	}

	g := &Game{
		cfg:      cfg,
		src:      src,
		manifest: manifest,
		record:   session.NewRecord(),
		exporter: &export.Writer{Dir: cfg.ExportDir},
		audioCtx: audio.NewContext(44100),
		white:    ebiten.NewImage(1, 1),
	}
	g.white.Fill(color.White)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	view := ui.New(ui.Callbacks{
		Begin:      g.beginSession,
		Submit:     func(answer string) { g.ctrl.Submit(answer) },
		Copy:       g.copySummary,
		Export:     g.exportSummary,
		NewSession: g.startNewSession,
	})
	g.overlay = view

	g.ctrl = sequence.New(sequence.Config{
		FadeFrames:         common.FadeFrames,
		SettleFrames:       common.SettleFrames,
		MediaTimeoutFrames: common.MediaTimeoutFrames,
	}, view, g.record, g.doorDone)

	g.resetWorld()

	if cfg.Dev && cfg.RoomsDir != "" {
		w, err := rooms.NewWatcher(cfg.RoomsDir)
		if err != nil {
			log.Printf("rooms watcher: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// resetWorld rebuilds the ECS world and its systems from scratch. Cheap
// enough to do per session; nothing outside the world survives it.
func (g *Game) resetWorld() {
	g.world = ecs.NewWorld()
	g.seqSys = system.NewSequenceSystem(g.ctrl)
	g.moveSys = system.NewMovementSystem()
	g.world.AddSystem(system.NewInputSystem())
	g.world.AddSystem(system.NewProximitySystem())
	g.world.AddSystem(g.seqSys)
	g.world.AddSystem(system.NewRoomTransitionSystem())
	g.world.AddSystem(g.moveSys)
}

// Close releases the dev-mode watcher, if one was started.
func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) beginSession(topic, belief string) {
	g.record.SetInitialBelief(topic, belief)
	g.overlay.HideHome()
	g.roomIndex = g.cfg.StartRoom
	g.pending = rooms.StartLoad(g.src, g.manifest, g.roomIndex)
	g.screen = screenLoading
}

func (g *Game) startNewSession() {
	g.record.Reset()
	g.ctrl.Reset()
	g.resetWorld()
	g.current = nil
	g.pending = nil
	g.roomIndex = g.cfg.StartRoom
	g.lastSummary = ""
	g.overlay.ShowHome()
	g.screen = screenHome
}

// doorDone runs after a door sequence finishes: advance to the next room,
// or close the walk out on the last one.
func (g *Game) doorDone(doorID string) {
	if g.roomIndex < g.manifest.Count() {
		system.BeginTransition(g.world, g.roomIndex+1)
		return
	}
	snap := g.record.Snapshot()
	g.lastSummary = export.Summary(snap)
	g.overlay.ShowSummary(g.lastSummary)
	g.screen = screenSummary
	log.Printf("session complete: %q, %d answers through %s", snap.Topic, len(snap.Answers), doorID)
}

func (g *Game) copySummary() {
	if !g.clipboardOK {
		g.overlay.SetSummaryNote("Clipboard unavailable.")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.lastSummary))
	g.overlay.SetSummaryNote("Copied to clipboard.")
}

func (g *Game) exportSummary() {
	path, err := g.exporter.Write(g.record.Snapshot())
	if err != nil {
		log.Printf("export: %v", err)
		g.overlay.SetSummaryNote("Export failed.")
		return
	}
	g.overlay.SetSummaryNote("Saved " + path)
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.overlay.Update()

	switch g.screen {
	case screenLoading:
		g.pollPending()
	case screenPlaying:
		g.world.Update()
		g.takeRoomRequest()
		g.pollPending()
	}
	return nil
}

// drainWatcher marks the manifest dirty on any rooms dir change; the
// reload itself waits for the next room load so a half-written file never
// lands mid-room.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case <-g.watcher.Events:
			g.manifestDirty = true
		case err := <-g.watcher.Errors:
			log.Printf("rooms watcher: %v", err)
		default:
			return
		}
	}
}

// takeRoomRequest answers at most one room change request per tick.
func (g *Game) takeRoomRequest() {
	ent, ok := ecs.First(g.world, component.RoomChangeRequestKind)
	if !ok {
		return
	}
	req, _ := ecs.Get(g.world, ent, component.RoomChangeRequestKind)
	target := req.TargetIndex
	g.world.DestroyEntity(ent)

	if g.manifestDirty {
		g.manifestDirty = false
		if m, err := g.src.LoadManifest(); err != nil {
			log.Printf("manifest reload: %v", err)
		} else if target <= m.Count() {
			g.manifest = m
			log.Printf("manifest reloaded, %d rooms", m.Count())
		}
	}

	g.roomIndex = target
	g.pending = rooms.StartLoad(g.src, g.manifest, target)
}

func (g *Game) pollPending() {
	if g.pending == nil {
		return
	}
	loaded, err, done := g.pending.Result()
	if !done {
		return
	}
	g.pending = nil
	if err != nil {
		log.Printf("room %d load: %v", g.roomIndex, err)
		g.failRoomLoad()
		return
	}
	g.installRoom(loaded)
	if g.screen == screenLoading {
		g.screen = screenPlaying
	}
}

// failRoomLoad hands off to the summary screen with the record intact: a
// broken room ends the walk early but never costs the answers already
// given.
func (g *Game) failRoomLoad() {
	g.ctrl.Reset()
	system.AbortTransition(g.world)
	g.lastSummary = export.Summary(g.record.Snapshot())
	g.overlay.ShowSummary(g.lastSummary)
	g.overlay.SetSummaryNote(fmt.Sprintf("Room %d failed to load; your answers are kept.", g.roomIndex))
	g.screen = screenSummary
}

// installRoom swaps the loaded room into the world: the previous room's
// entities go, the new player and trigger come in, and the systems get
// their per-room bindings.
func (g *Game) installRoom(loaded *rooms.LoadedRoom) {
	for _, ent := range g.world.Entities() {
		if ecs.Has(g.world, ent, component.RoomScopedKind) {
			g.world.DestroyEntity(ent)
		}
	}

	g.current = loaded
	room := loaded.Room

	player := g.world.CreateEntity()
	_ = ecs.Add(g.world, player, component.RoomScopedKind, &component.RoomScoped{})
	_ = ecs.Add(g.world, player, component.PlayerTagKind, &component.PlayerTag{})
	_ = ecs.Add(g.world, player, component.TransformKind, &component.Transform{
		Pos: rooms.TileToWorld(room.Spawn.X, room.Spawn.Y),
	})
	_ = ecs.Add(g.world, player, component.PlayerControllerKind, &component.PlayerController{
		MoveSpeed: 2.5,
		Facing:    facingVector(room.Spawn.Facing),
	})

	trigger := g.world.CreateEntity()
	_ = ecs.Add(g.world, trigger, component.RoomScopedKind, &component.RoomScoped{})
	_ = ecs.Add(g.world, trigger, component.TransformKind, &component.Transform{
		Pos: rooms.TileToWorld(room.Trigger.X, room.Trigger.Y),
	})
	_ = ecs.Add(g.world, trigger, component.DoorTriggerKind, &component.DoorTrigger{
		TriggerID: room.Trigger.ID,
		DoorID:    room.Door.ID,
		Radius:    room.Trigger.Radius,
	})

	g.moveSys.SetLevel(loaded.Level)
	g.seqSys.SetDoor(g.buildDoor(loaded))

	marker := g.world.CreateEntity()
	_ = ecs.Add(g.world, marker, component.RoomLoadedKind, &component.RoomLoaded{Index: room.Index})
}

func (g *Game) buildDoor(loaded *rooms.LoadedRoom) sequence.Door {
	door := sequence.Door{
		ID:        loaded.Room.Door.ID,
		Questions: loaded.Room.Door.Questions,
	}
	if loaded.Hook != nil {
		door.Hook = sequence.Hook(loaded.Hook)
	}
	if name := loaded.Room.Door.Media; name != "" {
		g.track = media.NewTrack(g.audioCtx, name, g.src.Load)
		door.Media = g.track
	} else {
		// no track for this door; the stage flow stays uniform
		g.track = nil
		door.Media = media.Silence{}
	}
	return door
}
