package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mirrorhall/mirrorhall/ecs"
	"github.com/mirrorhall/mirrorhall/ecs/component"
)

// InputSystem samples the keyboard into the singleton InputState once per
// tick. WASD and arrows move; E confirms a door.
type InputSystem struct{}

func NewInputSystem() *InputSystem { return &InputSystem{} }

func (s *InputSystem) Update(w *ecs.World) {
	ent, ok := ecs.First(w, component.InputStateKind)
	if !ok {
		ent = w.CreateEntity()
		_ = ecs.Add(w, ent, component.InputStateKind, &component.InputState{})
	}
	in, ok := ecs.Get(w, ent, component.InputStateKind)
	if !ok {
		return
	}

	in.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	in.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyE)
}
