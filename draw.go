package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"

	"github.com/mirrorhall/mirrorhall/common"
	"github.com/mirrorhall/mirrorhall/ecs"
	"github.com/mirrorhall/mirrorhall/ecs/component"
	"github.com/mirrorhall/mirrorhall/ecs/system"
)

var (
	floorColor   = color.NRGBA{R: 0x16, G: 0x18, B: 0x20, A: 255}
	wallColor    = color.NRGBA{R: 0x3a, G: 0x3e, B: 0x4c, A: 255}
	triggerColor = color.NRGBA{R: 0xd8, G: 0xb4, B: 0x4a, A: 255}
	playerColor  = color.NRGBA{R: 0x7a, G: 0xc0, B: 0xe8, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(floorColor)

	switch g.screen {
	case screenLoading:
		g.drawLoading(screen)
	case screenPlaying, screenSummary:
		g.drawRoom(screen)
	}

	g.overlay.Draw(screen)
	if g.track != nil && g.track.Failed() {
		ebitenutil.DebugPrintAt(screen, "Media unavailable", 8, common.BaseHeight-20)
	}
	g.overlay.DrawRoomFade(screen, system.TransitionAlpha(g.world))
}

func (g *Game) drawLoading(screen *ebiten.Image) {
	if g.pending == nil {
		return
	}
	barW := float64(common.BaseWidth) / 3
	x := (float64(common.BaseWidth) - barW) / 2
	y := float64(common.BaseHeight)/2 - 6
	g.fillRect(screen, x, y, barW, 12, wallColor)
	g.fillRect(screen, x, y, barW*g.pending.Progress(), 12, playerColor)
	ebitenutil.DebugPrintAt(screen, "Loading...", int(x), int(y)-20)
}

func (g *Game) drawRoom(screen *ebiten.Image) {
	if g.current == nil {
		return
	}
	lvl := g.current.Level

	// Center the room on screen.
	worldW, worldH := lvl.WorldSize()
	offX := (float64(common.BaseWidth) - worldW) / 2
	offY := (float64(common.BaseHeight) - worldH) / 2

	for ty := 0; ty*common.TileSize < int(worldH); ty++ {
		for tx := 0; tx*common.TileSize < int(worldW); tx++ {
			if lvl.Solid(tx, ty) {
				g.fillRect(screen,
					offX+float64(tx*common.TileSize), offY+float64(ty*common.TileSize),
					common.TileSize, common.TileSize, wallColor)
			}
		}
	}

	armed := false
	ecs.ForEach2(g.world, component.DoorTriggerKind, component.TransformKind,
		func(_ ecs.Entity, trig *component.DoorTrigger, tr *component.Transform) {
			if trig.Consumed {
				return
			}
			if trig.Armed {
				armed = true
			}
			g.fillRect(screen, offX+tr.Pos.X-6, offY+tr.Pos.Y-6, 12, 12, triggerColor)
		})

	var playerPos cp.Vector
	hasPlayer := false
	ecs.ForEach2(g.world, component.PlayerTagKind, component.TransformKind,
		func(_ ecs.Entity, _ *component.PlayerTag, tr *component.Transform) {
			playerPos = tr.Pos
			hasPlayer = true
			g.fillRect(screen, offX+tr.Pos.X-10, offY+tr.Pos.Y-10, 20, 20, playerColor)
		})

	if armed && hasPlayer && !g.ctrl.Busy() && g.screen == screenPlaying {
		ebitenutil.DebugPrintAt(screen, "Press E", int(offX+playerPos.X)-20, int(offY+playerPos.Y)-30)
	}
}

func (g *Game) fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	r, gr, b, a := c.RGBA()
	op.ColorScale.Scale(float32(r)/0xffff, float32(gr)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	screen.DrawImage(g.white, op)
}

func facingVector(facing string) cp.Vector {
	switch facing {
	case "north":
		return cp.Vector{X: 0, Y: -1}
	case "south":
		return cp.Vector{X: 0, Y: 1}
	case "west":
		return cp.Vector{X: -1, Y: 0}
	default:
		return cp.Vector{X: 1, Y: 0}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
