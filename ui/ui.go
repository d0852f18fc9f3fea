// Package ui builds the overlay surfaces for Mirror Hall: the home form, the
// question prompt, the closing summary, and the fade/backdrop layers the
// door sequences draw through. All widgets render through ebitenui on top of
// the world; game state stays outside, reached via the Callbacks.
package ui

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mirrorhall/mirrorhall/common"
)

// Callbacks are the game-side handlers for UI actions. The UI never touches
// game state directly.
type Callbacks struct {
	Begin      func(topic, belief string)
	Submit     func(answer string)
	Copy       func()
	Export     func()
	NewSession func()
}

type UI struct {
	eui *ebitenui.UI
	cb  Callbacks

	home    *widget.Container
	prompt  *widget.Container
	summary *widget.Container

	topicField  *widget.TextInput
	beliefField *widget.TextInput
	answerField *widget.TextInput
	promptLabel *widget.Text
	summaryText *widget.Text
	exportNote  *widget.Text

	fadeShown bool
	fadeTimer int
	mediaOn   bool

	black *ebiten.Image
}

func New(cb Callbacks) *UI {
	u := &UI{cb: cb, black: ebiten.NewImage(1, 1)}
	u.black.Fill(color.Black)

	face := uiFace()
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	u.home = u.buildHome(face)
	u.prompt = u.buildPrompt(face)
	u.summary = u.buildSummary(face)
	root.AddChild(u.home)
	root.AddChild(u.prompt)
	root.AddChild(u.summary)

	u.prompt.GetWidget().Visibility = widget.Visibility_Hide
	u.summary.GetWidget().Visibility = widget.Visibility_Hide

	u.eui = &ebitenui.UI{Container: root}
	return u
}

func (u *UI) Update() {
	if u.fadeShown && u.fadeTimer < common.FadeFrames {
		u.fadeTimer++
	}
	u.eui.Update()
}

// Draw renders the backdrop layers first and the widgets above them, so a
// prompt stays readable over a fully faded screen.
func (u *UI) Draw(screen *ebiten.Image) {
	if u.mediaOn {
		u.fillScreen(screen, 0.85)
	}
	if u.fadeShown {
		u.fillScreen(screen, float64(u.fadeTimer)/float64(common.FadeFrames))
	}
	u.eui.Draw(screen)
}

// DrawRoomFade paints the cross-fade alpha owned by a room transition.
func (u *UI) DrawRoomFade(screen *ebiten.Image, alpha float64) {
	if alpha > 0 {
		u.fillScreen(screen, alpha)
	}
}

func (u *UI) fillScreen(screen *ebiten.Image, alpha float64) {
	alpha = common.Clamp(alpha, 0, 1)
	if alpha == 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(u.black, op)
}

// ShowHome resets and reveals the opening form.
func (u *UI) ShowHome() {
	u.topicField.SetText("")
	u.beliefField.SetText("")
	u.home.GetWidget().Visibility = widget.Visibility_Show
	u.prompt.GetWidget().Visibility = widget.Visibility_Hide
	u.summary.GetWidget().Visibility = widget.Visibility_Hide
}

func (u *UI) HideHome() {
	u.home.GetWidget().Visibility = widget.Visibility_Hide
}

// ShowSummary reveals the closing screen with the rendered walkthrough text.
func (u *UI) ShowSummary(text string) {
	u.summaryText.Label = text
	u.exportNote.Label = ""
	u.summary.GetWidget().Visibility = widget.Visibility_Show
}

// SetSummaryNote surfaces the result of a copy or export action.
func (u *UI) SetSummaryNote(note string) {
	u.exportNote.Label = note
}

// ShowPrompt opens the question overlay with a cleared answer field.
func (u *UI) ShowPrompt(text string) {
	u.promptLabel.Label = wrapText(text, 64)
	u.answerField.SetText("")
	u.prompt.GetWidget().Visibility = widget.Visibility_Show
}

func (u *UI) HidePrompt() {
	u.prompt.GetWidget().Visibility = widget.Visibility_Hide
}

func (u *UI) ShowFade() {
	u.fadeShown = true
	u.fadeTimer = 0
}

func (u *UI) HideFade() {
	u.fadeShown = false
	u.fadeTimer = 0
}

func (u *UI) ShowMedia() { u.mediaOn = true }
func (u *UI) HideMedia() { u.mediaOn = false }

// wrapText soft-wraps on spaces so long questions fit the prompt panel.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	line := 0
	for i, w := range words {
		if i > 0 {
			if line+1+len(w) > width {
				b.WriteByte('\n')
				line = 0
			} else {
				b.WriteByte(' ')
				line++
			}
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
