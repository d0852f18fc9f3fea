package ui

import (
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/mirrorhall/mirrorhall/common"
)

func (u *UI) buildHome(face *ebtext.Face) *widget.Container {
	panel := newPanel(common.BaseWidth/2, 0)

	begin := func() {
		topic := strings.TrimSpace(u.topicField.GetText())
		belief := strings.TrimSpace(u.beliefField.GetText())
		if topic == "" || belief == "" {
			return
		}
		if u.cb.Begin != nil {
			u.cb.Begin(topic, belief)
		}
	}

	u.topicField = newField(face, func(string) {})
	u.beliefField = newField(face, func(string) { begin() })

	panel.AddChild(newLabel(face, "Mirror Hall"))
	panel.AddChild(newLabel(face, "What belief do you want to walk through?"))
	panel.AddChild(u.topicField)
	panel.AddChild(newLabel(face, "Where do you stand on it right now?"))
	panel.AddChild(u.beliefField)
	panel.AddChild(newButton(face, "Begin", begin))
	return panel
}

func (u *UI) buildPrompt(face *ebtext.Face) *widget.Container {
	panel := newPanel(common.BaseWidth/2, 0)

	submit := func(answer string) {
		if u.cb.Submit != nil {
			u.cb.Submit(answer)
		}
	}

	u.promptLabel = newLabel(face, "")
	u.answerField = newField(face, submit)

	panel.AddChild(u.promptLabel)
	panel.AddChild(u.answerField)
	panel.AddChild(newButton(face, "Answer", func() {
		submit(u.answerField.GetText())
	}))
	return panel
}

func (u *UI) buildSummary(face *ebtext.Face) *widget.Container {
	panel := newPanel(common.BaseWidth*2/3, common.BaseHeight*2/3)

	u.summaryText = newLabel(face, "")
	u.exportNote = newLabel(face, "")

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	buttons.AddChild(newButton(face, "Copy", func() {
		if u.cb.Copy != nil {
			u.cb.Copy()
		}
	}))
	buttons.AddChild(newButton(face, "Export", func() {
		if u.cb.Export != nil {
			u.cb.Export()
		}
	}))
	buttons.AddChild(newButton(face, "New Session", func() {
		if u.cb.NewSession != nil {
			u.cb.NewSession()
		}
	}))

	panel.AddChild(newLabel(face, "The walk is over."))
	panel.AddChild(u.summaryText)
	panel.AddChild(u.exportNote)
	panel.AddChild(buttons)
	return panel
}
