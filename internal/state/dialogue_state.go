// internal/state/dialogue_state.go
package state

import (
	"pixel-war/internal/config"
	"pixel-war/internal/defs"
	"pixel-war/internal/input"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DialogueState — линейный брифинг. Строка-команда прерывает его катсценой,
// после которой диалог продолжается со следующей строки.
type DialogueState struct {
	base
	ctx      *Context
	script   defs.DialogueScript
	index    int
	finished bool
}

func NewDialogueState(ctx *Context) *DialogueState {
	return &DialogueState{ctx: ctx, script: ctx.Data.LoadDialogueScript(config.BriefingFile)}
}

// Index — номер текущей строки.
func (d *DialogueState) Index() int { return d.index }

func (d *DialogueState) ProcessInput(in input.Reader) {
	if d.finished || !in.JustPressed(input.KeySpace) {
		return
	}
	if line, ok := d.line(); ok {
		d.ctx.Journal.Append(speakerLine(line))
	}
	d.index++
}

func (d *DialogueState) Update(deltaTime float64) {
	if d.finished {
		return
	}
	if line, ok := d.line(); ok && line.Text == defs.CommandShowPutinCutscene {
		d.index++
		d.requests.Request(transition.ToPutinCutscene)
	}
	if d.index >= len(d.script.Lines) {
		d.finished = true
		d.requests.Request(transition.ToPlay)
	}
}

func (d *DialogueState) line() (defs.DialogueLine, bool) {
	if d.index >= len(d.script.Lines) {
		return defs.DialogueLine{}, false
	}
	return d.script.Lines[d.index], true
}

func speakerLine(l defs.DialogueLine) string {
	if l.Speaker == "" {
		return l.Text
	}
	return l.Speaker + ": " + l.Text
}

func (d *DialogueState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	line, ok := d.line()
	if !ok || line.Text == defs.CommandShowPutinCutscene {
		return
	}
	const boxTop = config.ScreenHeight - 180
	vector.DrawFilledRect(screen, 20, boxTop, config.ScreenWidth-40, 160, config.OverlayColor, false)
	vector.StrokeRect(screen, 20, boxTop, config.ScreenWidth-40, 160, 2, config.TextDimColor, false)
	ui.DrawText(screen, line.Speaker, 40, boxTop+15, config.HighlightColor)
	ui.DrawLines(screen, ui.Wrap(line.Text, config.ScreenWidth-80), 40, boxTop+15+config.LineHeight*2, config.TextLightColor)
	ui.DrawText(screen, "Space: next", config.ScreenWidth-140, boxTop+135, config.TextDimColor)
}
