// internal/state/branching_dialogue_state.go
package state

import (
	"pixel-war/internal/config"
	"pixel-war/internal/defs"
	"pixel-war/internal/dialogue"
	"pixel-war/internal/input"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ChoiceFunc получает выбранный ключ; ok == false — игрок вышел без выбора.
type ChoiceFunc func(key string, ok bool)

// BranchingDialogueState — окно диалога с вариантами ответа поверх игры.
type BranchingDialogueState struct {
	base
	ctx      *Context
	box      *dialogue.Box
	under    State
	onChoice ChoiceFunc
	reported bool
}

func NewBranchingDialogueState(ctx *Context, d defs.BranchingDialogue, under State, onChoice ChoiceFunc) *BranchingDialogueState {
	return &BranchingDialogueState{
		ctx:      ctx,
		box:      dialogue.NewBox(d, config.DialogueCharDelayMs, ctx.Journal),
		under:    under,
		onChoice: onChoice,
	}
}

// Box — окно диалога.
func (b *BranchingDialogueState) Box() *dialogue.Box { return b.box }

func (b *BranchingDialogueState) ProcessInput(in input.Reader) {
	b.box.HandleInput(in)
}

func (b *BranchingDialogueState) Update(deltaTime float64) {
	b.box.Update(deltaTime * 1000)
	if !b.box.Finished() || b.reported {
		return
	}
	b.reported = true
	if b.onChoice != nil {
		r := b.box.Result()
		b.onChoice(r.Key, r.OK)
	}
	b.requests.Request(transition.Back)
}

func (b *BranchingDialogueState) Draw(screen *ebiten.Image) {
	if b.under != nil {
		b.under.Draw(screen)
	}
	const (
		left = 40
		top  = config.ScreenHeight - 260
	)
	vector.DrawFilledRect(screen, left, top, config.ScreenWidth-2*left, 230, config.OverlayColor, false)
	vector.StrokeRect(screen, left, top, config.ScreenWidth-2*left, 230, 2, config.TextDimColor, false)

	textLeft := left + 16
	d := b.box.Dialogue
	if d.Portrait != "" && b.ctx.Sprites != nil && !b.ctx.Sprites.Missing(d.Portrait) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(left+10, top+10)
		screen.DrawImage(b.ctx.Sprites.Image(d.Portrait, 96, 96), op)
		textLeft += 106
	}
	y := ui.DrawLines(screen, ui.Wrap(b.box.VisibleText(), config.ScreenWidth-left-textLeft-16), textLeft, top+16, config.TextLightColor)
	if b.box.Phase() != dialogue.Choosing {
		return
	}
	y += config.LineHeight
	for i, c := range d.Choices {
		clr, mark := config.TextLightColor, "  "
		if i == b.box.Selected() {
			clr, mark = config.HighlightColor, "> "
		}
		ui.DrawText(screen, mark+c.Key+") "+c.Label, textLeft, y, clr)
		y += config.LineHeight
	}
}
