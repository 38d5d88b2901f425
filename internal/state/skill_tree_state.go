// internal/state/skill_tree_state.go
package state

import (
	"errors"
	"fmt"

	"pixel-war/internal/config"
	"pixel-war/internal/hero"
	"pixel-war/internal/input"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// SkillTreeState — прокачка навыков героя за очки навыков.
type SkillTreeState struct {
	base
	ctx      *Context
	under    State
	selected int
	message  string
}

func NewSkillTreeState(ctx *Context, under State) *SkillTreeState {
	return &SkillTreeState{ctx: ctx, under: under}
}

func (s *SkillTreeState) Selected() int { return s.selected }

func (s *SkillTreeState) ProcessInput(in input.Reader) {
	nodes := s.ctx.Hero.Tree.Nodes
	n := len(nodes)
	switch {
	case in.JustPressed(input.KeyEscape):
		s.requests.Request(transition.Back)
	case n == 0:
	case in.JustPressed(input.KeyUp):
		s.selected = (s.selected - 1 + n) % n
	case in.JustPressed(input.KeyDown):
		s.selected = (s.selected + 1) % n
	case in.JustPressed(input.KeyEnter):
		s.upgrade(nodes[s.selected])
	}
}

func (s *SkillTreeState) upgrade(node *hero.SkillNode) {
	err := s.ctx.Hero.UpgradeSkill(node.Name)
	switch {
	case err == nil:
		s.message = fmt.Sprintf("%s upgraded to level %d", node.Name, node.Level)
	case errors.Is(err, hero.ErrNoSkillPoints):
		s.message = "Not enough skill points."
	case errors.Is(err, hero.ErrSkillMaxed):
		s.message = node.Name + " is already maxed."
	default:
		s.message = err.Error()
	}
}

func (s *SkillTreeState) Update(deltaTime float64) {}

func (s *SkillTreeState) Draw(screen *ebiten.Image) {
	if s.under != nil {
		s.under.Draw(screen)
	}
	ui.DrawOverlay(screen, config.OverlayColor)
	p := s.ctx.Hero
	ui.DrawCentered(screen, "Skill Tree", 80, config.HighlightColor)
	ui.DrawCentered(screen, fmt.Sprintf("Skill points: %d", p.SkillPoints), 110, config.TextLightColor)
	y := 160
	for i, n := range p.Tree.Nodes {
		clr := config.TextLightColor
		if i == s.selected {
			clr = config.HighlightColor
		}
		line := fmt.Sprintf("%-12s %d  (level %d/%d, cost %d)", n.Name, p.Skills[n.Name], n.Level, n.MaxLevel, n.Cost)
		ui.DrawText(screen, line, 220, y, clr)
		y += config.LineHeight * 2
	}
	if s.message != "" {
		ui.DrawCentered(screen, s.message, y+config.LineHeight, config.TextDimColor)
	}
	ui.DrawCentered(screen, "Up/Down: select   Enter: upgrade   Esc: back", config.ScreenHeight-40, config.TextDimColor)
}
