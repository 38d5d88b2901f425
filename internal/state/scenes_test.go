package state

import (
	"path/filepath"
	"testing"

	"pixel-war/internal/config"
	"pixel-war/internal/defs"
	"pixel-war/internal/input"
	"pixel-war/internal/transition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func takeKind(t *testing.T, q *transition.Queue) transition.Kind {
	t.Helper()
	r, ok := q.Take()
	require.True(t, ok, "expected a pending request")
	return r.Kind
}

func TestBriefingDialogueFlow(t *testing.T) {
	ctx := newTestContext(t)
	d := NewDialogueState(ctx)
	space := press(input.KeySpace)

	for i := 0; i < 3; i++ {
		d.ProcessInput(space)
		d.Update(tick)
	}
	assert.Equal(t, 4, d.Index(), "command line is skipped")
	assert.Equal(t, transition.ToPutinCutscene, takeKind(t, d.Requests()))
	assert.Equal(t, 3, ctx.Journal.Len())

	d.Update(tick)
	assert.Equal(t, 0, d.Requests().Len())

	d.ProcessInput(space)
	d.Update(tick)
	d.ProcessInput(space)
	d.Update(tick)
	assert.Equal(t, transition.ToPlay, takeKind(t, d.Requests()))

	d.ProcessInput(space)
	d.Update(tick)
	assert.Equal(t, 0, d.Requests().Len())
}

func TestPutinCutsceneEndsOnTimeout(t *testing.T) {
	p := NewPutinCutsceneState(newTestContext(t))
	p.Update(2.9)
	assert.Equal(t, 0, p.Requests().Len())

	p.Update(0.2)
	p.Update(0.2)
	assert.Equal(t, 1, p.Requests().Len())
	assert.Equal(t, transition.ToDialogue, takeKind(t, p.Requests()))
}

func TestPutinCutsceneSkipsOnSpace(t *testing.T) {
	p := NewPutinCutsceneState(newTestContext(t))
	p.ProcessInput(press(input.KeySpace))
	assert.Equal(t, transition.ToDialogue, takeKind(t, p.Requests()))
}

func TestCutsceneWaitsForEnterRelease(t *testing.T) {
	c := NewCutsceneState(newTestContext(t), "missing_cutscene")
	assert.Equal(t, "In a world torn by conflict, a new era begins...", string(c.text))

	c.Update(tick)
	assert.Equal(t, config.CutsceneFadeStep, c.Alpha())
	assert.False(t, c.Complete())

	c.ProcessInput(press(input.KeyEnter))
	require.True(t, c.Complete())
	assert.Equal(t, 0, c.Requests().Len())

	c.ProcessInput(input.NewSnapshot().Release(input.KeyEnter))
	assert.Equal(t, transition.ToPlay, takeKind(t, c.Requests()))
	c.ProcessInput(input.NewSnapshot().Release(input.KeyEnter))
	assert.Equal(t, 0, c.Requests().Len())
}

func TestCutsceneRevealsOverTime(t *testing.T) {
	c := NewCutsceneState(newTestContext(t), "missing_cutscene")
	for i := 0; i < 60; i++ {
		c.Update(0.5)
	}
	assert.True(t, c.Complete())
	assert.Equal(t, 255, c.Alpha())
}

func TestGameOverKeepsBestScore(t *testing.T) {
	ctx := newTestContext(t)
	first := NewGameOverState(ctx, 700)
	first.Enter()
	assert.Equal(t, 700, first.HighScore())
	assert.True(t, first.record)

	second := NewGameOverState(ctx, 100)
	second.Enter()
	assert.Equal(t, 700, second.HighScore())
	assert.False(t, second.record)
	assert.Equal(t, 700, ctx.Scores.Load())

	second.ProcessInput(press(input.KeyR))
	assert.Equal(t, transition.ToPlay, takeKind(t, second.Requests()))
	second.ProcessInput(press(input.KeyM))
	assert.Equal(t, transition.ToMenu, takeKind(t, second.Requests()))
}

func TestUpgradeAppliesOnce(t *testing.T) {
	ctx := newTestContext(t)
	gs := NewGameState(ctx, nil)
	u := NewUpgradeState(gs, nil)

	u.ProcessInput(press(input.Key4))
	u.ProcessInput(press(input.Key4))
	assert.Equal(t, config.PlayerLives+1, gs.Game().Lives)
	assert.Equal(t, 1, u.Requests().Len())

	u2 := NewUpgradeState(gs, nil)
	u2.ProcessInput(press(input.Key1))
	assert.InDelta(t, config.PlayerSpeed+config.UpgradeSpeedStep, gs.Game().PlayerSpeed(), 1e-9)

	u3 := NewUpgradeState(gs, nil)
	u3.ProcessInput(press(input.KeyEnter))
	assert.Equal(t, 0, u3.Requests().Len())
}

func TestSettingsKeys(t *testing.T) {
	ctx := newTestContext(t)
	ctx.SettingsPath = filepath.Join(t.TempDir(), config.SettingsFile)
	s := NewSettingsState(ctx, nil)

	s.ProcessInput(press(input.Key1))
	assert.InDelta(t, 0.6, ctx.Settings.Volume, 1e-9)
	s.ProcessInput(press(input.Key3))
	assert.Equal(t, config.ControlsWASD, ctx.Settings.ControlScheme)
	s.ProcessInput(press(input.Key4))
	assert.Equal(t, config.ThemeDark, ctx.Settings.ArtTheme)
	s.ProcessInput(press(input.Key6))
	assert.Equal(t, 4, ctx.Settings.BossHealth)
	assert.Equal(t, 0, s.Requests().Len())

	s.ProcessInput(press(input.KeyS))
	assert.Equal(t, transition.ToPlay, takeKind(t, s.Requests()))

	loaded, err := config.LoadSettings(ctx.SettingsPath)
	require.NoError(t, err)
	assert.Equal(t, config.ControlsWASD, loaded.ControlScheme)
	assert.Equal(t, 4, loaded.BossHealth)
}

func TestSettingsResetsHighScore(t *testing.T) {
	ctx := newTestContext(t)
	require.NoError(t, ctx.Scores.Save(4200))
	s := NewSettingsState(ctx, nil)

	s.ProcessInput(press(input.KeyR))
	assert.Equal(t, 0, ctx.Scores.Load())
	assert.Equal(t, "High score reset.", s.message)
	assert.Equal(t, 0, s.Requests().Len())
}

func TestPauseMenuSaves(t *testing.T) {
	ctx := newTestContext(t)
	gs := NewGameState(ctx, nil)
	gs.Game().Score = 1234
	p := NewPauseState(ctx, gs, gs)

	p.ProcessInput(press(input.KeyDown))
	p.ProcessInput(press(input.KeyDown))
	p.ProcessInput(press(input.KeyEnter))
	assert.Equal(t, 0, p.Requests().Len())

	snap, err := ctx.Saves.Load(config.SaveFile)
	require.NoError(t, err)
	assert.Equal(t, 1234, snap.Score)

	p.ProcessInput(press(input.KeyDown))
	p.ProcessInput(press(input.KeyEnter))
	assert.Equal(t, transition.Quit, takeKind(t, p.Requests()))

	p.ProcessInput(press(input.KeyP))
	assert.Equal(t, transition.ToPlay, takeKind(t, p.Requests()))
}

func TestJournalScroll(t *testing.T) {
	ctx := newTestContext(t)
	j := NewJournalState("Quest Journal", nil, ctx.Quests.String)
	j.Enter()

	j.ProcessInput(press(input.KeyUp))
	assert.Equal(t, 0, j.Panel().Offset)
	j.ProcessInput(press(input.KeyDown))
	j.ProcessInput(press(input.KeyDown))
	assert.Equal(t, 2*config.JournalScrollStep, j.Panel().Offset)

	j.ProcessInput(press(input.KeyEscape))
	assert.Equal(t, transition.Back, takeKind(t, j.Requests()))
}

func TestSkillTreeUpgrade(t *testing.T) {
	ctx := newTestContext(t)
	s := NewSkillTreeState(ctx, nil)
	nodes := ctx.Hero.Tree.Nodes
	require.NotEmpty(t, nodes)

	s.ProcessInput(press(input.KeyUp))
	assert.Equal(t, len(nodes)-1, s.Selected())

	last := nodes[len(nodes)-1]
	before := ctx.Hero.Skills[last.Name]
	s.ProcessInput(press(input.KeyEnter))
	assert.Equal(t, before+1, ctx.Hero.Skills[last.Name])
	assert.Equal(t, 1, last.Level)
	assert.Equal(t, 0, ctx.Hero.SkillPoints)

	s.ProcessInput(press(input.KeyEnter))
	assert.Equal(t, before+1, ctx.Hero.Skills[last.Name])
	assert.Equal(t, "Not enough skill points.", s.message)

	s.ProcessInput(press(input.KeyEscape))
	assert.Equal(t, transition.Back, takeKind(t, s.Requests()))
}

func TestBranchingDialogueEscapeReportsNoChoice(t *testing.T) {
	ctx := newTestContext(t)
	var gotKey string
	gotOK := true
	b := NewBranchingDialogueState(ctx, ctx.Data.LoadBranching(config.QuestMaster, defs.QuestMasterDialogue()), nil, func(key string, ok bool) {
		gotKey, gotOK = key, ok
	})

	b.ProcessInput(press(input.KeyEscape))
	b.Update(tick)
	assert.Equal(t, "", gotKey)
	assert.False(t, gotOK)
	assert.Equal(t, 0, ctx.Journal.Len())
	assert.Equal(t, transition.Back, takeKind(t, b.Requests()))
}
