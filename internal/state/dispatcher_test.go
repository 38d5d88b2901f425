package state

import (
	"os"
	"path/filepath"
	"testing"

	"pixel-war/internal/component"
	"pixel-war/internal/config"
	"pixel-war/internal/debugserver"
	"pixel-war/internal/defs"
	"pixel-war/internal/hero"
	"pixel-war/internal/input"
	"pixel-war/internal/save"
	"pixel-war/internal/transition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlay(t *testing.T, ctx *Context) (*StateMachine, *Dispatcher, *GameState) {
	t.Helper()
	gs := NewGameState(ctx, nil)
	sm := NewStateMachine(gs)
	return sm, NewDispatcher(sm, ctx), gs
}

func TestMenuStartsPlayBehindFade(t *testing.T) {
	ctx := newTestContext(t)
	sm := NewStateMachine(NewMenuState(ctx))
	d := NewDispatcher(sm, ctx)

	assert.False(t, d.Tick(press(input.KeyEnter), tick))
	_, isMenu := sm.Current().(*MenuState)
	require.True(t, isMenu, "request is applied on the next tick")

	assert.False(t, d.Tick(input.Empty, tick))
	gs, ok := sm.Current().(*GameState)
	require.True(t, ok)
	assert.Equal(t, 1, sm.Len())
	require.True(t, d.Fade().Active())

	for i := 0; i < 10; i++ {
		d.Tick(input.Empty, tick)
	}
	assert.Equal(t, 0, gs.Game().Ticks, "play is frozen while fading")

	for i := 0; i < 100 && d.Fade().Active(); i++ {
		d.Tick(input.Empty, tick)
	}
	require.False(t, d.Fade().Active())
	d.Tick(input.Empty, tick)
	assert.Equal(t, 1, gs.Game().Ticks)
}

func TestQuitTerminates(t *testing.T) {
	ctx := newTestContext(t)
	sm := NewStateMachine(NewMenuState(ctx))
	d := NewDispatcher(sm, ctx)

	assert.False(t, d.Tick(press(input.KeyQ), tick))
	assert.True(t, d.Tick(input.Empty, tick))
}

func TestPauseAndResumeKeepSession(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, gs := newPlay(t, ctx)

	d.Tick(press(input.KeyP), tick)
	d.Tick(input.Empty, tick)
	_, paused := sm.Current().(*PauseState)
	require.True(t, paused)
	assert.Equal(t, 2, sm.Len())

	ticks := gs.Game().Ticks
	d.Tick(input.Empty, tick)
	assert.Equal(t, ticks, gs.Game().Ticks, "covered play does not update")

	d.Tick(press(input.KeyEscape), tick)
	d.Tick(input.Empty, tick)
	assert.Same(t, gs, sm.Current())
	assert.Equal(t, ticks+1, gs.Game().Ticks)
}

func TestPauseAndUpgradeNeedPlay(t *testing.T) {
	ctx := newTestContext(t)
	sm := NewStateMachine(NewMenuState(ctx))
	d := NewDispatcher(sm, ctx)

	d.Apply(transition.Request{Kind: transition.ToPause})
	d.Apply(transition.Request{Kind: transition.ToUpgrade})
	assert.Equal(t, 1, sm.Len())

	d.Apply(transition.Request{Kind: transition.ToSettings})
	require.Equal(t, 2, sm.Len())
	_, ok := sm.Current().(*SettingsState)
	require.True(t, ok)

	d.Apply(transition.Request{Kind: transition.ToPlay})
	_, ok = sm.Current().(*MenuState)
	assert.True(t, ok)
}

func TestLevelUpWaitsWhilePaused(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, gs := newPlay(t, ctx)

	gs.Game().Requests().Request(transition.ToPause)
	gs.Game().Requests().Request(transition.ToUpgrade)

	d.Dispatch()
	_, paused := sm.Current().(*PauseState)
	require.True(t, paused)

	d.Apply(transition.Request{Kind: transition.ToPlay})
	require.Same(t, gs, sm.Current())

	d.Dispatch()
	_, upgrading := sm.Current().(*UpgradeState)
	assert.True(t, upgrading)
}

func TestGameOverThenRestart(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, gs := newPlay(t, ctx)
	g := gs.Game()

	g.Lives = 1
	enemy := g.ECS.Group(component.GroupEnemies)[0]
	x, y := g.PlayerPosition()
	g.ECS.Positions[enemy].X, g.ECS.Positions[enemy].Y = x, y
	d.Tick(input.Empty, tick)
	require.True(t, g.Over())

	d.Tick(input.Empty, tick)
	over, ok := sm.Current().(*GameOverState)
	require.True(t, ok)
	assert.Equal(t, g.Score, over.score)
	assert.Equal(t, g.Score, ctx.Scores.Load())

	d.Tick(press(input.KeyR), tick)
	d.Tick(input.Empty, tick)
	require.Same(t, gs, sm.Current())
	assert.NotSame(t, g, gs.Game())
	assert.False(t, gs.Game().Over())
	assert.Equal(t, config.PlayerLives, gs.Game().Lives)
}

func TestLevelUpOnFinalTickStillEndsGame(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, gs := newPlay(t, ctx)
	g := gs.Game()

	g.Score = 999
	g.Lives = 1
	enemy := g.ECS.Group(component.GroupEnemies)[0]
	x, y := g.PlayerPosition()
	g.ECS.Positions[enemy].X, g.ECS.Positions[enemy].Y = x, y
	d.Tick(input.Empty, tick)
	require.True(t, g.Over())
	require.Equal(t, 2, g.Level)

	d.Tick(input.Empty, tick)
	over, ok := sm.Current().(*GameOverState)
	require.True(t, ok)
	assert.Equal(t, g.Score, over.score)
	assert.Equal(t, g.Score, ctx.Scores.Load())
	assert.Same(t, g, gs.Game())
}

func TestResumeKeepsFinishedSessionUntilGameOverShown(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, gs := newPlay(t, ctx)
	g := gs.Game()

	g.Lives = 1
	enemy := g.ECS.Group(component.GroupEnemies)[0]
	x, y := g.PlayerPosition()
	g.ECS.Positions[enemy].X, g.ECS.Positions[enemy].Y = x, y
	d.Tick(input.Empty, tick)
	require.True(t, g.Over())

	// оверлей, открытый до того, как ToGameOver забран
	d.Apply(transition.Request{Kind: transition.ToSettings})
	d.Apply(transition.Request{Kind: transition.Back})
	require.Same(t, gs, sm.Current())
	assert.Same(t, g, gs.Game())

	d.Tick(input.Empty, tick)
	_, ok := sm.Current().(*GameOverState)
	assert.True(t, ok)
}

func TestGameOverToMenu(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, _ := newPlay(t, ctx)

	d.Apply(transition.Request{Kind: transition.ToGameOver, Score: 10})
	d.Tick(press(input.KeyM), tick)
	d.Tick(input.Empty, tick)

	_, ok := sm.Current().(*MenuState)
	assert.True(t, ok)
	assert.Equal(t, 1, sm.Len())
}

func TestCutsceneInterruptsDialogue(t *testing.T) {
	ctx := newTestContext(t)
	sm := NewStateMachine(NewMenuState(ctx))
	d := NewDispatcher(sm, ctx)

	d.Apply(transition.Request{Kind: transition.ToDialogue})
	dlg, ok := sm.Current().(*DialogueState)
	require.True(t, ok)

	d.Apply(transition.Request{Kind: transition.ToPutinCutscene})
	_, ok = sm.Current().(*PutinCutsceneState)
	require.True(t, ok)

	d.Apply(transition.Request{Kind: transition.ToDialogue})
	assert.Same(t, dlg, sm.Current())
	assert.Equal(t, 2, sm.Len())
}

func TestJournalsOpenAndClose(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, gs := newPlay(t, ctx)

	cases := map[transition.Kind]string{
		transition.ToQuestJournal:    "No active quests.",
		transition.ToDialogueJournal: "No dialogue recorded.",
	}
	for kind, text := range cases {
		d.Apply(transition.Request{Kind: kind})
		j, ok := sm.Current().(*JournalState)
		require.True(t, ok, kind.String())
		assert.Equal(t, text, j.Panel().Text)

		d.Apply(transition.Request{Kind: transition.Back})
		assert.Same(t, gs, sm.Current())
	}

	d.Apply(transition.Request{Kind: transition.ToInventory})
	j := sm.Current().(*JournalState)
	assert.Contains(t, j.Panel().Text, "Inventory is empty.")
}

func TestQuestOfferAddsChosenQuest(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, gs := newPlay(t, ctx)

	d.Apply(transition.Request{Kind: transition.ToQuestOffer})
	offer, ok := sm.Current().(*BranchingDialogueState)
	require.True(t, ok)

	offer.ProcessInput(press(input.KeyEnter))
	offer.Update(tick)
	offer.ProcessInput(press(input.KeyDown))
	offer.ProcessInput(press(input.KeyEnter))
	offer.Update(tick)

	q, found := ctx.Quests.Get("hunt_warlord")
	require.True(t, found)
	assert.Equal(t, "Bring down the warlord's flagship.", q.Description)
	assert.Equal(t, 1, ctx.Journal.Len())

	d.Dispatch()
	assert.Same(t, gs, sm.Current())
}

func TestQuestOfferDecline(t *testing.T) {
	ctx := newTestContext(t)
	_, d, _ := newPlay(t, ctx)

	d.offerQuest("C", true)
	d.offerQuest("A", false)
	assert.Empty(t, ctx.Quests.Quests())
}

func TestQuestPrerequisites(t *testing.T) {
	ctx := newTestContext(t)
	data := `{"quests":[
		{"id":"first","description":"First","objectives":[{"description":"x","goal":1}]},
		{"id":"second","description":"Second","objectives":[{"description":"y","goal":1}],"prerequisites":["first"]}
	]}`
	require.NoError(t, os.WriteFile(filepath.Join(ctx.Settings.DataDir, config.QuestDataFile+".json"), []byte(data), 0o644))
	_, d, _ := newPlay(t, ctx)

	d.offerQuest("B", true)
	_, found := ctx.Quests.Get("second")
	assert.False(t, found)

	d.offerQuest("A", true)
	ctx.Quests.Complete("first")
	d.offerQuest("B", true)
	_, found = ctx.Quests.Get("second")
	assert.True(t, found)
}

func TestLoadGameFromMenu(t *testing.T) {
	ctx := newTestContext(t)
	menu := NewMenuState(ctx)
	sm := NewStateMachine(menu)
	d := NewDispatcher(sm, ctx)

	menu.ProcessInput(press(input.KeyL))
	assert.Equal(t, 0, menu.Requests().Len(), "missing save keeps the menu")

	require.NoError(t, ctx.Saves.Save(save.Snapshot{Score: 2500, Lives: 2}, config.SaveFile))
	menu.ProcessInput(press(input.KeyL))
	d.Dispatch()

	gs, ok := sm.Current().(*GameState)
	require.True(t, ok)
	assert.Equal(t, 2500, gs.Game().Score)
	assert.Equal(t, 3, gs.Game().Level)
	assert.Equal(t, 2, gs.Game().Lives)
}

func TestDebugSnapshotPublished(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Debug = debugserver.NewPublisher()
	_, d, gs := newPlay(t, ctx)

	d.Tick(input.Empty, tick)
	snap := ctx.Debug.Latest()
	assert.Equal(t, "Game", snap.Scene)
	assert.Equal(t, 1, snap.StackDepth)
	assert.Equal(t, gs.Game().Ticks, snap.Tick)
	assert.Equal(t, gs.Game().Score, snap.Score)
}

func TestElderGreetsByClass(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Hero = hero.NewProfile("Mage")
	sm, d, gs := newPlay(t, ctx)

	d.Tick(press(input.KeyE), tick)
	d.Tick(input.Empty, tick)
	elder, ok := sm.Current().(*BranchingDialogueState)
	require.True(t, ok)
	assert.Contains(t, elder.Box().Dialogue.Text, hero.ClassGreeting("Mage"))

	elder.ProcessInput(press(input.KeyEnter))
	elder.Update(tick)
	elder.ProcessInput(press(input.KeyEnter))
	elder.Update(tick)

	entries := ctx.Journal.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Elder: Wisdom is the light that guides your journey!", entries[1])

	d.Dispatch()
	assert.Same(t, gs, sm.Current())
}

func TestElderSilentWithoutChoice(t *testing.T) {
	ctx := newTestContext(t)
	sm, d, _ := newPlay(t, ctx)

	d.Apply(transition.Request{Kind: transition.ToElder})
	elder := sm.Current().(*BranchingDialogueState)
	elder.ProcessInput(press(input.KeyEscape))
	elder.Update(tick)

	assert.Equal(t, []string{defs.ElderSilence}, ctx.Journal.Entries())
}
