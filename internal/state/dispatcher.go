// internal/state/dispatcher.go
package state

import (
	"image/color"
	"strings"

	"pixel-war/internal/config"
	"pixel-war/internal/debugserver"
	"pixel-war/internal/defs"
	"pixel-war/internal/hero"
	"pixel-war/internal/input"
	"pixel-war/internal/logging"
	"pixel-war/internal/quest"
	"pixel-war/internal/transition"
	"pixel-war/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Dispatcher применяет запросы активной сцены к стеку.
// За тик обрабатывается не больше одного запроса.
type Dispatcher struct {
	sm   *StateMachine
	ctx  *Context
	fade Fade
	log  zerolog.Logger
}

func NewDispatcher(sm *StateMachine, ctx *Context) *Dispatcher {
	return &Dispatcher{sm: sm, ctx: ctx, log: logging.For("dispatcher")}
}

// Fade — текущий эффект смены сессии.
func (d *Dispatcher) Fade() *Fade { return &d.fade }

// Tick — один кадр: запрос прошлого кадра, затем ввод и обновление активной сцены.
// Возвращает true, когда игра должна завершиться.
func (d *Dispatcher) Tick(in input.Reader, deltaTime float64) bool {
	if d.fade.Active() {
		d.fade.Update(deltaTime * 1000)
		return false
	}
	if d.Dispatch() {
		return true
	}
	if !d.fade.Active() {
		d.sm.ProcessInput(in)
		d.sm.Update(deltaTime)
	}
	d.publish()
	return false
}

// Draw рисует активную сцену и затемнение поверх неё.
func (d *Dispatcher) Draw(screen *ebiten.Image) {
	d.sm.Draw(screen)
	if a := d.fade.Alpha(); a > 0 {
		ui.DrawOverlay(screen, color.RGBA{A: uint8(255 * a)})
	}
}

// Dispatch забирает один запрос у активной сцены.
func (d *Dispatcher) Dispatch() bool {
	r, ok := d.sm.Current().Requests().Take()
	if !ok {
		return false
	}
	return d.Apply(r)
}

// Apply выполняет запрос. true — выход из игры.
func (d *Dispatcher) Apply(r transition.Request) bool {
	current := d.sm.Current()
	d.log.Debug().Str("request", r.Kind.String()).Str("from", nameOf(current)).Msg("transition")

	switch r.Kind {
	case transition.Quit:
		d.log.Info().Msg("quit requested")
		return true

	case transition.ToPlay:
		switch current.(type) {
		case *PauseState, *SettingsState, *UpgradeState, *GameOverState:
			d.sm.Pop()
			return false
		}
		d.sm.Replace(NewGameState(d.ctx, r.Snapshot))
		d.fade.Start(config.FadeDurationMs)

	case transition.ToPause:
		play := d.topPlay()
		if play == nil {
			d.log.Warn().Msg("pause requested without a play session")
			return false
		}
		d.sm.Push(NewPauseState(d.ctx, play, current))

	case transition.ToSettings:
		d.sm.Push(NewSettingsState(d.ctx, current))

	case transition.ToUpgrade:
		play := d.topPlay()
		if play == nil {
			d.log.Warn().Msg("upgrade requested without a play session")
			return false
		}
		d.sm.Push(NewUpgradeState(play, current))

	case transition.ToGameOver:
		d.sm.Push(NewGameOverState(d.ctx, r.Score))

	case transition.ToMenu:
		d.sm.Replace(NewMenuState(d.ctx))

	case transition.ToDialogue:
		if below, ok := d.sm.Below(); ok {
			if _, isDialogue := below.(*DialogueState); isDialogue {
				d.sm.Pop()
				return false
			}
		}
		d.sm.Push(NewDialogueState(d.ctx))

	case transition.ToPutinCutscene:
		d.sm.Push(NewPutinCutsceneState(d.ctx))

	case transition.ToCutscene:
		d.sm.Push(NewCutsceneState(d.ctx, config.IntroCutscene))

	case transition.Back:
		d.sm.Pop()

	case transition.ToInventory:
		d.sm.Push(NewJournalState("Inventory", current, func() string {
			return d.ctx.Hero.Summary() + "\n\n" + d.ctx.Hero.InventoryText()
		}))

	case transition.ToQuestJournal:
		d.sm.Push(NewJournalState("Quest Journal", current, d.ctx.Quests.String))

	case transition.ToDialogueJournal:
		d.sm.Push(NewJournalState("Dialogue Journal", current, d.ctx.Journal.String))

	case transition.ToSkillTree:
		d.sm.Push(NewSkillTreeState(d.ctx, current))

	case transition.ToQuestOffer:
		dlg := d.ctx.Data.LoadBranching(config.QuestMaster, defs.QuestMasterDialogue())
		d.sm.Push(NewBranchingDialogueState(d.ctx, dlg, current, d.offerQuest))

	case transition.ToElder:
		dlg := d.ctx.Data.LoadBranching(config.Elder, defs.ElderDialogue())
		dlg.Text += "\n" + hero.ClassGreeting(d.ctx.Hero.Class)
		d.sm.Push(NewBranchingDialogueState(d.ctx, dlg, current, func(key string, ok bool) {
			d.elderReply(dlg, key, ok)
		}))

	default:
		d.log.Warn().Str("request", r.Kind.String()).Msg("unhandled transition")
	}
	return false
}

// topPlay — ближайшая к вершине игровая сессия.
func (d *Dispatcher) topPlay() *GameState {
	s, ok := d.sm.Find(func(s State) bool {
		_, ok := s.(*GameState)
		return ok
	})
	if !ok {
		return nil
	}
	return s.(*GameState)
}

// offerQuest: ответ A — первый квест из данных, B — второй и т.д.
func (d *Dispatcher) offerQuest(key string, ok bool) {
	if !ok || len(key) != 1 {
		return
	}
	idx := strings.IndexByte("ABCDEFGHIJKLMNOPQRSTUVWXYZ", key[0])
	quests := d.ctx.Data.LoadQuests(config.QuestDataFile)
	if idx < 0 || idx >= len(quests) {
		d.log.Debug().Str("choice", key).Msg("quest offer declined")
		return
	}
	def := quests[idx]
	for _, id := range def.Prerequisites {
		if q, found := d.ctx.Quests.Get(id); !found || q.Status != quest.Completed {
			d.log.Info().Str("quest", def.ID).Str("requires", id).Msg("quest prerequisites not met")
			return
		}
	}
	d.ctx.Quests.Add(quest.FromDefinition(def))
}

// elderReply записывает ответ старейшины в журнал.
func (d *Dispatcher) elderReply(dlg defs.BranchingDialogue, key string, ok bool) {
	reply, found := dlg.Replies[key]
	d.log.Info().Str("choice", key).Bool("chosen", ok).Msg("elder answered")
	if !ok || !found || reply == "" {
		d.ctx.Journal.Append(defs.ElderSilence)
		return
	}
	d.ctx.Journal.Append("Elder: " + reply)
}

func (d *Dispatcher) publish() {
	if d.ctx.Debug == nil {
		return
	}
	snap := debugserver.Snapshot{Scene: nameOf(d.sm.Current()), StackDepth: d.sm.Len()}
	if play := d.topPlay(); play != nil {
		play.fillDebug(&snap)
	}
	d.ctx.Debug.Publish(snap)
}
