// Package engine advances a loaded story one player action at a time.
package engine

import (
	"iter"
	"slices"

	"github.com/tatianab/advgame/internal/models"
	"go.uber.org/zap"
)

// Engine owns a loaded GameState and is the only thing that mutates it.
// It never blocks and never fails: input that makes no sense for the
// current stage is logged and dropped.
type Engine struct {
	game *models.GameState
	log  *zap.Logger
}

// New takes ownership of game, which must have been through
// loader.PostProcess.
func New(game *models.GameState, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{game: game, log: log}
}

func (e *Engine) Name() string { return e.game.Name }

func (e *Engine) IsFinished() bool { return e.game.Finished }

// CurrentStage returns a copy of the stage the player is on.
func (e *Engine) CurrentStage() models.Stage {
	return *e.current()
}

// Stats returns a copy of the stat values.
func (e *Engine) Stats() []models.Stat {
	return slices.Clone(e.game.Stats)
}

func (e *Engine) current() *models.Stage {
	return &e.game.Stages[e.game.CurrentStage]
}

// IsFilled reports whether the option's condition holds for the current stats.
func (e *Engine) IsFilled(opt models.Option) bool {
	c := opt.Condition
	switch c.Kind {
	case models.CondAlways:
		return true
	case models.CondIfStatHigher:
		return e.game.Stats[c.StatID].Value > c.Value
	case models.CondIfStatLower:
		return e.game.Stats[c.StatID].Value < c.Value
	case models.CondIfStatExact:
		return e.game.Stats[c.StatID].Value == c.Value
	}
	return false
}

// VisibleOptions yields the options of stage whose condition holds, in
// order, each with its 1-based position in stage.Options.
func (e *Engine) VisibleOptions(stage models.Stage) iter.Seq2[int, models.Option] {
	return func(yield func(int, models.Option) bool) {
		for i, opt := range stage.Options {
			if !e.IsFilled(opt) {
				continue
			}
			if !yield(i+1, opt) {
				return
			}
		}
	}
}

func (e *Engine) hasVisible(stage *models.Stage) bool {
	for range e.VisibleOptions(*stage) {
		return true
	}
	return false
}

// nthVisible returns the 1-based raw position of the n-th visible option.
func (e *Engine) nthVisible(stage *models.Stage, n int) (int, bool) {
	seen := 0
	for pos := range e.VisibleOptions(*stage) {
		seen++
		if seen == n {
			return pos, true
		}
	}
	return 0, false
}

// HandleAction applies one player action.
func (e *Engine) HandleAction(a Action) {
	if e.game.Finished {
		e.log.Debug("ignoring action after finish", zap.Stringer("action", a))
		return
	}
	switch a.Kind {
	case ActionUp, ActionDown:
		e.move(a.Kind)
	case ActionConfirm:
		e.confirm()
	case ActionNumber:
		e.selectNumber(a.N)
	case ActionQuit, ActionCancel, ActionUnimplemented:
		e.log.Debug("ignoring action", zap.Stringer("action", a))
	}
}

// EnterStage makes i the current stage and puts the cursor on its first
// visible option, or 0 when there is none.
func (e *Engine) EnterStage(i int) {
	e.game.CurrentStage = i
	stage := e.current()
	stage.CurrentOption = 0
	e.move(ActionDown)
	e.log.Debug("entered stage",
		zap.Int("stage", i),
		zap.String("name", stage.Name),
		zap.Int("option", stage.CurrentOption))
}

// move walks the cursor over the raw option list, wrapping at both ends,
// until it lands on a visible option.
func (e *Engine) move(dir ActionKind) {
	stage := e.current()
	if !e.hasVisible(stage) {
		e.log.Debug("cannot change option due to lack of options", zap.Int("stage", e.game.CurrentStage))
		return
	}
	old := stage.CurrentOption
	n := len(stage.Options)
	for {
		if dir == ActionUp {
			stage.CurrentOption--
			if stage.CurrentOption <= 0 {
				stage.CurrentOption = n
			}
		} else {
			stage.CurrentOption++
			if stage.CurrentOption > n {
				stage.CurrentOption = 1
			}
		}
		if e.IsFilled(stage.Options[stage.CurrentOption-1]) {
			break
		}
	}
	e.log.Debug("moving arrow", zap.Int("from", old), zap.Int("to", stage.CurrentOption))
}

func (e *Engine) confirm() {
	stage := e.current()
	if stage.IsTerminal() {
		e.game.Finished = true
		e.log.Debug("reached exit stage", zap.Int("stage", e.game.CurrentStage))
		return
	}
	opt, ok := stage.SelectedOption()
	if !ok {
		e.log.Debug("no option under cursor", zap.Int("option", stage.CurrentOption))
		return
	}
	e.choose(opt)
}

func (e *Engine) selectNumber(n int) {
	stage := e.current()
	if !stage.HasOption(n) {
		e.log.Debug("no such option", zap.Int("number", n))
		return
	}
	pos, ok := e.nthVisible(stage, n)
	if !ok {
		e.log.Debug("no such visible option", zap.Int("number", n))
		return
	}
	opt, _ := stage.Option(pos)
	e.choose(opt)
}

// choose applies the option's effect, then moves to its target, so the
// target's conditions see the new stat values.
func (e *Engine) choose(opt models.Option) {
	e.apply(opt.Effect)
	e.EnterStage(opt.TargetStage)
}

func (e *Engine) apply(eff models.Effect) {
	switch eff.Kind {
	case models.EffNoEffect:
	case models.EffUseItem:
		// Items have no runtime behavior yet.
		e.log.Debug("use_item has no effect", zap.Int("item", eff.ItemID))
	case models.EffSetStatExact:
		e.game.Stats[eff.StatID].Value = eff.Amount
	case models.EffSetStatHigher:
		e.game.Stats[eff.StatID].Value += eff.Amount
	case models.EffSetStatLower:
		e.game.Stats[eff.StatID].Value -= eff.Amount
	}
}
