// Package loader turns a story as written by its author into a game the
// engine can run: author ids become slice positions, every reference is
// checked, and the player is put on the entry stage.
package loader

import (
	"slices"
	"strings"

	"github.com/tatianab/advgame/internal/engine"
	"github.com/tatianab/advgame/internal/models"
	"github.com/tatianab/advgame/internal/story"
	"go.uber.org/zap"
)

// Load reads and validates the story file at path.
func Load(path string, log *zap.Logger) (*models.GameState, error) {
	game, err := story.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return PostProcess(game, log)
}

// PostProcess validates an author-form game and returns its runtime form.
// It stops at the first problem and returns a *ValidationError; the input
// is left untouched either way.
func PostProcess(game *models.GameState, log *zap.Logger) (*models.GameState, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := checkDeadEnds(game); err != nil {
		return nil, err
	}

	out := clone(game)
	if err := remapStats(out); err != nil {
		return nil, err
	}
	if err := remapItems(out); err != nil {
		return nil, err
	}
	if err := remapStages(out); err != nil {
		return nil, err
	}

	engine.New(out, log).EnterStage(out.EntryStage)
	log.Info("story loaded",
		zap.String("name", out.Name),
		zap.Int("stages", len(out.Stages)),
		zap.Int("stats", len(out.Stats)),
		zap.Int("items", len(out.Items)))
	return out, nil
}

func checkDeadEnds(game *models.GameState) error {
	found := false
	for _, s := range game.Stages {
		if !s.IsTerminal() {
			continue
		}
		if s.Index != game.ExitStage {
			return fail(CodeDeadEnd, "stage %d (%q) has no options and is not the exit stage", s.Index, s.Name)
		}
		found = true
	}
	if !found {
		return fail(CodeNoExitStage, "no exit stage found")
	}
	return nil
}

// positions maps author ids to slice positions.
func positions[T any](what string, xs []T, id func(T) int) (map[int]int, error) {
	m := make(map[int]int, len(xs))
	for i, x := range xs {
		if _, dup := m[id(x)]; dup {
			return nil, fail(CodeDuplicateID, "%s id %d is used more than once", what, id(x))
		}
		m[id(x)] = i
	}
	return m, nil
}

func remapStats(game *models.GameState) error {
	ids, err := positions("stat", game.Stats, func(s models.Stat) int { return s.ID })
	if err != nil {
		return err
	}
	for si := range game.Stages {
		stage := &game.Stages[si]
		for oi := range stage.Options {
			opt := &stage.Options[oi]
			if opt.Condition.RefersToStat() {
				pos, ok := ids[opt.Condition.StatID]
				if !ok {
					return fail(CodeUnknownStat, "invalid stat id %d in stage %d (%q)", opt.Condition.StatID, stage.Index, stage.Name)
				}
				opt.Condition.StatID = pos
			}
			if opt.Effect.RefersToStat() {
				pos, ok := ids[opt.Effect.StatID]
				if !ok {
					return fail(CodeUnknownStat, "invalid stat id %d in stage %d (%q)", opt.Effect.StatID, stage.Index, stage.Name)
				}
				opt.Effect.StatID = pos
			}
		}
	}
	for ii := range game.Items {
		item := &game.Items[ii]
		eff := &item.Effect.Effect
		if item.Effect.Kind == models.ItemNoEffect || !eff.RefersToStat() {
			continue
		}
		pos, ok := ids[eff.StatID]
		if !ok {
			return fail(CodeUnknownStat, "invalid stat id %d in item %d (%q)", eff.StatID, item.ID, item.Name)
		}
		eff.StatID = pos
	}
	return nil
}

func remapStages(game *models.GameState) error {
	ids, err := positions("stage", game.Stages, func(s models.Stage) int { return s.Index })
	if err != nil {
		return err
	}
	for si := range game.Stages {
		stage := &game.Stages[si]
		for oi := range stage.Options {
			opt := &stage.Options[oi]
			if isBlank(opt.Text) {
				return fail(CodeEmptyOptionText, "option %d in stage %d (%q) has no text", oi+1, stage.Index, stage.Name)
			}
			pos, ok := ids[opt.TargetStage]
			if !ok {
				return fail(CodeUnknownStage, "option %d in stage %d (%q) leads to unknown stage %d", oi+1, stage.Index, stage.Name, opt.TargetStage)
			}
			opt.TargetStage = pos
		}
	}
	for si := range game.Stages {
		game.Stages[si].Index = si
	}

	entry, ok := ids[game.EntryStage]
	if !ok {
		return fail(CodeUnknownStage, "entry stage %d does not exist", game.EntryStage)
	}
	exit, ok := ids[game.ExitStage]
	if !ok {
		return fail(CodeUnknownStage, "exit stage %d does not exist", game.ExitStage)
	}
	game.EntryStage, game.ExitStage = entry, exit
	return nil
}

func remapItems(game *models.GameState) error {
	ids, err := positions("item", game.Items, func(it models.Item) int { return it.ID })
	if err != nil {
		return err
	}
	for si := range game.Stages {
		stage := &game.Stages[si]
		for oi := range stage.Options {
			eff := &stage.Options[oi].Effect
			if eff.Kind != models.EffUseItem {
				continue
			}
			pos, ok := ids[eff.ItemID]
			if !ok {
				return fail(CodeUnknownItem, "invalid item id %d in stage %d (%q)", eff.ItemID, stage.Index, stage.Name)
			}
			eff.ItemID = pos
		}
	}
	for ii := range game.Items {
		item := &game.Items[ii]
		eff := &item.Effect.Effect
		if item.Effect.Kind == models.ItemNoEffect || eff.Kind != models.EffUseItem {
			continue
		}
		pos, ok := ids[eff.ItemID]
		if !ok {
			return fail(CodeUnknownItem, "invalid item id %d in item %d (%q)", eff.ItemID, item.ID, item.Name)
		}
		eff.ItemID = pos
	}
	return nil
}

func isBlank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

// clone copies everything PostProcess rewrites.
func clone(game *models.GameState) *models.GameState {
	out := *game
	out.Stats = slices.Clone(game.Stats)
	out.Items = slices.Clone(game.Items)
	out.ItemSlots = slices.Clone(game.ItemSlots)
	out.Stages = make([]models.Stage, len(game.Stages))
	for i, s := range game.Stages {
		s.Options = slices.Clone(s.Options)
		out.Stages[i] = s
	}
	return &out
}
