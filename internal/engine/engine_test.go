package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/advgame/internal/engine"
	"github.com/tatianab/advgame/internal/loader"
	"github.com/tatianab/advgame/internal/models"
	"go.uber.org/zap"
)

func line(target int, text string, cond models.Condition, eff models.Effect) models.Option {
	return models.Option{TargetStage: target, Text: []string{text}, Condition: cond, Effect: eff}
}

// heist: stage 0 offers A (always, +12 gold, to 3) and B (gold > 10, to 2);
// stage 3 has an option only visible with gold > 10.
func heist() *models.GameState {
	return &models.GameState{
		Name:  "Heist",
		Stats: []models.Stat{{ID: 0, Name: "Gold", Value: 0}},
		Stages: []models.Stage{
			{Index: 0, Name: "Street", Options: []models.Option{
				line(1, "A", models.Always(), models.NoEffect()),
				line(2, "B", models.IfStatHigher(0, 10), models.NoEffect()),
				line(3, "C", models.Always(), models.SetStatHigher(0, 12)),
			}},
			{Index: 1, Name: "Alley", Options: []models.Option{
				line(0, "Back", models.Always(), models.NoEffect()),
			}},
			{Index: 2, Name: "Vault", Options: []models.Option{
				line(4, "Leave", models.Always(), models.NoEffect()),
			}},
			{Index: 3, Name: "Bank", Options: []models.Option{
				line(0, "Poor exit", models.IfStatLower(0, 5), models.NoEffect()),
				line(2, "Bribe", models.IfStatHigher(0, 10), models.SetStatLower(0, 10)),
				line(4, "Walk out", models.Always(), models.SetStatExact(0, 100)),
			}},
			{Index: 4, Name: "Outside"},
		},
		EntryStage: 0,
		ExitStage:  4,
	}
}

func load(t *testing.T, g *models.GameState) *engine.Engine {
	t.Helper()
	game, err := loader.PostProcess(g, zap.NewNop())
	require.NoError(t, err)
	return engine.New(game, zap.NewNop())
}

func visible(e *engine.Engine) []string {
	var out []string
	for _, opt := range e.VisibleOptions(e.CurrentStage()) {
		out = append(out, opt.Text[0])
	}
	return out
}

func gold(e *engine.Engine) int { return e.Stats()[0].Value }

func TestNumberResolvesVisibleOption(t *testing.T) {
	e := load(t, heist())
	require.Equal(t, []string{"A", "C"}, visible(e))

	e.HandleAction(engine.Number(2))
	// B is hidden, so the second visible option is C.
	assert.Equal(t, 3, e.CurrentStage().Index)
	assert.Equal(t, 12, gold(e))
}

func TestNumberOneSkipsHiddenOption(t *testing.T) {
	g := heist()
	g.Stages[0].Options[0], g.Stages[0].Options[1] = g.Stages[0].Options[1], g.Stages[0].Options[0]
	e := load(t, g)

	e.HandleAction(engine.Number(1))
	assert.Equal(t, 1, e.CurrentStage().Index)
}

func TestNumberOutOfRangeIsIgnored(t *testing.T) {
	e := load(t, heist())

	e.HandleAction(engine.Number(3)) // within raw bounds, only two visible
	e.HandleAction(engine.Number(4))
	e.HandleAction(engine.Number(0))
	assert.Equal(t, 0, e.CurrentStage().Index)
	assert.Equal(t, 1, e.CurrentStage().CurrentOption)
}

func TestEffectAppliesBeforeTransition(t *testing.T) {
	e := load(t, heist())

	e.HandleAction(engine.Down) // A -> C, B is skipped
	require.Equal(t, 3, e.CurrentStage().CurrentOption)
	e.HandleAction(engine.Confirm)

	stage := e.CurrentStage()
	assert.Equal(t, 3, stage.Index)
	assert.Equal(t, []string{"Bribe", "Walk out"}, visible(e))
	assert.Equal(t, 2, stage.CurrentOption)
}

func TestNavigationWraps(t *testing.T) {
	e := load(t, heist())
	assert.Equal(t, 1, e.CurrentStage().CurrentOption)

	e.HandleAction(engine.Up)
	assert.Equal(t, 3, e.CurrentStage().CurrentOption)
	e.HandleAction(engine.Down)
	assert.Equal(t, 1, e.CurrentStage().CurrentOption)
	e.HandleAction(engine.Down)
	e.HandleAction(engine.Down)
	assert.Equal(t, 1, e.CurrentStage().CurrentOption)
}

func TestCursorAlwaysOnVisibleOption(t *testing.T) {
	e := load(t, heist())
	actions := []engine.Action{
		engine.Down, engine.Up, engine.Number(2), engine.Down, engine.Up, engine.Up,
		engine.Confirm, engine.Down, engine.Number(1), engine.Confirm,
	}
	for _, a := range actions {
		e.HandleAction(a)
		stage := e.CurrentStage()
		if stage.CurrentOption == 0 {
			for range e.VisibleOptions(stage) {
				t.Fatalf("after %v: cursor is 0 but stage %d has visible options", a, stage.Index)
			}
			continue
		}
		opt, ok := stage.SelectedOption()
		require.True(t, ok, "after %v", a)
		assert.True(t, e.IsFilled(opt), "after %v", a)
	}
}

func TestNoVisibleOptions(t *testing.T) {
	g := heist()
	g.Stages[1].Options[0].Condition = models.IfStatExact(0, 7)
	e := load(t, g)

	e.HandleAction(engine.Number(1))
	require.Equal(t, 1, e.CurrentStage().Index)
	assert.Equal(t, 0, e.CurrentStage().CurrentOption)

	e.HandleAction(engine.Down)
	e.HandleAction(engine.Up)
	e.HandleAction(engine.Confirm)
	e.HandleAction(engine.Number(1))
	assert.Equal(t, 1, e.CurrentStage().Index)
	assert.Equal(t, 0, e.CurrentStage().CurrentOption)
	assert.False(t, e.IsFinished())
}

func TestConfirmOnExitFinishes(t *testing.T) {
	e := load(t, heist())

	e.HandleAction(engine.Number(2))
	e.HandleAction(engine.Confirm) // Bribe: -10 gold, to the vault
	assert.Equal(t, 2, e.CurrentStage().Index)
	assert.Equal(t, 2, gold(e))

	e.HandleAction(engine.Confirm)
	require.Equal(t, 4, e.CurrentStage().Index)
	assert.False(t, e.IsFinished())

	e.HandleAction(engine.Confirm)
	assert.True(t, e.IsFinished())
	assert.Equal(t, 4, e.CurrentStage().Index)
}

func TestSetStatExact(t *testing.T) {
	e := load(t, heist())

	e.HandleAction(engine.Number(2))
	e.HandleAction(engine.Number(2)) // Walk out
	assert.Equal(t, 100, gold(e))
	assert.Equal(t, 4, e.CurrentStage().Index)
}

func TestIgnoredActions(t *testing.T) {
	e := load(t, heist())
	before := e.CurrentStage()

	e.HandleAction(engine.Quit)
	e.HandleAction(engine.Cancel)
	e.HandleAction(engine.Unimplemented)
	assert.Equal(t, before, e.CurrentStage())
	assert.False(t, e.IsFinished())
}

func TestUseItemChangesNothing(t *testing.T) {
	g := heist()
	g.Items = []models.Item{{ID: 0, Name: "Lockpick"}}
	g.Stages[0].Options[0].Effect = models.UseItem(0)
	e := load(t, g)

	e.HandleAction(engine.Confirm)
	assert.Equal(t, 1, e.CurrentStage().Index)
	assert.Equal(t, 0, gold(e))
}

func TestReadAccessorsReturnCopies(t *testing.T) {
	e := load(t, heist())
	assert.Equal(t, "Heist", e.Name())

	stats := e.Stats()
	stats[0].Value = 99
	assert.Equal(t, 0, gold(e))

	stage := e.CurrentStage()
	stage.CurrentOption = 3
	assert.Equal(t, 1, e.CurrentStage().CurrentOption)
}

func TestVisibleOptionsPositions(t *testing.T) {
	e := load(t, heist())

	var positions []int
	for pos := range e.VisibleOptions(e.CurrentStage()) {
		positions = append(positions, pos)
	}
	assert.Equal(t, []int{1, 3}, positions)

	for pos := range e.VisibleOptions(e.CurrentStage()) {
		assert.Equal(t, 1, pos)
		break
	}
}
