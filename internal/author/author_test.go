package author

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/advgame/internal/loader"
	"go.uber.org/zap"
)

const draft = "```yaml\n" + `name: Lighthouse
stats:
  - {id: 1, name: Oil, default_value: 2}
items: []
item_slots: []
stages:
  - index: 1
    name: Shore
    text: [The lamp is dark.]
    options:
      - target_stage: 2
        text: [Climb the stairs]
        effect: {set_stat_lower: {stat_id: 1, to_subtract: 1}}
  - index: 2
    name: Lamp room
    text: [You light the lamp.]
    options: []
entry_stage: 1
exit_stage: 2
` + "```"

func TestCleanYAML(t *testing.T) {
	assert.Equal(t, "a: 1\n", cleanYAML("```yaml\na: 1\n```"))
	assert.Equal(t, "a: 1\n", cleanYAML("  ```\na: 1```  "))
	assert.Equal(t, "a: 1\n", cleanYAML("a: 1"))
}

func TestValidateDraft(t *testing.T) {
	game, err := Validate([]byte(cleanYAML(draft)), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "Lighthouse", game.Name)
	assert.Equal(t, 1, game.Stages[0].Options[0].TargetStage)
}

func TestValidateRejectsBrokenDraft(t *testing.T) {
	raw := []byte(`
name: Broken
stats: []
items: []
item_slots: []
stages:
  - {index: 0, name: A, text: [x], options: [{target_stage: 9, text: [go]}]}
  - {index: 1, name: B, text: [y], options: []}
entry_stage: 0
exit_stage: 1
`)
	_, err := Validate(raw, nil)
	var ve *loader.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, loader.CodeUnknownStage, ve.Code)
}

func TestRenderPrompt(t *testing.T) {
	prompt, err := renderPrompt("")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Theme hint from the player: random")
	assert.Contains(t, prompt, "if_stat_higher { stat_id, higher_than }")
}
