package story

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyJSON = `{
  "name": "Tiny",
  "stats": [{"id": 3, "name": "Luck", "default_value": 1}],
  "items": [],
  "item_slots": [],
  "stages": [
    {"index": 0, "name": "Start", "text": ["Hello."],
     "options": [{"target_stage": 1, "text": ["Leave"]}]},
    {"index": 1, "name": "End", "text": ["Bye."], "options": []}
  ],
  "entry_stage": 0,
  "exit_stage": 1
}`

func TestEncodingFor(t *testing.T) {
	enc, err := EncodingFor("a/b/story.JSON")
	require.NoError(t, err)
	assert.Equal(t, JSON, enc)

	enc, err = EncodingFor("story.yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, enc)

	_, err = EncodingFor("story.agf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeJSON(t *testing.T) {
	game, err := Decode(strings.NewReader(tinyJSON), JSON)
	require.NoError(t, err)

	assert.Equal(t, "Tiny", game.Name)
	assert.Equal(t, 1, game.Stats[0].Value)
	require.Len(t, game.Stages, 2)
	assert.Equal(t, []string{"Leave"}, game.Stages[0].Options[0].Text)
}

func TestDecodeJSONErrorPosition(t *testing.T) {
	_, err := Decode(strings.NewReader("{\n  \"name\": \"x\",\n  \"stats\": oops\n}"), JSON)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Line)
	assert.Greater(t, de.Column, 1)
	assert.Contains(t, err.Error(), "line 3:")
}

func TestDecodeYAMLError(t *testing.T) {
	_, err := Decode(strings.NewReader("name: [unterminated\n"), YAML)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Contains(t, err.Error(), "line")
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	require.NoError(t, os.WriteFile(path, []byte(tinyJSON), 0o644))

	game, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Tiny", game.Name)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"name": 12}`), 0o644))
	_, err = ReadFile(bad)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, bad, de.Path)

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
