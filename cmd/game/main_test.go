package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runGame(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"game"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	code, _, stderr := runGame()
	assert.Equal(t, 1, code)
	assert.Equal(t, "Usage: game filename\n", stderr)

	code, _, _ = runGame("a.json", "b.json")
	assert.Equal(t, 1, code)
}

func TestHelpAndFormat(t *testing.T) {
	code, stdout, _ := runGame("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "game --format")

	code, stdout, _ = runGame("--format")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "record Stage {")
	assert.False(t, strings.HasSuffix(stdout, "\n\n"))
}

func TestLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dead.json")
	doc := `{"name": "x", "stats": [], "items": [], "item_slots": [],
	  "stages": [{"index": 0, "name": "A", "text": [], "options": [{"target_stage": 99, "text": ["go"]}]},
	             {"index": 1, "name": "B", "text": [], "options": []}],
	  "entry_stage": 0, "exit_stage": 1}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runGame(path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error parsing game:")
	assert.Contains(t, stderr, "99")
}
