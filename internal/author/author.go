// Package author drafts new story files with Gemini.
package author

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/advgame/internal/loader"
	"github.com/tatianab/advgame/internal/models"
	"github.com/tatianab/advgame/internal/story"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

//go:embed prompts/draft_story.txt
var draftStoryPrompt string

var draftTmpl = template.Must(template.New("draft_story").Parse(draftStoryPrompt))

type Drafter struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    *zap.Logger
}

func NewDrafter(ctx context.Context, apiKey, modelName string, log *zap.Logger) (*Drafter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel(modelName)
	return &Drafter{client: client, model: model, log: log}, nil
}

func (d *Drafter) Close() {
	d.client.Close()
}

// Draft asks the model for a story about hint. The returned YAML has been
// decoded and validated, so it can be played as is.
func (d *Drafter) Draft(ctx context.Context, hint string) ([]byte, *models.GameState, error) {
	prompt, err := renderPrompt(hint)
	if err != nil {
		return nil, nil, err
	}

	resp, err := d.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, nil, fmt.Errorf("no content returned from Gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected response type from Gemini")
	}

	raw := []byte(cleanYAML(string(text)))
	game, err := Validate(raw, d.log)
	if err != nil {
		return nil, nil, fmt.Errorf("drafted story is not playable: %w\nOutput was: %s", err, raw)
	}
	return raw, game, nil
}

func renderPrompt(hint string) (string, error) {
	if strings.TrimSpace(hint) == "" {
		hint = "random"
	}
	var buf bytes.Buffer
	data := struct {
		Hint   string
		Format string
	}{
		Hint:   hint,
		Format: story.Format,
	}
	if err := draftTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cleanYAML strips the markdown fences models like to wrap output in.
func cleanYAML(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```yaml")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s) + "\n"
}

// Validate decodes a YAML story and runs it through the loader.
func Validate(raw []byte, log *zap.Logger) (*models.GameState, error) {
	game, err := story.Decode(bytes.NewReader(raw), story.YAML)
	if err != nil {
		return nil, err
	}
	return loader.PostProcess(game, log)
}
