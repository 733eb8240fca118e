package player

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var numberRe = regexp.MustCompile(`\d+`)

// Gemini lets a language model play.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client, model: client.GenerativeModel(modelName)}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) Choose(ctx context.Context, turn Turn) (int, error) {
	if len(turn.Options) == 0 {
		return 0, ErrNoOptions
	}
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt(turn)))
	if err != nil {
		return 0, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return 0, fmt.Errorf("no content returned from Gemini")
	}
	return parseChoice(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), len(turn.Options))
}

func prompt(turn Turn) string {
	var b strings.Builder
	b.WriteString("You are playing a text-based adventure game.\n\n")
	fmt.Fprintf(&b, "Stage: %s\n%s\n\n", turn.Stage.Name, strings.Join(turn.Stage.Text, "\n"))
	if len(turn.Stats) > 0 {
		b.WriteString("Stats:\n")
		for _, s := range turn.Stats {
			fmt.Fprintf(&b, "- %s: %d\n", s.Name, s.Value)
		}
		b.WriteString("\n")
	}
	b.WriteString("Options:\n")
	for i, opt := range turn.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.Join(opt.Text, " "))
	}
	b.WriteString("\nWhich option do you pick? Return ONLY the option number.")
	return b.String()
}

// parseChoice takes the first number in the reply and checks it is in 1..n.
func parseChoice(reply string, n int) (int, error) {
	m := numberRe.FindString(reply)
	if m == "" {
		return 0, fmt.Errorf("no option number in reply %q", strings.TrimSpace(reply))
	}
	choice, err := strconv.Atoi(m)
	if err != nil {
		return 0, err
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("option %d out of range 1..%d", choice, n)
	}
	return choice, nil
}
