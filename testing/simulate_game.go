package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/tatianab/advgame/internal/config"
	"github.com/tatianab/advgame/internal/engine"
	"github.com/tatianab/advgame/internal/loader"
	"github.com/tatianab/advgame/internal/logger"
	"github.com/tatianab/advgame/internal/models"
	"github.com/tatianab/advgame/internal/player"
	"go.uber.org/zap"
)

const maxTurns = 50

func main() {
	ctx := context.Background()

	who := flag.String("player", "first", "who plays: first, random or gemini")
	seed := flag.Uint64("seed", 1, "seed for the random player")
	turns := flag.Int("turns", maxTurns, "stop after this many turns")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("Usage: simulate_game [-player first|random|gemini] story.json")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	zl, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding, OutputPath: cfg.LogFile})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	var chooser player.Chooser
	switch *who {
	case "first":
		chooser = player.First{}
	case "random":
		chooser = player.NewRandom(*seed)
	case "gemini":
		if err := cfg.RequireGemini(); err != nil {
			log.Fatal(err)
		}
		g, err := player.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create player client: %v", err)
		}
		defer g.Close()
		chooser = g
	default:
		log.Fatalf("Unknown player %q", *who)
	}

	game, err := loader.Load(flag.Arg(0), zl)
	if err != nil {
		log.Fatalf("Failed to load story: %v", err)
	}
	eng := engine.New(game, zl)
	fmt.Printf("Title: %s\n\n", eng.Name())

	ended := false

	for turn := 1; turn <= *turns; turn++ {
		stage := eng.CurrentStage()
		fmt.Printf("--- Turn %d: %s ---\n", turn, stage.Name)
		fmt.Println(strings.Join(stage.Text, "\n"))

		var options []models.Option
		for _, opt := range eng.VisibleOptions(stage) {
			options = append(options, opt)
		}
		for i, opt := range options {
			fmt.Printf("  %d. %s\n", i+1, strings.Join(opt.Text, " "))
		}

		if stage.IsTerminal() {
			eng.HandleAction(engine.Confirm)
			fmt.Println("Game Ended: exit reached.")
			ended = true
			break
		}
		if len(options) == 0 {
			fmt.Println("Game Ended: stuck, no visible options.")
			ended = true
			break
		}

		n, err := chooser.Choose(ctx, player.Turn{Stage: stage, Options: options, Stats: eng.Stats()})
		if err != nil {
			zl.Warn("chooser failed, taking the first option", zap.Error(err))
			n = 1
		}
		fmt.Printf("Player picks: %d\n", n)
		eng.HandleAction(engine.Number(n))

		fmt.Printf("Stats: %s\n\n", formatStats(eng.Stats()))
	}
	if !ended {
		fmt.Printf("Stopped after %d turns.\n", *turns)
	}
}

func formatStats(stats []models.Stat) string {
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = fmt.Sprintf("%s=%d", s.Name, s.Value)
	}
	return strings.Join(parts, ", ")
}
