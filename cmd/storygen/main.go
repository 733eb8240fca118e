package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tatianab/advgame/internal/author"
	"github.com/tatianab/advgame/internal/config"
	"github.com/tatianab/advgame/internal/logger"
)

func main() {
	ctx := context.Background()

	out := flag.String("o", "", "write the story to this .yaml file instead of stdout")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-o story.yaml] hint...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RequireGemini(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding, OutputPath: cfg.LogFile})
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	drafter, err := author.NewDrafter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		fmt.Printf("Error creating drafter: %v\n", err)
		os.Exit(1)
	}
	defer drafter.Close()

	raw, game, err := drafter.Draft(ctx, strings.Join(flag.Args(), " "))
	if err != nil {
		fmt.Printf("Error drafting story: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(raw)
		return
	}
	if err := os.WriteFile(*out, raw, 0644); err != nil {
		fmt.Printf("Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %q (%d stages) to %s\n", game.Name, len(game.Stages), *out)
}
