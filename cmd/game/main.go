package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tatianab/advgame/internal/config"
	"github.com/tatianab/advgame/internal/engine"
	"github.com/tatianab/advgame/internal/loader"
	"github.com/tatianab/advgame/internal/logger"
	"github.com/tatianab/advgame/internal/story"
	"github.com/tatianab/advgame/internal/tui"
	"go.uber.org/zap"
)

const banner = `Welcome to advgame!
To play a story, run:
    %[1]s story.json
To display the story file format, run:
    %[1]s --format
To restart the story every time its file changes, run:
    %[1]s -watch story.yaml
`

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	name := args[0]

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.Bool("format", false, "print the story file format")
	watch := fs.Bool("watch", cfg.Watch, "restart the story when its file changes")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stdout, banner, name)
			return 0
		}
		fmt.Fprintf(stderr, "%v\nUsage: %s filename\n", err, name)
		return 1
	}
	if *format {
		fmt.Fprint(stdout, story.Format)
		return 0
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Usage: %s filename\n", name)
		return 1
	}
	path := fs.Arg(0)

	log, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		Encoding:   cfg.LogEncoding,
		OutputPath: cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	game, err := loader.Load(path, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing game: %v\n", err)
		return 1
	}

	opts := tui.Options{Log: log}
	if *watch {
		w, err := story.NewWatcher(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error watching %s: %v\n", path, err)
			return 1
		}
		defer w.Close()
		opts.Watcher = w
	}

	if err := tui.Run(engine.New(game, log), opts); err != nil {
		log.Error("tui stopped", zap.Error(err))
		fmt.Fprintf(stderr, "Error running TUI: %v\n", err)
		return 1
	}
	return 0
}
