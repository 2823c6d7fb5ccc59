package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gridsnake/internal/app"
	"gridsnake/internal/snake"
	"gridsnake/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "file for -v output (the terminal is busy drawing)")
	flag.Parse()
	cfg.Normalize()

	var logger *log.Logger
	if cfg.Verbose {
		out := os.Stderr
		if *logPath != "" {
			f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				log.Fatalf("open log: %v", err)
			}
			defer f.Close()
			out = f
		}
		logger = log.New(out, "snake: ", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := term.Run(ctx, snake.NewWithSeed(cfg.ResolveSeed()), term.Options{
		FPS:           cfg.FPS,
		FramesPerTick: cfg.FramesPerTick,
		Logger:        logger,
	})
	if err != nil {
		log.Fatal(err)
	}
}
