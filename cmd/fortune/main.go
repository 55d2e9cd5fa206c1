package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bobmcallan/jinyao-fortune/internal/app"
	"github.com/bobmcallan/jinyao-fortune/internal/cli"
	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var files []string
	if path := os.Getenv("FORTUNE_CONFIG"); path != "" {
		files = append(files, path)
	}

	cfg, err := config.LoadFromFiles(files...)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := os.Getenv("FORTUNE_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger := common.NewLoggerFromConfig(common.LoggingConfig{
		Level:   level,
		Outputs: []string{"console"},
	})

	ctx := context.Background()
	root := cli.NewRootCmd(&cli.App{
		Generator: app.NewGenerator(ctx, &cfg.Generator, logger),
	})
	return root.ExecuteContext(ctx)
}
