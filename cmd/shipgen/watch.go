package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/internal/export"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/pkg/material"
	"github.com/philipparndt/shipgen/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	watchDebounce  time.Duration
	watchOverrides *config.Overrides
)

var watchCmd = &cobra.Command{
	Use:   "watch [config]",
	Short: "Regenerate the ship whenever the config file changes",
	Long: `Watch a config file and write a fresh ship to the configured output on
every change. Flags override the file on each regeneration.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Wait this long after the last change")
	watchOverrides = config.BindFlags(watchCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	path = config.Path(path)
	if path == "" {
		fmt.Fprintf(os.Stderr, "Error: no config file found (looked for %s)\n", config.FileName)
		os.Exit(1)
	}

	cfg := loadConfig(path, watchOverrides)
	defer logger.Sync()
	textures := material.NewLibrary(cfg.Textures.Directory)

	var mu sync.Mutex
	regenerate := func() {
		mu.Lock()
		defer mu.Unlock()

		cfg, err := config.Load(path)
		if err == nil {
			err = watchOverrides.Apply(cfg)
		}
		if err != nil {
			logger.Warn("config rejected", zap.Error(err))
			return
		}
		if err := writeShip(cfg, textures); err != nil {
			logger.Error("regeneration failed", zap.Error(err))
		}
	}

	if err := writeShip(cfg, textures); err != nil {
		logger.Error("generation failed", zap.Error(err))
	}

	fw, err := watcher.NewFileWatcher(watchDebounce, logger.Named("watcher"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file watcher: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Watch([]string{path}, func(string) { regenerate() }); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching %s: %v\n", path, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fw.Start(ctx)

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", path)
	<-ctx.Done()
}

// writeShip generates one ship and writes every configured output
func writeShip(cfg *config.Config, textures *material.Library) error {
	result, err := generateShip(cfg, textures)
	if err != nil {
		return err
	}
	if err := export.Output(cfg.Output, result); err != nil {
		return err
	}
	logger.Info("ship written",
		zap.String("path", cfg.Output.Path),
		zap.String("seed", result.Seed.Describe()),
		zap.Int("faces", result.Mesh.FaceCount()),
		zap.Duration("elapsed", result.Stats.Elapsed))
	return nil
}
