package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/shipgen/internal/app"
	"github.com/philipparndt/shipgen/internal/config"
	"github.com/philipparndt/shipgen/internal/logger"
	"github.com/philipparndt/shipgen/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	watch      bool
	overrides  *config.Overrides
)

var rootCmd = &cobra.Command{
	Use:     "shipgen-view [config]",
	Short:   "Interactive procedural spaceship viewer",
	Long:    `shipgen-view generates spaceships and shows them in an interactive 3D window.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version.GetFullVersion(),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			configPath = args[0]
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := overrides.Apply(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		opts := app.Options{
			ConfigPath: config.Path(configPath),
			Config:     cfg,
			Watch:      watch,
		}
		if err := app.Run(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./shipgen.yaml)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", true, "Regenerate when the config file changes")
	overrides = config.BindFlags(rootCmd.Flags())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
