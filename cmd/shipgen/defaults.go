package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/shipgen/internal/config"
	"github.com/spf13/cobra"
)

var defaultsOutput string

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print or write the default configuration",
	Long:  "Print the default configuration as YAML, or write it to a file with -o as a starting point for " + config.FileName + ".",
	Args:  cobra.NoArgs,
	Run:   runDefaults,
}

func init() {
	rootCmd.AddCommand(defaultsCmd)

	defaultsCmd.Flags().StringVarP(&defaultsOutput, "output", "o", "", "Write to this file instead of stdout")
}

func runDefaults(cmd *cobra.Command, args []string) {
	cfg := config.Default()

	if defaultsOutput != "" {
		if err := cfg.SaveTo(defaultsOutput); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", defaultsOutput)
		return
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
