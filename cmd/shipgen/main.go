package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/shipgen/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shipgen",
	Short: "A procedural spaceship generator",
	Long: `shipgen grows spaceship meshes from a seed by extruding, scaling and
detailing a cube. Ships are exported as OBJ with materials, STL or OpenSCAD.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
