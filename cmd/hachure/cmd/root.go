package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "hachure",
	Short: "generate slope hachures from a digital elevation model",
	Long: `hachure sweeps a stack of elevation contours, low to high,
and lays down down-slope line strokes whose spacing reflects local
slope steepness:
	- generate built-in synthetic terrain scenarios for experimentation,
	- tweak build settings (YAML files),
	- run the sweep and print the resulting hachures.`,
}

// Execute adds all child commands to the root command and runs it. This is
// called by main.main(). It only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
