package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/hachure/engine"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with default values.

If FILE is not provided, 'hachure.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "hachure.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		p := engine.DefaultParams()
		p.CellSize = 1.0
		p.MinSpacingPixels = 3
		p.MaxSpacingPixels = 15
		p.MinSlope = 2
		p.MaxSlope = 60

		if err := marshalYAMLFile(path, p); err != nil {
			fmt.Println("could not write", path, ":", err)
			return
		}
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
