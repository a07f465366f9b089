package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/hachure/terrain"
)

// scenarioDef is one of the built-in synthetic terrain scenarios used
// to exercise the engine without a GIS host (spec §8).
type scenarioDef struct {
	name  string
	about string
	build func() *terrain.Grid
}

var scenarios = []scenarioDef{
	{"planar-tilt", "uniform slope, evenly spaced straight contours", func() *terrain.Grid {
		return terrain.NewPlanarTilt(80, 80, 0.3)
	}},
	{"cone", "single radially symmetric peak", func() *terrain.Grid {
		return terrain.NewCone(80, 80, 40, 35)
	}},
	{"ridge", "two peaks joined by a saddle", func() *terrain.Grid {
		return terrain.NewRidge(100, 80, 40, 28, 36)
	}},
	{"flat", "uniform elevation, no slope anywhere", func() *terrain.Grid {
		return terrain.NewFlat(40, 40, 10)
	}},
	{"spike", "flat plateau with a single raised pixel", func() *terrain.Grid {
		return terrain.NewSpike(40, 40, 10, 50)
	}},
}

func findScenario(name string) *scenarioDef {
	for i := range scenarios {
		if scenarios[i].name == name {
			return &scenarios[i]
		}
	}
	return nil
}

// scenarioCmd represents the scenario command.
var scenarioCmd = &cobra.Command{
	Use:   "scenario NAME",
	Short: "show or list the built-in synthetic terrain scenarios",
	Long: `Print the grid dimensions and elevation range of a built-in
synthetic terrain scenario, or 'list' to enumerate them all.`,
	Run: doScenario,
}

func init() {
	RootCmd.AddCommand(scenarioCmd)
}

func doScenario(cmd *cobra.Command, args []string) {
	if len(args) == 0 || args[0] == "list" {
		for _, s := range scenarios {
			fmt.Printf("%-14s %s\n", s.name, s.about)
		}
		return
	}

	s := findScenario(args[0])
	if s == nil {
		fmt.Println("unknown scenario", args[0])
		os.Exit(-1)
	}

	g := s.build()
	rows, cols := g.Dims()
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := g.At(r, c)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	fmt.Printf("%s: %s\n", s.name, s.about)
	fmt.Printf("  grid:      %d x %d\n", rows, cols)
	fmt.Printf("  elevation: %.2f .. %.2f\n", lo, hi)
}
