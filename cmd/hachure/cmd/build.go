package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/fatih/structs"
	"github.com/spf13/cobra"

	"github.com/arl/hachure/engine"
	"github.com/arl/hachure/terrain"
)

var (
	scenarioFlag string
	configFlag   string
	levelsFlag   int
	verboseFlag  bool
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "run the hachure sweep and print the resulting strokes",
	Long: `Run the full hachure sweep against a built-in terrain scenario
(or, once a GIS host is wired in, any co-registered slope/aspect/contour
input), and print each resulting hachure as a WKT LINESTRING.`,
	Run: doBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&scenarioFlag, "scenario", "cone", "built-in terrain scenario name")
	buildCmd.Flags().StringVar(&configFlag, "config", "", "build settings file (YAML); if empty, engine defaults are used")
	buildCmd.Flags().IntVar(&levelsFlag, "levels", 10, "number of contour levels to sweep")
	buildCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "dump the build log and resolved parameters")
}

func doBuild(cmd *cobra.Command, args []string) {
	s := findScenario(scenarioFlag)
	if s == nil {
		fmt.Println("unknown scenario", scenarioFlag)
		os.Exit(-1)
	}

	var params engine.Params
	if configFlag != "" {
		if err := unmarshalYAMLFile(configFlag, &params); err != nil {
			fmt.Println("could not read", configFlag, ":", err)
			os.Exit(-1)
		}
	} else {
		params = engine.DefaultParams()
		params.CellSize = 1.0
		params.MinSpacingPixels = 3
		params.MaxSpacingPixels = 15
		params.MinSlope = 2
		params.MaxSlope = 60
	}

	if verboseFlag {
		fmt.Println(structs.Map(params))
	}

	elev := s.build()
	slope, aspect := terrain.SlopeAspect(elev)
	sampler := engine.NewSampler(slope, aspect)

	bc := engine.NewBuildContext()
	ctx := engine.NewContext(verboseFlag, bc)

	eng, err := engine.New(params, sampler, ctx)
	if err != nil {
		fmt.Println("invalid build settings:", err)
		os.Exit(-1)
	}

	filled, lines := terrain.Contours(elev, contourLevels(elev, levelsFlag))
	model, err := engine.BuildContourModel(elev.Extent(), filled, lines)
	if err != nil {
		fmt.Println("could not build contour model:", err)
		os.Exit(-1)
	}

	hachures := eng.Run(model)

	if verboseFlag {
		bc.DumpLog("build log:")
	}

	for _, h := range hachures {
		fmt.Println(wktLineString(h))
	}
}

// contourLevels picks n evenly spaced elevations strictly between
// elev's min and max, the bands the sweep treats as its contour
// stack.
func contourLevels(elev *terrain.Grid, n int) []float64 {
	rows, cols := elev.Dims()
	lo, hi := math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := elev.At(r, c)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if n <= 0 || hi <= lo {
		return nil
	}
	levels := make([]float64, 0, n)
	step := (hi - lo) / float64(n+1)
	for i := 1; i <= n; i++ {
		levels = append(levels, lo+float64(i)*step)
	}
	return levels
}

func wktLineString(line engine.Polyline) string {
	s := "LINESTRING ("
	for i, p := range line {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%g %g", p.X, p.Y)
	}
	return s + ")"
}
