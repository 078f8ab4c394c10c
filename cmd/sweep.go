package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/cctduv/locus"
	"github.com/mmuldo/cctduv/report"
)

// upper bound on the lines a single sweep prints
const maxSweepSteps = 100000

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Converts a range of temperatures at a fixed Duv",
	Long: `Converts every temperature from --from to --to in --step increments at a
fixed Duv, one line per temperature, rendered with --template.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, "from", "to", "step", "duv", "template", "template-file")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		from := viper.GetFloat64("from")
		to := viper.GetFloat64("to")
		step := viper.GetFloat64("step")

		temps, e := sweepTemperatures(from, to, step)
		if e != nil {
			return e
		}

		duv := viper.GetFloat64("duv")
		lum := luminance()
		for _, t := range temps {
			checkInputs(t, duv)
			s := locus.Solve(t, duv)
			warnSolution(s)

			out, e := render(report.FromSolution(s, lum))
			if e != nil {
				return e
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64("from", locus.MinValid, "first temperature in kelvin")
	sweepCmd.Flags().Float64("to", locus.MaxValid, "last temperature in kelvin")
	sweepCmd.Flags().Float64("step", 1000, "temperature increment in kelvin")
	sweepCmd.Flags().Float64P("duv", "d", defaultDuv, "signed distance from the Planckian locus in u'v'")
	sweepCmd.Flags().String("template", "{{ cct|floatformat:0 }}K "+report.Default, "pongo2 template for each line")
	sweepCmd.Flags().String("template-file", "", "file holding a pongo2 template, overrides --template")
}

// sweepTemperatures returns from, from+step, ... up to and including to. The
// count is fixed up front so the values do not accumulate rounding error.
func sweepTemperatures(from, to, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("step must be positive, got %g", step)
	}
	if !(to >= from) {
		return nil, fmt.Errorf("--to %g is below --from %g", to, from)
	}

	span := (to - from) / step
	if span > maxSweepSteps {
		return nil, fmt.Errorf("step %g gives more than %d temperatures between %g and %g", step, maxSweepSteps, from, to)
	}

	n := int(math.Floor(span + 1e-9))
	temps := make([]float64, n+1)
	for i := range temps {
		temps[i] = from + float64(i)*step
	}
	return temps, nil
}
