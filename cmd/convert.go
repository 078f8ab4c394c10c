package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/cctduv/locus"
	"github.com/mmuldo/cctduv/report"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Converts a CCT and Duv to xy",
	Long: `Converts a correlated color temperature and Duv to CIE 1931 xy.

The output is rendered with a pongo2 template. The default prints x and y to
four decimals; the template sees cct, duv, x, y, u, v, x0, y0, hex, in_gamut,
delta_e, degenerate, defined and extrapolated.

  cctduv convert -t 5000 -d 0.003
  cctduv convert -t 6500 --template '{{ x }} {{ y }} {{ hex }}'`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, "temperature", "duv", "template", "template-file")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		t := viper.GetFloat64("temperature")
		duv := viper.GetFloat64("duv")
		checkInputs(t, duv)

		s := locus.Solve(t, duv)
		warnSolution(s)

		out, e := render(report.FromSolution(s, luminance()))
		if e != nil {
			return e
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().Float64P("temperature", "t", defaultTemperature, "correlated color temperature in kelvin")
	convertCmd.Flags().Float64P("duv", "d", defaultDuv, "signed distance from the Planckian locus in u'v'")
	convertCmd.Flags().String("template", report.Default, "pongo2 template for the result")
	convertCmd.Flags().String("template-file", "", "file holding a pongo2 template, overrides --template")
}

func render(r report.Record) (string, error) {
	if f := viper.GetString("template-file"); f != "" {
		log.Debugf("Rendering with template file %s", f)
		return report.RenderFile(f, r)
	}

	tpl := viper.GetString("template")
	if tpl == "" {
		tpl = report.Default
	}
	return report.Render(tpl, r)
}

func warnSolution(s locus.Solution) {
	if !locus.InRange(s.Temperature) {
		log.Warnf("%gK is outside %g-%gK, the locus is extrapolated", s.Temperature, locus.MinValid, locus.MaxValid)
	}
	if s.Degenerate {
		log.Warnf("Locus tangent at %gK is degenerate, Duv %g ignored", s.Temperature, s.Duv)
	}
	if !s.Defined {
		log.Warnf("Conversion at %gK, Duv %g is undefined", s.Temperature, s.Duv)
	}
	log.Debugf("Locus (%.6f, %.6f) u'v' (%.6f, %.6f)", s.Locus.X, s.Locus.Y, s.LocusUV.U, s.LocusUV.V)
}
