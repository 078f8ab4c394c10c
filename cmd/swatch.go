package cmd

import (
	"fmt"
	"image"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/cctduv/swatch"
)

// swatchCmd represents the swatch command
var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Renders a PNG grid of colors around the Planckian locus",
	Long: `Renders a PNG with one tile per temperature (rows) and Duv (columns).

  cctduv swatch -o locus.png --temps 3000,4000,5000,6500 --duv-min -0.02 --duv-max 0.02 --columns 5`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, "output", "duv-min", "duv-max", "columns")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		output := viper.GetString("output")
		duvMin := viper.GetFloat64("duv-min")
		duvMax := viper.GetFloat64("duv-max")
		columns := viper.GetInt("columns")
		temps, e := cmd.Flags().GetFloat64Slice("temps")
		if e != nil {
			return e
		}

		for _, t := range temps {
			checkInputs(t, duvMin)
			checkInputs(t, duvMax)
		}

		duvs := swatch.Range(duvMin, duvMax, columns)
		img, e := swatch.Grid(temps, duvs, luminance())
		if e != nil {
			return e
		}

		if e := writePNG(output, img); e != nil {
			return e
		}

		log.Debugf("Wrote %dx%d grid to %s", len(duvs), len(temps), output)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swatchCmd)

	swatchCmd.Flags().StringP("output", "o", "swatch.png", "PNG file to write")
	swatchCmd.Flags().Float64Slice("temps", []float64{3000, 4000, 5000, 6500, 10000}, "temperatures in kelvin, one row each")
	swatchCmd.Flags().Float64("duv-min", -0.02, "Duv of the first column")
	swatchCmd.Flags().Float64("duv-max", 0.02, "Duv of the last column")
	swatchCmd.Flags().Int("columns", 5, "number of Duv columns")
}

// writePNG encodes img to path. A partially written file is removed.
func writePNG(path string, img image.Image) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}

	e = swatch.Encode(f, img)
	if ce := f.Close(); e == nil {
		e = ce
	}
	if e != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, e)
	}

	return nil
}
