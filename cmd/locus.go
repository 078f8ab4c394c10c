package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/cctduv/chroma"
	"github.com/mmuldo/cctduv/locus"
)

// locusCmd represents the locus command
var locusCmd = &cobra.Command{
	Use:   "locus",
	Short: "Prints the Planckian locus point for a temperature",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, "temperature")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		t := viper.GetFloat64("temperature")
		checkInputs(t, 0)

		p := locus.Planck(t)
		uv, ok := chroma.ToUV(p)
		if !ok {
			return fmt.Errorf("locus point at %gK has no u'v' form", t)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "x = %.4f, y = %.4f, u' = %.4f, v' = %.4f\n", p.X, p.Y, uv.U, uv.V)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locusCmd)

	locusCmd.Flags().Float64P("temperature", "t", defaultTemperature, "correlated color temperature in kelvin")
}
