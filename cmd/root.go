/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultTemperature = 6500.0
	defaultDuv         = 0.0
	defaultLuminance   = 0.5

	// accepted input ranges; values outside are warned about, not rejected
	minTemperature = 1000.0
	maxTemperature = 30000.0
	maxDuv         = 0.1
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cctduv",
	Short: "Converts a correlated color temperature and Duv to CIE 1931 xy",
	Long: `cctduv places a chromaticity relative to the Planckian locus.

Given a correlated color temperature in kelvin and a signed distance Duv from
the locus in CIE 1976 u'v' units, it reports the CIE 1931 (x, y) chromaticity.
The locus polynomial is fitted for 4000-25000 K; outside that range results
are extrapolated.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cctduv.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Float64("luminance", defaultLuminance, "relative luminance used to render colors (0..1)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("luminance", rootCmd.PersistentFlags().Lookup("luminance"))

	viper.SetDefault("temperature", defaultTemperature)
	viper.SetDefault("duv", defaultDuv)
	viper.SetDefault("luminance", defaultLuminance)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, e := homedir.Dir()
		if e != nil {
			log.Warnf("Could not find home directory: %v", e)
		} else {
			// Search config in home directory with name ".cctduv" (without extension).
			viper.AddConfigPath(home)
			viper.SetConfigName(".cctduv")
		}
	}

	// CCTDUV_TEMPLATE_FILE sets template-file
	viper.SetEnvPrefix("cctduv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if e := viper.ReadInConfig(); e == nil {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Warnf("Could not read config file %s: %v", cfgFile, e)
	}
}

// checkInputs logs inputs outside the ranges the tool is meant for. The
// conversion still runs.
func checkInputs(t, duv float64) {
	if t <= 0 {
		log.Warnf("Temperature %gK is not positive, result is meaningless", t)
	} else if t < minTemperature || t > maxTemperature {
		log.Warnf("Temperature %gK is outside %g-%gK", t, minTemperature, maxTemperature)
	}

	if duv < -maxDuv || duv > maxDuv {
		log.Warnf("Duv %g is outside ±%g", duv, maxDuv)
	}
}

// luminance returns the configured rendering luminance, clamped to 0..1.
func luminance() float64 {
	l := viper.GetFloat64("luminance")
	if l < 0 || l > 1 {
		log.Warnf("Luminance %g clamped to 0..1", l)
		if l < 0 {
			return 0
		}
		return 1
	}
	return l
}

func bindFlags(cmd *cobra.Command, keys ...string) error {
	for _, k := range keys {
		if e := viper.BindPFlag(k, cmd.Flags().Lookup(k)); e != nil {
			return fmt.Errorf("binding flag %s: %w", k, e)
		}
	}
	return nil
}
