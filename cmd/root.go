/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sumwatshade/saltwater/internal/chem"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "saltwater",
	Short: "Estimate seawater salinity from a macro ionic analysis",
	Long: `Converts a macro chemical analysis of a water sample (mass
concentrations of the major ions) into practical salinity, absolute
salinity, density and specific gravity, with chloride estimated from the
other ions when it was not measured.

Running without a subcommand opens the interactive terminal UI; the calc
subcommand computes a single analysis for scripting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(initialModel())

		_, err := p.Run()

		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.saltwater.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".saltwater" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".saltwater")

		// Saved analyses live under ~/.saltwater/logbook by default.
		viper.SetDefault("logbook.dir", filepath.Join(home, ".saltwater", "logbook"))
	}

	// Assumption defaults; any key can be overridden in the config file.
	viper.SetDefault("assumptions.temp", 20.0)
	viper.SetDefault("assumptions.pressure_dbar", 0.0)
	viper.SetDefault("assumptions.alkalinity_dkh", chem.DefaultRefAlkDKH)
	viper.SetDefault("assumptions.assume_borate", true)
	viper.SetDefault("assumptions.default_f_mg_l", chem.DefaultFluorideMgL)
	viper.SetDefault("assumptions.ref_alk_dkh", chem.DefaultRefAlkDKH)
	viper.SetDefault("assumptions.salinity_norm", 35.0)
	viper.SetDefault("assumptions.alt_ref_alk", false)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// configAssumptions builds the effective assumptions from viper state.
func configAssumptions() chem.Assumptions {
	a := chem.DefaultAssumptions()
	a.Temperature = viper.GetFloat64("assumptions.temp")
	a.PressureDbar = viper.GetFloat64("assumptions.pressure_dbar")
	a.AlkDKH = chem.Float(viper.GetFloat64("assumptions.alkalinity_dkh"))
	a.AssumeBorate = viper.GetBool("assumptions.assume_borate")
	a.DefaultFMgL = viper.GetFloat64("assumptions.default_f_mg_l")
	a.RefAlkDKH = chem.Float(viper.GetFloat64("assumptions.ref_alk_dkh"))
	a.SalinityNorm = viper.GetFloat64("assumptions.salinity_norm")
	a.AltRefAlk = viper.GetBool("assumptions.alt_ref_alk")
	if viper.IsSet("assumptions.borate_fraction") {
		a.BorateFraction = chem.Float(viper.GetFloat64("assumptions.borate_fraction"))
	}
	if viper.IsSet("assumptions.alk_mg_per_meq") {
		a.AlkMgPerMeq = chem.Float(viper.GetFloat64("assumptions.alk_mg_per_meq"))
	}
	return a
}
