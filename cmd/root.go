// Package cmd is for command line interactions with the blastgo application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings is the path to a YAML settings file, overriding $HOME/.blastgo.yaml
var settings string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "blastgo",
	Short: `Validate DNA sequences and BLAST them against sequence databases.
Wraps the NCBI BLAST+ binaries (blastn, blastp, blastx)`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// initConfig reads in the settings file and BLASTGO_* environment variables.
func initConfig() {
	if settings != "" {
		viper.SetConfigFile(settings)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".blastgo")
	}

	viper.SetEnvPrefix("blastgo")
	viper.AutomaticEnv()

	// the settings file is optional. only fail on one that was set but won't read
	if err := viper.ReadInConfig(); err != nil && settings != "" {
		log.Fatalf("failed to read settings file %s: %v", settings, err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&settings, "settings", "s", "", "Path to a YAML settings file")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}
