// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in .blastgo.yaml and those available from the command line
type Config struct {
	// the BLAST program to run: blastn, blastp or blastx
	Program string `mapstructure:"program"`

	// the BLAST database name or path the queries are run against
	DB string `mapstructure:"db"`

	// verbose logs the BLAST invocation before running it
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local .blastgo.yaml) and/or command line arguments
func New() *Config {
	// default to nucleotide BLAST against the NCBI nucleotide collection
	viper.SetDefault("program", "blastn")
	viper.SetDefault("db", "nt")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
