package cmd

import (
	"github.com/snaharmd-cloud/blastgo/internal/blastgo"
	"github.com/spf13/cobra"
)

// validateCmd checks whether a sequence is composed of only DNA nucleotides.
var validateCmd = &cobra.Command{
	Use:                        "validate [sequence]",
	Short:                      "Check whether a sequence is valid DNA",
	Run:                        blastgo.ValidateCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  blastgo validate ATGGTCTGGGTGCCCTCGTAG",
	Long: `Check whether a sequence is composed solely of the four nucleotide
letters: A, T, C and G (either case).

Exits non-zero if the sequence contains any other character.`,
	Aliases: []string{"check"},
}

// set flags
func init() {
	validateCmd.Flags().StringP("in", "i", "", "Query FASTA file, validated instead of [sequence]")

	rootCmd.AddCommand(validateCmd)
}
