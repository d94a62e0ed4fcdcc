package cmd

import (
	"github.com/snaharmd-cloud/blastgo/internal/blastgo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchCmd BLASTs a query sequence against a database and writes the hits.
var searchCmd = &cobra.Command{
	Use:                        "search [sequence]",
	Short:                      "BLAST a query sequence against a database",
	Run:                        blastgo.SearchCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  blastgo search --db nt ATGGTCTGGGTGCCCTCGTAG",
	Long: `BLAST a query sequence against a BLAST database and write the hits
as a table: one hit per row with its identity, alignment length,
coordinates, expect value and bit score.

The query is either the [sequence] argument or the first record of a
FASTA file passed via --in. The database is anything the BLAST+ binaries
accept with '-db': a name like 'nt' or a path made with 'makeblastdb'.`,
	Aliases: []string{"blast"},
}

// set flags
func init() {
	searchCmd.Flags().StringP("program", "p", "", "BLAST program: blastn, blastp or blastx")
	searchCmd.Flags().StringP("db", "d", "", "BLAST database name or path (see 'makeblastdb')")
	searchCmd.Flags().StringP("in", "i", "", "Query FASTA file, used instead of [sequence]")
	searchCmd.Flags().StringP("out", "o", "", "Output file for hits <TSV>. Writes a table to stdout if unset")

	// bind the parameters to viper so the settings file can set defaults
	viper.BindPFlag("program", searchCmd.Flags().Lookup("program"))
	viper.BindPFlag("db", searchCmd.Flags().Lookup("db"))

	rootCmd.AddCommand(searchCmd)
}
