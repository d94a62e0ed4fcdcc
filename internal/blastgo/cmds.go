package blastgo

import (
	"fmt"
	"os"
	"strings"

	"github.com/snaharmd-cloud/blastgo/config"
	"github.com/spf13/cobra"
)

// ValidateCmd is a cobra handler for `blastgo validate`: it prints
// whether the sequence is valid DNA and exits non-zero if it isn't.
func ValidateCmd(cmd *cobra.Command, args []string) {
	seq, err := querySequence(cmd, args)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	if !IsDNA(seq) {
		stderr.Fatal("invalid: the sequence contains characters other than A, T, C and G")
	}

	fmt.Println("valid DNA sequence")
}

// SearchCmd is a cobra handler for `blastgo search`: it BLASTs the
// query against the configured database and writes the hits.
func SearchCmd(cmd *cobra.Command, args []string) {
	c := config.New()

	program, err := ParseProgram(c.Program)
	if err != nil {
		stderr.Fatal(err)
	}

	seq, err := querySequence(cmd, args)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	if c.DB == "" {
		cmd.Help()
		stderr.Fatal("no BLAST database set [-d]")
	}

	if c.Verbose {
		stderr.Printf("running %s against %s\n", program, c.DB)
	}

	result, err := Search(program, c.DB, seq)
	if err != nil {
		stderr.Fatal(err)
	}

	// surface BLAST's stderr whether or not the run produced hits
	if warnings := strings.TrimSpace(result.Warnings); warnings != "" {
		stderr.Printf("BLAST: %s\n", warnings)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := writeTSV(out, result.Hits); err != nil {
			stderr.Fatal(err)
		}
		return
	}

	writeTable(os.Stdout, result.Hits)
}

// querySequence gets the query from the --in FASTA file or the first
// positional argument.
func querySequence(cmd *cobra.Command, args []string) (string, error) {
	if in, err := cmd.Flags().GetString("in"); err == nil && in != "" {
		_, seq, err := readFasta(in)
		return seq, err
	}

	if len(args) < 1 {
		return "", fmt.Errorf("no query sequence: pass one as an argument or through a FASTA file [-i]")
	}

	return args[0], nil
}
