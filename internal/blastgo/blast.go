// Package blastgo validates DNA sequences and BLASTs them against
// sequence databases by shelling out to the NCBI BLAST+ binaries.
package blastgo

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// outfmt is the tabular output requested from BLAST. The column order
// here is a contract with parseHits (see parse.go): changing one
// without the other breaks the hit schema.
const outfmt = "6 qseqid sseqid pident length mismatch gapopen qstart qend sstart send evalue bitscore"

// ErrExec is returned when a BLAST binary can't be launched at all,
// eg BLAST+ isn't installed or isn't in $PATH.
var ErrExec = errors.New("failed to launch BLAST")

// Program is one of the supported BLAST+ executables.
type Program string

const (
	// Blastn aligns a nucleotide query against a nucleotide database.
	Blastn Program = "blastn"

	// Blastp aligns a protein query against a protein database.
	Blastp Program = "blastp"

	// Blastx translates a nucleotide query and aligns it against a protein database.
	Blastx Program = "blastx"
)

// ParseProgram matches a program name from the CLI/settings against
// the supported BLAST+ executables.
func ParseProgram(name string) (Program, error) {
	switch p := Program(strings.ToLower(strings.TrimSpace(name))); p {
	case Blastn, Blastp, Blastx:
		return p, nil
	default:
		return "", fmt.Errorf("unrecognized BLAST program %q, expected one of: %s, %s, %s", name, Blastn, Blastp, Blastx)
	}
}

// Result is the outcome of one BLAST invocation.
type Result struct {
	// Hits in the order BLAST emitted them. Empty when the query
	// matched nothing or when the tool exited non-zero.
	Hits []Hit

	// Warnings is whatever BLAST wrote to stderr. May be non-empty
	// even on success and is always surfaced to the caller.
	Warnings string
}

// runner executes an external command and returns its stdout, stderr
// and exit status. A non-zero exit is not an error here; err is only
// set when the command couldn't be started at all.
type runner interface {
	run(name string, args ...string) (stdout, stderr string, exit int, err error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) run(name string, args ...string) (string, string, int, error) {
	var out, serr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &serr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out.String(), serr.String(), exitErr.ExitCode(), nil
		}
		return "", "", 0, err
	}

	return out.String(), serr.String(), 0, nil
}

// blastExec is a small utility object for executing BLAST.
type blastExec struct {
	// the BLAST program to run
	program Program

	// the database being queried, a name or path meaningful to BLAST
	db string

	// the raw query sequence
	seq string

	// runs the external binary. swapped for a fake in tests
	runner runner
}

// Search writes seq to a temporary FASTA file, BLASTs it against db with
// program and parses the resulting hits.
//
// A BLAST run that fails (non-zero exit) is not an error: the hits are
// empty and whatever BLAST wrote to stderr comes back in Result.Warnings.
// An error is only returned when the binary can't be launched (ErrExec)
// or when output that should be tabular can't be parsed (ErrParse).
func Search(program Program, db, seq string) (*Result, error) {
	b := &blastExec{
		program: program,
		db:      db,
		seq:     seq,
		runner:  execRunner{},
	}

	return b.search()
}

func (b *blastExec) search() (*Result, error) {
	in, err := os.CreateTemp("", "blastgo-query-*.fa")
	if err != nil {
		return nil, fmt.Errorf("failed to create a query file: %v", err)
	}
	defer os.Remove(in.Name())

	if err := b.input(in); err != nil {
		return nil, fmt.Errorf("failed to write the query to %s: %v", in.Name(), err)
	}

	stdout, stderrOut, exit, err := b.run(in.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrExec, b.program, err)
	}

	// BLAST ran and failed. drop its stdout, surface its stderr
	if exit != 0 {
		return &Result{Hits: []Hit{}, Warnings: stderrOut}, nil
	}

	hits, err := parseHits(stdout)
	if err != nil {
		return nil, err
	}

	return &Result{Hits: hits, Warnings: stderrOut}, nil
}

// input writes the query to the file as a single FASTA record with a
// placeholder id.
func (b *blastExec) input(in *os.File) error {
	if _, err := fmt.Fprintf(in, ">query\n%s\n", b.seq); err != nil {
		return err
	}

	return in.Close()
}

// run calls the external BLAST binary on the query file.
func (b *blastExec) run(queryPath string) (string, string, int, error) {
	return b.runner.run(string(b.program),
		"-query", queryPath,
		"-db", b.db,
		"-outfmt", outfmt,
	)
}
