package blastgo

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// readFasta reads the first record of a FASTA file and returns its id
// and sequence. Extra records are ignored with a warning: BLAST queries
// here are single-sequence.
func readFasta(path string) (id, seq string, err error) {
	if !filepath.IsAbs(path) {
		path, err = filepath.Abs(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to create path to FASTA file: %v", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input FASTA path: %v", err)
	}

	// find the headers. the first record's sequence runs to the next
	// header or the end of the file
	lines := strings.Split(string(dat), "\n")
	var headerIndices []int
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
		}
	}

	if len(headerIndices) < 1 {
		return "", "", fmt.Errorf("failed to parse a FASTA record from %s", path)
	}
	if len(headerIndices) > 1 {
		stderr.Printf("warning: %d records in %s, only querying the first\n", len(headerIndices), path)
	}

	end := len(lines)
	if len(headerIndices) > 1 {
		end = headerIndices[1]
	}

	id = strings.TrimSpace(lines[headerIndices[0]][1:])
	seqLines := lines[headerIndices[0]+1 : end]
	seq = strings.TrimSpace(strings.Join(seqLines, ""))

	if seq == "" {
		return "", "", fmt.Errorf("failed to parse a sequence for %s from %s", id, path)
	}

	return id, seq, nil
}
