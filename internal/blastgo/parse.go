package blastgo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned when BLAST tabular output can't be read back
// into hits: a row with the wrong column count or a numeric column
// holding non-numeric text.
var ErrParse = errors.New("malformed BLAST tabular output")

// hitFields is the number of columns requested through outfmt.
const hitFields = 12

// Hit is a single BLAST alignment against an entry in the database.
// Fields are in the order BLAST writes them with outfmt (see blast.go).
type Hit struct {
	// id of the query sequence
	QSeqID string

	// id of the matched (subject) entry in the database
	SSeqID string

	// percentage of identical positions
	PIdent float64

	// alignment length
	Length int

	// number of mismatched positions
	Mismatch int

	// number of gap openings
	GapOpen int

	// start and end of the alignment on the query (1-indexed)
	QStart int
	QEnd   int

	// start and end of the alignment on the subject (1-indexed)
	SStart int
	SEnd   int

	// expect value
	EValue float64

	// bit score
	BitScore float64
}

// parseHits reads tab separated BLAST output into hits, one per line,
// keeping the order BLAST emitted them in. Empty and whitespace-only
// output means no hits, not an error.
func parseHits(raw string) (hits []Hit, err error) {
	hits = []Hit{}
	if strings.TrimSpace(raw) == "" {
		return hits, nil
	}

	for i, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) != hitFields {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d", ErrParse, i+1, len(cols), hitFields)
		}

		c := &colParser{}
		hit := Hit{
			QSeqID:   cols[0],
			SSeqID:   cols[1],
			PIdent:   c.float(cols[2]),
			Length:   c.int(cols[3]),
			Mismatch: c.int(cols[4]),
			GapOpen:  c.int(cols[5]),
			QStart:   c.int(cols[6]),
			QEnd:     c.int(cols[7]),
			SStart:   c.int(cols[8]),
			SEnd:     c.int(cols[9]),
			EValue:   c.float(cols[10]),
			BitScore: c.float(cols[11]),
		}
		if c.err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, i+1, c.err)
		}

		hits = append(hits, hit)
	}

	return hits, nil
}

// colParser converts row columns and holds the first conversion error.
type colParser struct {
	err error
}

func (c *colParser) float(col string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
	if err != nil && c.err == nil {
		c.err = err
	}
	return f
}

func (c *colParser) int(col string) int {
	i, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil && c.err == nil {
		c.err = err
	}
	return i
}
