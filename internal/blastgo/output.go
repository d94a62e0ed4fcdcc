package blastgo

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
)

// writeTable writes hits as an aligned table with a header row, or
// "no hits found" when there are none.
func writeTable(w io.Writer, hits []Hit) {
	if len(hits) == 0 {
		fmt.Fprintln(w, "no hits found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "query\tsubject\tidentity\tlength\tmismatch\tgapopen\tqstart\tqend\tsstart\tsend\tevalue\tbitscore\t\n")
	for _, h := range hits {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t\n",
			h.QSeqID,
			h.SSeqID,
			h.PIdent,
			h.Length,
			h.Mismatch,
			h.GapOpen,
			h.QStart,
			h.QEnd,
			h.SStart,
			h.SEnd,
			strconv.FormatFloat(h.EValue, 'g', -1, 64),
			strconv.FormatFloat(h.BitScore, 'g', -1, 64),
		)
	}
	tw.Flush()
}

// writeTSV writes hits to a file in the same tab separated, headerless
// format BLAST emitted them in.
func writeTSV(path string, hits []Hit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer f.Close()

	for _, h := range hits {
		_, err := fmt.Fprintf(f, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			h.QSeqID,
			h.SSeqID,
			strconv.FormatFloat(h.PIdent, 'f', -1, 64),
			h.Length,
			h.Mismatch,
			h.GapOpen,
			h.QStart,
			h.QEnd,
			h.SStart,
			h.SEnd,
			strconv.FormatFloat(h.EValue, 'g', -1, 64),
			strconv.FormatFloat(h.BitScore, 'f', -1, 64),
		)
		if err != nil {
			return fmt.Errorf("failed to write hits to %s: %v", path, err)
		}
	}

	return nil
}
