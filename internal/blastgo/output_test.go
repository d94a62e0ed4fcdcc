package blastgo

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testHits = []Hit{
	{
		QSeqID:   "query",
		SSeqID:   "gnl|db|107006",
		PIdent:   98.5,
		Length:   100,
		Mismatch: 1,
		GapOpen:  0,
		QStart:   1,
		QEnd:     100,
		SStart:   1,
		SEnd:     100,
		EValue:   1e-50,
		BitScore: 200.0,
	},
}

func Test_writeTable(t *testing.T) {
	t.Run("no hits", func(t *testing.T) {
		var out bytes.Buffer
		writeTable(&out, []Hit{})

		if strings.TrimSpace(out.String()) != "no hits found" {
			t.Errorf("writeTable() = %q, want 'no hits found'", out.String())
		}
	})

	t.Run("hits with a header row", func(t *testing.T) {
		var out bytes.Buffer
		writeTable(&out, testHits)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		if len(lines) != 2 {
			t.Errorf("writeTable() wrote %d lines, want a header and a hit", len(lines))
			return
		}
		if !strings.HasPrefix(lines[0], "query") || !strings.Contains(lines[0], "bitscore") {
			t.Errorf("writeTable() header = %q", lines[0])
		}
		if !strings.Contains(lines[1], "gnl|db|107006") || !strings.Contains(lines[1], "98.50") {
			t.Errorf("writeTable() hit row = %q", lines[1])
		}
	})
}

func Test_writeTSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hits.tsv")

	if err := writeTSV(out, testHits); err != nil {
		t.Errorf("writeTSV() error = %v", err)
		return
	}

	dat, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read back %s: %v", out, err)
	}

	line := strings.TrimSpace(string(dat))
	if cols := strings.Split(line, "\t"); len(cols) != hitFields {
		t.Errorf("writeTSV() wrote %d columns, want %d: %q", len(cols), hitFields, line)
	}
	if !strings.HasPrefix(line, "query\tgnl|db|107006\t98.5\t100\t1\t0\t") {
		t.Errorf("writeTSV() line = %q", line)
	}
}
