package blastgo

import (
	"errors"
	"reflect"
	"testing"
)

func Test_parseHits(t *testing.T) {
	type args struct {
		raw string
	}
	tests := []struct {
		name     string
		args     args
		wantHits []Hit
		wantErr  bool
	}{
		{
			"empty output",
			args{""},
			[]Hit{},
			false,
		},
		{
			"whitespace only output",
			args{"   \n\t\n"},
			[]Hit{},
			false,
		},
		{
			"single hit",
			args{"q1\ts1\t98.5\t100\t1\t0\t1\t100\t1\t100\t1e-50\t200.0\n"},
			[]Hit{
				{
					QSeqID:   "q1",
					SSeqID:   "s1",
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
			},
			false,
		},
		{
			"hits keep BLAST's order",
			args{"q1\tsB\t90.0\t50\t5\t0\t1\t50\t1\t50\t1e-10\t80.3\n" +
				"q1\tsA\t99.2\t120\t1\t1\t1\t120\t31\t150\t2e-60\t222.0\n"},
			[]Hit{
				{
					QSeqID:   "q1",
					SSeqID:   "sB",
					PIdent:   90.0,
					Length:   50,
					Mismatch: 5,
					GapOpen:  0,
					QStart:   1,
					QEnd:     50,
					SStart:   1,
					SEnd:     50,
					EValue:   1e-10,
					BitScore: 80.3,
				},
				{
					QSeqID:   "q1",
					SSeqID:   "sA",
					PIdent:   99.2,
					Length:   120,
					Mismatch: 1,
					GapOpen:  1,
					QStart:   1,
					QEnd:     120,
					SStart:   31,
					SEnd:     150,
					EValue:   2e-60,
					BitScore: 222.0,
				},
			},
			false,
		},
		{
			"too few columns",
			args{"q1\ts1\t98.5\t100\n"},
			nil,
			true,
		},
		{
			"non-numeric identity column",
			args{"q1\ts1\thigh\t100\t1\t0\t1\t100\t1\t100\t1e-50\t200.0\n"},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHits, err := parseHits(tt.args.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseHits() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && !errors.Is(err, ErrParse) {
				t.Errorf("parseHits() error = %v, want an ErrParse", err)
				return
			}
			if !reflect.DeepEqual(gotHits, tt.wantHits) {
				t.Errorf("parseHits() = %+v, want %+v", gotHits, tt.wantHits)
			}
		})
	}
}

// a malformed row after valid ones should fail the whole parse, not
// silently drop the bad row
func Test_parseHits_failsOnLaterRow(t *testing.T) {
	raw := "q1\ts1\t98.5\t100\t1\t0\t1\t100\t1\t100\t1e-50\t200.0\n" +
		"q1\ts2\tbroken-row\n"

	if _, err := parseHits(raw); !errors.Is(err, ErrParse) {
		t.Errorf("parseHits() error = %v, want an ErrParse", err)
	}
}
