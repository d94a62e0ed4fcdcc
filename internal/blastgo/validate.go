package blastgo

import "regexp"

// dnaPattern matches strings made of the four nucleotide letters, either case.
// Anchored at both ends, so the empty string never matches.
var dnaPattern = regexp.MustCompile(`^[ATCGatcg]+$`)

// IsDNA returns whether seq is a valid DNA sequence: one or more of
// A, T, C and G in either case and nothing else.
func IsDNA(seq string) bool {
	return dnaPattern.MatchString(seq)
}
