// Package stats holds the descriptive statistics and the two classical
// hypothesis tests used by the reports.
//
// Everything is a thin layer over gonum: stat for moments and correlation,
// distuv for the F and Student's t tail probabilities. Two conventions are
// worth knowing when comparing numbers with other tools:
//
//   - SampleStd divides by n-1 and is what grouped report tables show.
//     PopulationStd divides by n and is what the array lessons print.
//   - Quantiles use linear interpolation between closest ranks, so the
//     25%/50%/75% rows of Describe match common spreadsheet output.
//
// Degenerate inputs to OneWayANOVA and TTestInd are rejected with
// INSUFFICIENT_GROUPS or EMPTY_GROUP analysis errors instead of producing NaN.
package stats
