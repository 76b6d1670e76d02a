// Package sampling turns cumulative counter snapshots into bounded,
// rate-normalized sample intervals.
//
// The pipeline for one entity partition is:
//
//	Downsample -> Lead (pairwise delta against the raw successor) -> Normalizer
//
// Everything here is a pure function of its inputs; the package never reads
// the wall clock and holds no state between calls.
package sampling
