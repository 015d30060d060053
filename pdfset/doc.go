// Package pdfset turns a sum of density functions over the byte alphabet into
// an integer frequency table for a range coder.
//
// A Set collects Density values. Finalize sums their weights per symbol and
// quantizes the sum into a Table whose counts are all positive and whose total
// fits in 32 bits. The Table answers the queries a range coder needs:
// Count, Cumulative and Total while encoding, Locate while decoding.
//
//	set := pdfset.New(
//		density.Gaussian{Height: 10, Width: 5, Mean: 128},
//		density.Gaussian{Height: 10, Width: 2, Mean: 30},
//	)
//	table, err := set.Finalize()
//
// A Table is immutable and may be shared by any number of encoders and
// decoders.
package pdfset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pdfset'
func tracer() tracing.Trace {
	return tracing.Select("pdfset")
}
