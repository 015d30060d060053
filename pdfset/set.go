package pdfset

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// SymbolCount is the size of the alphabet.
	SymbolCount = 256
	// MaxSymbol is the largest symbol.
	MaxSymbol = SymbolCount - 1

	// Capacity is the mass shared out by quantization. Every symbol gets one
	// more on top, so the total never exceeds math.MaxUint32.
	Capacity = math.MaxUint32 - SymbolCount
)

// Density is a non-negative weight per symbol. Densities need not be
// normalized.
type Density interface {
	// Weight returns the weight of symbol, which is in [0, 255].
	Weight(symbol int) float64
}

// DensityFunc adapts a func to Density.
type DensityFunc func(symbol int) float64

// Weight returns fn(symbol).
func (fn DensityFunc) Weight(symbol int) float64 { return fn(symbol) }

// Set is an ordered collection of densities whose sum is quantized by
// Finalize. The zero value is an empty set ready for use.
type Set struct {
	densities []Density
	finalized bool
}

// New returns a set holding densities.
func New(densities ...Density) *Set {
	return &Set{densities: append([]Density(nil), densities...)}
}

// Add appends d to the set.
func (s *Set) Add(d Density) {
	if s.finalized {
		panic("pdfset: Add after Finalize")
	}
	s.densities = append(s.densities, d)
}

// Len returns the number of densities in the set.
func (s *Set) Len() int { return len(s.densities) }

// Finalize sums the densities and quantizes the result into a Table.
// The set is consumed and cannot be used afterwards.
func (s *Set) Finalize() (*Table, error) {
	if s.finalized {
		return nil, ErrFinalized
	}
	densities := s.densities
	s.densities, s.finalized = nil, true

	var raw [SymbolCount]float64
	for x := range raw {
		var sum float64
		for _, d := range densities {
			sum += d.Weight(x)
		}
		raw[x] = sum
	}

	var totalRaw float64
	for x, w := range raw {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.Wrapf(ErrInvalidDensity, "symbol %d has weight %v", x, w)
		}
		if w < 0 {
			return nil, errors.Wrapf(ErrInvalidDensity, "symbol %d has negative weight %v", x, w)
		}
		totalRaw += w
	}
	if math.IsInf(totalRaw, 0) {
		return nil, errors.Wrap(ErrInvalidDensity, "total weight overflows float64")
	}
	if totalRaw <= 0 {
		return nil, errors.Wrapf(ErrDegenerateDistribution, "total weight %v over %d densities", totalRaw, len(densities))
	}

	t := quantize(&raw, totalRaw)
	tracer().Debugf("finalized %d densities: total weight %g, total count %d", len(densities), totalRaw, t.total)
	return t, nil
}

// quantize scales raw to Capacity, adds the floor of one to every symbol and
// builds the cumulative counts.
func quantize(raw *[SymbolCount]float64, totalRaw float64) *Table {
	var freq [SymbolCount]uint32
	var sum uint64
	largest := 0
	for x, w := range raw {
		// The ratio is taken first; Capacity*w overflows for huge finite w.
		q := math.Floor(Capacity * (w / totalRaw))
		if q > Capacity {
			q = Capacity
		}
		freq[x] = uint32(q) + 1
		sum += uint64(freq[x])
		if freq[x] > freq[largest] {
			largest = x
		}
	}

	// Rounding in the ratios can push the sum of floors past Capacity.
	if sum > math.MaxUint32 {
		excess := sum - math.MaxUint32
		tracer().Debugf("trimming %d from symbol %d to fit 32 bits", excess, largest)
		freq[largest] -= uint32(excess)
	}

	return newTable(&freq)
}
