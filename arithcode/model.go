// Package arithcode implements a range coder over integer frequency models.
// The coder keeps a 64-bit state, so models may use totals up to the full
// 32-bit range.
package arithcode

import (
	"math"

	"github.com/pkg/errors"
)

// Model defines the interface for probability models used by the coder.
// Counts of all symbols partition [0, Total()) into consecutive ranges.
type Model interface {
	// SymbolCount returns the total number of possible symbols in this model.
	SymbolCount() int

	// Count returns the frequency of symbol. It is never zero.
	Count(symbol int) (uint32, error)

	// Cumulative returns the sum of the frequencies of all symbols below symbol.
	Cumulative(symbol int) (uint32, error)

	// Total returns the sum of all symbol frequencies.
	Total() uint32

	// Locate returns the symbol whose range contains residual.
	// The residual must be in [0, Total()).
	Locate(residual uint64) (int, error)
}

// UniformModel implements a model where all symbols have equal probability.
type UniformModel struct {
	numSymbols int
}

// NewUniformModel creates a uniform probability model with the given number of symbols.
func NewUniformModel(numSymbols int) *UniformModel {
	if numSymbols <= 0 || uint64(numSymbols) > math.MaxUint32 {
		panic("numSymbols must be positive and fit 32 bits")
	}
	return &UniformModel{numSymbols: numSymbols}
}

func (m *UniformModel) SymbolCount() int {
	return m.numSymbols
}

func (m *UniformModel) Count(symbol int) (uint32, error) {
	if symbol < 0 || symbol >= m.numSymbols {
		return 0, errors.Wrapf(ErrSymbolRange, "symbol %d of %d", symbol, m.numSymbols)
	}
	return 1, nil
}

func (m *UniformModel) Cumulative(symbol int) (uint32, error) {
	if symbol < 0 || symbol >= m.numSymbols {
		return 0, errors.Wrapf(ErrSymbolRange, "symbol %d of %d", symbol, m.numSymbols)
	}
	return uint32(symbol), nil
}

func (m *UniformModel) Total() uint32 {
	return uint32(m.numSymbols)
}

func (m *UniformModel) Locate(residual uint64) (int, error) {
	if residual >= uint64(m.numSymbols) {
		return 0, errors.Wrapf(ErrResidualRange, "residual %d of %d", residual, m.numSymbols)
	}
	return int(residual), nil
}

// FrequencyTable implements a model with custom symbol frequencies.
type FrequencyTable struct {
	cumFreqs []uint32 // cumFreqs[i] = sum of freqs[0..i-1]
	total    uint32
}

// NewFrequencyTable creates a model from the given symbol frequencies.
// Every frequency must be positive and their sum must fit 32 bits.
func NewFrequencyTable(frequencies []uint32) (*FrequencyTable, error) {
	if len(frequencies) == 0 {
		return nil, errors.New("arithcode: frequencies must not be empty")
	}

	cumFreqs := make([]uint32, len(frequencies)+1)

	var total uint64
	for i, freq := range frequencies {
		if freq == 0 {
			return nil, errors.Errorf("arithcode: frequency of symbol %d is zero", i)
		}
		total += uint64(freq)
		if total > math.MaxUint32 {
			return nil, errors.Errorf("arithcode: total frequency overflows at symbol %d", i)
		}
		cumFreqs[i+1] = uint32(total)
	}

	return &FrequencyTable{
		cumFreqs: cumFreqs,
		total:    uint32(total),
	}, nil
}

func (ft *FrequencyTable) SymbolCount() int {
	return len(ft.cumFreqs) - 1
}

func (ft *FrequencyTable) Count(symbol int) (uint32, error) {
	if symbol < 0 || symbol >= ft.SymbolCount() {
		return 0, errors.Wrapf(ErrSymbolRange, "symbol %d of %d", symbol, ft.SymbolCount())
	}
	return ft.cumFreqs[symbol+1] - ft.cumFreqs[symbol], nil
}

func (ft *FrequencyTable) Cumulative(symbol int) (uint32, error) {
	if symbol < 0 || symbol >= ft.SymbolCount() {
		return 0, errors.Wrapf(ErrSymbolRange, "symbol %d of %d", symbol, ft.SymbolCount())
	}
	return ft.cumFreqs[symbol], nil
}

func (ft *FrequencyTable) Total() uint32 {
	return ft.total
}

func (ft *FrequencyTable) Locate(residual uint64) (int, error) {
	if residual >= uint64(ft.total) {
		return 0, errors.Wrapf(ErrResidualRange, "residual %d of %d", residual, ft.total)
	}

	// Binary search for the symbol
	left, right := 0, len(ft.cumFreqs)-1
	for left < right-1 {
		mid := (left + right) / 2
		if uint64(ft.cumFreqs[mid]) <= residual {
			left = mid
		} else {
			right = mid
		}
	}
	return left, nil
}
