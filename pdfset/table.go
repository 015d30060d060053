package pdfset

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Table is a frozen frequency table over the byte alphabet.
//
// Every count is at least one, cumulative counts are exact prefix sums and
// the total fits in a uint32. A Table is never modified after construction,
// so it is safe for concurrent use.
type Table struct {
	freq  [SymbolCount]uint32
	cum   [SymbolCount]uint32 // cum[i] = sum of freq[0..i-1]
	total uint32
}

func newTable(freq *[SymbolCount]uint32) *Table {
	t := &Table{freq: *freq}
	var cum uint32
	for i, f := range t.freq {
		t.cum[i] = cum
		cum += f
	}
	t.total = cum
	return t
}

// FromCounts builds a table from stored counts, such as the result of
// Frequencies. It checks every invariant Finalize guarantees.
func FromCounts(counts []uint32) (*Table, error) {
	if len(counts) != SymbolCount {
		return nil, errors.Wrapf(ErrInvalidCounts, "got %d counts, want %d", len(counts), SymbolCount)
	}
	var freq [SymbolCount]uint32
	var sum uint64
	for i, c := range counts {
		if c == 0 {
			return nil, errors.Wrapf(ErrInvalidCounts, "symbol %d has zero count", i)
		}
		sum += uint64(c)
		freq[i] = c
	}
	if sum > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidCounts, "total %d overflows 32 bits", sum)
	}
	return newTable(&freq), nil
}

// SymbolCount returns the size of the alphabet.
func (t *Table) SymbolCount() int { return SymbolCount }

// Count returns the count of symbol.
func (t *Table) Count(symbol int) (uint32, error) {
	if symbol < 0 || symbol > MaxSymbol {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "count of %d", symbol)
	}
	return t.freq[symbol], nil
}

// Cumulative returns the sum of counts of all symbols below symbol.
func (t *Table) Cumulative(symbol int) (uint32, error) {
	if symbol < 0 || symbol > MaxSymbol {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "cumulative of %d", symbol)
	}
	return t.cum[symbol], nil
}

// Total returns the sum of all counts.
func (t *Table) Total() uint32 { return t.total }

// Locate returns the symbol whose range [Cumulative, Cumulative+Count)
// contains residual.
func (t *Table) Locate(residual uint64) (int, error) {
	if residual >= uint64(t.total) {
		return 0, errors.Wrapf(ErrProtocolViolation, "residual %d, total %d", residual, t.total)
	}

	// Rightmost symbol with cum <= residual; mid+1 never exceeds MaxSymbol.
	left, right := 0, MaxSymbol
	for left < right {
		mid := (left + right) / 2
		if uint64(t.cum[mid+1]) <= residual {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left, nil
}

// Frequencies returns a copy of the counts.
func (t *Table) Frequencies() [SymbolCount]uint32 { return t.freq }

// String lists the count of every symbol, one per line.
func (t *Table) String() string {
	var b strings.Builder
	for i, f := range t.freq {
		fmt.Fprintf(&b, "%03d: %d\n", i, f)
	}
	return b.String()
}
