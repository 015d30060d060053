package pdfset

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func gaussian(h, w float64, m int) Density {
	return DensityFunc(func(x int) float64 {
		d := float64(x - m)
		return h * w * math.Exp(-1*w*w*d*d)
	})
}

func constant(v float64) Density {
	return DensityFunc(func(int) float64 { return v })
}

func simpleSet() *Set {
	return New(
		gaussian(10, 5, 128),
		gaussian(10, 2, 30),
		gaussian(2, 5, 70),
	)
}

func largeSet() *Set {
	return New(
		gaussian(math.MaxFloat64, 0x1p-1022, 128),
		gaussian(10, 2, 30),
		gaussian(2, 5, 70),
	)
}

func mustFinalize(t *testing.T, s *Set) *Table {
	t.Helper()
	table, err := s.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %+v", err)
	}
	return table
}

// checkInvariants verifies the sum, prefix, positivity and headroom
// properties of a table.
func checkInvariants(t *testing.T, table *Table) {
	t.Helper()

	var sum uint64
	var prev uint32
	for i := 0; i < SymbolCount; i++ {
		count, err := table.Count(i)
		if err != nil {
			t.Fatalf("Count(%d): %v", i, err)
		}
		cum, err := table.Cumulative(i)
		if err != nil {
			t.Fatalf("Cumulative(%d): %v", i, err)
		}
		if count < 1 {
			t.Errorf("Count(%d) = 0", i)
		}
		if i == 0 && cum != 0 {
			t.Errorf("Cumulative(0) = %d", cum)
		}
		if i > 0 {
			prevCount, _ := table.Count(i - 1)
			if cum != prev+prevCount {
				t.Errorf("Cumulative(%d) = %d, want %d", i, cum, prev+prevCount)
			}
		}
		prev = cum
		sum += uint64(count)
	}

	if sum != uint64(table.Total()) {
		t.Errorf("sum of counts %d != total %d", sum, table.Total())
	}
	if sum > math.MaxUint32 {
		t.Errorf("total %d overflows 32 bits", sum)
	}
}

// checkFullRange verifies that quantization handed out nearly all of the
// 32-bit range.
func checkFullRange(t *testing.T, table *Table) {
	t.Helper()
	if float64(table.Total()) < 0.9999999*math.MaxUint32 {
		t.Errorf("total %d does not use the full range", table.Total())
	}
}

func TestFinalizeSimple(t *testing.T) {
	table := mustFinalize(t, simpleSet())
	checkInvariants(t, table)
	checkFullRange(t, table)

	peak, _ := table.Count(30)
	tail, _ := table.Count(200)
	if peak <= tail {
		t.Errorf("Count(30) = %d not above Count(200) = %d", peak, tail)
	}
	if tail != 1 {
		t.Errorf("Count(200) = %d, want floor of 1", tail)
	}
}

func TestFinalizeLarge(t *testing.T) {
	table := mustFinalize(t, largeSet())
	checkInvariants(t, table)
	checkFullRange(t, table)
}

func TestFinalizeDominantSymbol(t *testing.T) {
	weights := make([]float64, SymbolCount)
	for i := range weights {
		weights[i] = 1e-300
	}
	weights[128] = 1e300

	table := mustFinalize(t, New(DensityFunc(func(x int) float64 { return weights[x] })))
	checkInvariants(t, table)

	for i := 0; i < SymbolCount; i++ {
		count, _ := table.Count(i)
		want := uint32(1)
		if i == 128 {
			want = Capacity + 1
		}
		if count != want {
			t.Errorf("Count(%d) = %d, want %d", i, count, want)
		}
	}
	if table.Total() != math.MaxUint32 {
		t.Errorf("Total = %d, want %d", table.Total(), uint32(math.MaxUint32))
	}
}

func TestFinalizeUniform(t *testing.T) {
	table := mustFinalize(t, New(constant(0.25)))
	checkInvariants(t, table)

	want := uint32(Capacity/SymbolCount + 1)
	for i := 0; i < SymbolCount; i++ {
		if count, _ := table.Count(i); count != want {
			t.Fatalf("Count(%d) = %d, want %d", i, count, want)
		}
	}
}

func TestFinalizeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		set := &Set{}
		for n := 1 + rng.Intn(5); n > 0; n-- {
			scale := math.Pow(10, float64(rng.Intn(200)-100))
			weights := make([]float64, SymbolCount)
			for i := range weights {
				if rng.Intn(3) > 0 {
					weights[i] = scale * rng.Float64()
				}
			}
			set.Add(DensityFunc(func(x int) float64 { return weights[x] }))
		}
		table, err := set.Finalize()
		if errors.Is(err, ErrDegenerateDistribution) {
			continue
		}
		if err != nil {
			t.Fatalf("trial %d: %+v", trial, err)
		}
		checkInvariants(t, table)
	}
}

func TestFinalizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
	}{
		{"empty", New()},
		{"zero", New(constant(0))},
		{"zeros", New(constant(0), constant(0), gaussian(0, 1, 10))},
		{"negative zero", New(constant(math.Copysign(0, -1)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := tt.set.Finalize()
			if !errors.Is(err, ErrDegenerateDistribution) {
				t.Errorf("error = %v, want ErrDegenerateDistribution", err)
			}
			if table != nil {
				t.Error("table returned with error")
			}
		})
	}
}

func TestFinalizeInvalid(t *testing.T) {
	tests := []struct {
		name string
		set  *Set
	}{
		{"nan", New(constant(1), DensityFunc(func(x int) float64 {
			if x == 17 {
				return math.NaN()
			}
			return 0
		}))},
		{"inf", New(DensityFunc(func(x int) float64 {
			if x == 255 {
				return math.Inf(1)
			}
			return 1
		}))},
		{"negative", New(constant(1), DensityFunc(func(x int) float64 {
			if x == 3 {
				return -2
			}
			return 0
		}))},
		{"symbol overflow", New(constant(math.MaxFloat64), constant(math.MaxFloat64))},
		{"total overflow", New(constant(1e308))},
		{"extreme height", New(gaussian(math.MaxFloat64, 2, 128))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := tt.set.Finalize()
			if !errors.Is(err, ErrInvalidDensity) {
				t.Errorf("error = %v, want ErrInvalidDensity", err)
			}
			if table != nil {
				t.Error("table returned with error")
			}
		})
	}
}

func TestFinalizeConsumesSet(t *testing.T) {
	set := simpleSet()
	if set.Len() != 3 {
		t.Fatalf("Len = %d", set.Len())
	}
	mustFinalize(t, set)

	if set.Len() != 0 {
		t.Errorf("Len after Finalize = %d", set.Len())
	}
	if _, err := set.Finalize(); !errors.Is(err, ErrFinalized) {
		t.Errorf("second Finalize: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Add after Finalize did not panic")
		}
	}()
	set.Add(constant(1))
}

func TestFinalizeOrderIndependent(t *testing.T) {
	a := mustFinalize(t, New(gaussian(10, 0.1, 40), constant(0.5), gaussian(3, 0.05, 200)))
	b := mustFinalize(t, New(gaussian(3, 0.05, 200), gaussian(10, 0.1, 40), constant(0.5)))
	fa, fb := a.Frequencies(), b.Frequencies()
	for i := range fa {
		// Summation order may differ in the last bit of the float sum
		d := int64(fa[i]) - int64(fb[i])
		if d < -1 || d > 1 {
			t.Errorf("symbol %d: %d vs %d", i, fa[i], fb[i])
		}
	}
}

func TestTableString(t *testing.T) {
	table := mustFinalize(t, New(constant(1)))
	lines := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	if len(lines) != SymbolCount {
		t.Fatalf("got %d lines", len(lines))
	}
	want := "007: 16777215"
	if lines[7] != want {
		t.Errorf("line 7 = %q, want %q", lines[7], want)
	}
}
