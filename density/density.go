// Package density provides density shapes over the byte alphabet for use
// with pdfset.
package density

import (
	"math"

	"github.com/egonelbre/exp-pdfmodel/pdfset"
)

var (
	_ pdfset.Density = Gaussian{}
	_ pdfset.Density = Laplace{}
	_ pdfset.Density = Uniform{}
	_ pdfset.Density = Weights(nil)
	_ pdfset.Density = (*Histogram)(nil)
	_ pdfset.Density = Scaled{}
)

// distance returns |x - m|.
func distance(x int, m uint8) float64 {
	d := x - int(m)
	if d < 0 {
		d = -d
	}
	return float64(d)
}

// Gaussian is a bell curve around Mean. Width is the inverse spread: the
// curve narrows as Width grows, and its peak is Height*Width.
type Gaussian struct {
	Height float64
	Width  float64
	Mean   uint8
}

func (g Gaussian) Weight(x int) float64 {
	d := distance(x, g.Mean)
	return g.Height * g.Width * math.Exp(-1*g.Width*g.Width*d*d)
}

// Laplace is a two-sided exponential decay around Mean with peak Height.
type Laplace struct {
	Height float64
	Scale  float64
	Mean   uint8
}

func (l Laplace) Weight(x int) float64 {
	return l.Height * math.Exp(-distance(x, l.Mean)/l.Scale)
}

// Uniform gives every symbol the same weight.
type Uniform struct {
	Height float64
}

func (u Uniform) Weight(x int) float64 { return u.Height }

// Weights is a lookup table of weights; symbols past its end weigh zero.
type Weights []float64

func (w Weights) Weight(x int) float64 {
	if x < 0 || x >= len(w) {
		return 0
	}
	return w[x]
}

// Scaled multiplies a density by Factor.
type Scaled struct {
	Density pdfset.Density
	Factor  float64
}

func (s Scaled) Weight(x int) float64 {
	return s.Factor * s.Density.Weight(x)
}
