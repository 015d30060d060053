package arithcode

import (
	"bufio"
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	// stateBytes is the width of the coder state in bytes.
	stateBytes = 8
	// top is the weight of the lowest bit of the leading state byte.
	// Once low and low+rng agree above top, that byte is settled.
	top uint64 = 1 << 56
	// bottom is the smallest range kept after normalization. It exceeds any
	// 32-bit total, so rng/total is always at least 1<<16.
	bottom uint64 = 1 << 48
)

// Encoder compresses symbols using range coding.
// It never propagates carries: when the range straddles a byte boundary and
// becomes smaller than bottom, it is cut down to end on that boundary.
type Encoder struct {
	output *bufio.Writer
	low    uint64 // Lower bound of the current interval
	rng    uint64 // Width of the current interval
	closed bool
}

// NewEncoder creates a new range encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		output: bufio.NewWriter(w),
		low:    0,
		rng:    math.MaxUint64,
	}
}

// Encode writes a symbol using the given model.
func (e *Encoder) Encode(symbol int, model Model) error {
	if e.closed {
		return ErrClosed
	}

	count, err := model.Count(symbol)
	if err != nil {
		return errors.Wrap(err, "encode")
	}
	cum, err := model.Cumulative(symbol)
	if err != nil {
		return errors.Wrap(err, "encode")
	}
	total := model.Total()
	if total == 0 {
		return ErrZeroTotal
	}

	// Narrow the interval to the symbol's share
	r := e.rng / uint64(total)
	e.low += r * uint64(cum)
	e.rng = r * uint64(count)

	return e.normalize()
}

// normalize shifts out settled bytes until the range is at least bottom.
func (e *Encoder) normalize() error {
	for {
		if e.low^(e.low+e.rng) >= top {
			if e.rng >= bottom {
				return nil
			}
			// Underflow: cut the range at the next bottom boundary
			e.rng = -e.low & (bottom - 1)
		}
		if err := e.output.WriteByte(byte(e.low >> 56)); err != nil {
			return err
		}
		e.low <<= 8
		e.rng <<= 8
	}
}

// Close flushes the final state. The encoder cannot be used afterwards.
func (e *Encoder) Close() error {
	if e.closed {
		return ErrClosed
	}
	e.closed = true

	for i := 0; i < stateBytes; i++ {
		if err := e.output.WriteByte(byte(e.low >> 56)); err != nil {
			return err
		}
		e.low <<= 8
	}

	return e.output.Flush()
}
