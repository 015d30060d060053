package arithcode

import (
	"bufio"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Decoder decompresses symbols written by Encoder.
type Decoder struct {
	input *bufio.Reader
	low   uint64 // Lower bound of the current interval
	rng   uint64 // Width of the current interval
	code  uint64 // Current window of the encoded value
}

// NewDecoder creates a new range decoder that reads from r.
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{
		input: bufio.NewReader(r),
		rng:   math.MaxUint64,
	}

	// Read the initial window
	for i := 0; i < stateBytes; i++ {
		b, err := d.input.ReadByte()
		if err != nil {
			if err == io.EOF && i == 0 {
				return nil, ErrEmptyInput
			}
			return nil, unexpectedEOF(err)
		}
		d.code = d.code<<8 | uint64(b)
	}

	return d, nil
}

// Decode reads and returns the next symbol using the given model.
func (d *Decoder) Decode(model Model) (int, error) {
	total := model.Total()
	if total == 0 {
		return 0, ErrZeroTotal
	}

	// Position of the code within the current interval, in model units
	r := d.rng / uint64(total)
	residual := (d.code - d.low) / r

	symbol, err := model.Locate(residual)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	count, err := model.Count(symbol)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	cum, err := model.Cumulative(symbol)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}

	d.low += r * uint64(cum)
	d.rng = r * uint64(count)

	if err := d.normalize(); err != nil {
		return 0, err
	}
	return symbol, nil
}

// normalize mirrors Encoder.normalize, shifting in bytes instead of out.
func (d *Decoder) normalize() error {
	for {
		if d.low^(d.low+d.rng) >= top {
			if d.rng >= bottom {
				return nil
			}
			d.rng = -d.low & (bottom - 1)
		}

		// The encoder flushes its whole state, so a complete stream
		// never runs dry here
		b, err := d.input.ReadByte()
		if err != nil {
			return unexpectedEOF(err)
		}
		d.code = d.code<<8 | uint64(b)
		d.low <<= 8
		d.rng <<= 8
	}
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return errors.WithStack(io.ErrUnexpectedEOF)
	}
	return err
}
