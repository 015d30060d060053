// Package pack compresses byte slices with a model fitted to the data.
//
// A packed stream carries its own model: the byte histogram of the input,
// smoothed by a uniform density, quantized by pdfset and stored with tablepb.
// The range coded body follows.
//
//	varint(len(table)) | table | arithcode stream
package pack

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"

	"github.com/egonelbre/exp-pdfmodel/arithcode"
	"github.com/egonelbre/exp-pdfmodel/density"
	"github.com/egonelbre/exp-pdfmodel/pdfset"
	"github.com/egonelbre/exp-pdfmodel/tablepb"
)

// tracer writes to trace with key 'pack'
func tracer() tracing.Trace {
	return tracing.Select("pack")
}

// maxTableSize bounds the stored table: 256 varints of at most 5 bytes plus
// tags and the total.
const maxTableSize = 256*5 + 16

// Options configures Compress.
type Options struct {
	// Smoothing is the weight every byte value gets on top of its count.
	// It keeps the model usable for bytes that did not occur.
	Smoothing float64
}

// DefaultOptions are used by the pdfpack command.
var DefaultOptions = Options{Smoothing: 0.5}

// Model builds the table Compress uses for data.
func Model(data []byte, opts Options) (*pdfset.Table, error) {
	set := pdfset.New(density.NewHistogram(data))
	if opts.Smoothing > 0 {
		set.Add(density.Uniform{Height: opts.Smoothing})
	}
	table, err := set.Finalize()
	if err != nil {
		return nil, errors.Wrap(err, "pack: model")
	}
	return table, nil
}

// Compress writes data to w in packed form.
func Compress(w io.Writer, data []byte, opts Options) error {
	table, err := Model(data, opts)
	if err != nil {
		return err
	}

	encoded := tablepb.Marshal(table)
	header := binary.AppendUvarint(nil, uint64(len(encoded)))
	header = append(header, encoded...)
	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "pack: header")
	}

	if err := arithcode.Compress(w, data, table); err != nil {
		return errors.Wrap(err, "pack: body")
	}
	tracer().Debugf("packed %d bytes with a %d byte model", len(data), len(encoded))
	return nil
}

// Decompress reads a packed stream from r.
func Decompress(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)

	size, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, errors.Wrap(err, "pack: table size")
	}
	if size > maxTableSize {
		return nil, errors.Errorf("pack: table size %d too large", size)
	}
	encoded := make([]byte, size)
	if _, err := io.ReadFull(br, encoded); err != nil {
		return nil, errors.Wrap(err, "pack: table")
	}

	table, err := tablepb.Unmarshal(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "pack: table")
	}

	data, err := arithcode.Decompress(br, table)
	if err != nil {
		return nil, errors.Wrap(err, "pack: body")
	}
	return data, nil
}
