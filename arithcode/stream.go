package arithcode

import (
	"io"

	"github.com/pkg/errors"
)

// maxLengthBytes bounds the length prefix: 7 bits per byte cover 63 bits.
const maxLengthBytes = 9

// Compress encodes data as a length prefix followed by every byte coded with
// model. The model must have 256 symbols.
func Compress(w io.Writer, data []byte, model Model) error {
	if model.SymbolCount() != 256 {
		return ErrSymbolCount
	}
	enc := NewEncoder(w)
	byteModel := NewUniformModel(256)

	// Encode length as variable-length quantity
	length := uint64(len(data))
	for {
		b := byte(length & 0x7F)
		length >>= 7
		if length > 0 {
			b |= 0x80 // More bytes to come
		}
		if err := enc.Encode(int(b), byteModel); err != nil {
			return errors.Wrap(err, "length")
		}
		if length == 0 {
			break
		}
	}

	for i, b := range data {
		if err := enc.Encode(int(b), model); err != nil {
			return errors.Wrapf(err, "byte %d", i)
		}
	}

	return enc.Close()
}

// Decompress decodes a stream written by Compress with the same model.
func Decompress(r io.Reader, model Model) ([]byte, error) {
	if model.SymbolCount() != 256 {
		return nil, ErrSymbolCount
	}
	dec, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}
	byteModel := NewUniformModel(256)

	// Decode the length
	var length uint64
	for i := 0; ; i++ {
		if i == maxLengthBytes {
			return nil, errors.New("arithcode: length prefix too long")
		}
		symbol, err := dec.Decode(byteModel)
		if err != nil {
			return nil, errors.Wrap(err, "length")
		}
		length |= uint64(symbol&0x7F) << (7 * i)
		if symbol&0x80 == 0 {
			break
		}
	}

	// Grow as we go; a corrupt length must not allocate up front
	var result []byte
	for uint64(len(result)) < length {
		symbol, err := dec.Decode(model)
		if err != nil {
			return nil, errors.Wrapf(err, "byte %d", len(result))
		}
		result = append(result, byte(symbol))
	}

	return result, nil
}
