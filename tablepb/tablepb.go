// Package tablepb stores frequency tables in protobuf wire format.
//
// The encoding matches the message
//
//	message Table {
//		repeated uint32 counts = 1 [packed = true];
//		fixed32 total = 2;
//	}
//
// so tables can be read by any protobuf implementation.
package tablepb

import (
	"math"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/egonelbre/exp-pdfmodel/pdfset"
)

const (
	countsField protowire.Number = 1
	totalField  protowire.Number = 2
)

// ErrTotalMismatch is returned by Unmarshal when the stored total disagrees
// with the stored counts.
var ErrTotalMismatch = errors.New("tablepb: total does not match counts")

// Marshal encodes t.
func Marshal(t *pdfset.Table) []byte {
	return Append(nil, t)
}

// Append appends the encoding of t to b.
func Append(b []byte, t *pdfset.Table) []byte {
	freq := t.Frequencies()

	var packed []byte
	for _, c := range freq {
		packed = protowire.AppendVarint(packed, uint64(c))
	}

	b = protowire.AppendTag(b, countsField, protowire.BytesType)
	b = protowire.AppendBytes(b, packed)
	b = protowire.AppendTag(b, totalField, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, t.Total())
	return b
}

// Unmarshal decodes a table written by Marshal. Counts may be packed or
// unpacked; unknown fields are skipped.
func Unmarshal(b []byte) (*pdfset.Table, error) {
	counts := make([]uint32, 0, pdfset.SymbolCount)
	var total uint32
	hasTotal := false
	var err error

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.Wrap(protowire.ParseError(n), "tablepb: tag")
		}
		b = b[n:]

		switch {
		case num == countsField && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, errors.Wrap(protowire.ParseError(n), "tablepb: counts")
			}
			b = b[n:]
			for len(packed) > 0 {
				v, n := protowire.ConsumeVarint(packed)
				if n < 0 {
					return nil, errors.Wrap(protowire.ParseError(n), "tablepb: packed count")
				}
				packed = packed[n:]
				if counts, err = appendCount(counts, v); err != nil {
					return nil, err
				}
			}

		case num == countsField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, errors.Wrap(protowire.ParseError(n), "tablepb: count")
			}
			b = b[n:]
			if counts, err = appendCount(counts, v); err != nil {
				return nil, err
			}

		case num == totalField && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return nil, errors.Wrap(protowire.ParseError(n), "tablepb: total")
			}
			b = b[n:]
			total, hasTotal = v, true

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, errors.Wrapf(protowire.ParseError(n), "tablepb: field %d", num)
			}
			b = b[n:]
		}

		if len(counts) > pdfset.SymbolCount {
			return nil, errors.Wrapf(pdfset.ErrInvalidCounts, "more than %d counts", pdfset.SymbolCount)
		}
	}

	t, err := pdfset.FromCounts(counts)
	if err != nil {
		return nil, errors.Wrap(err, "tablepb")
	}
	if hasTotal && t.Total() != total {
		return nil, errors.Wrapf(ErrTotalMismatch, "stored %d, counted %d", total, t.Total())
	}
	return t, nil
}

func appendCount(counts []uint32, v uint64) ([]uint32, error) {
	if v > math.MaxUint32 {
		return counts, errors.Wrapf(pdfset.ErrInvalidCounts, "count %d overflows 32 bits", v)
	}
	return append(counts, uint32(v)), nil
}
