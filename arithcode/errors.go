package arithcode

import "github.com/pkg/errors"

var (
	// ErrSymbolRange is returned by the models in this package for symbols
	// they do not have.
	ErrSymbolRange = errors.New("arithcode: symbol out of range")

	// ErrResidualRange is returned by Locate of the models in this package
	// when the residual is not below the total.
	ErrResidualRange = errors.New("arithcode: residual out of range")

	// ErrClosed is returned when encoding after Close.
	ErrClosed = errors.New("arithcode: encoder closed")

	// ErrEmptyInput is returned by NewDecoder when the input has no bytes.
	ErrEmptyInput = errors.New("arithcode: empty input")

	// ErrSymbolCount is returned by Compress and Decompress for models that
	// do not cover the byte alphabet.
	ErrSymbolCount = errors.New("arithcode: model must have 256 symbols")

	// ErrZeroTotal is returned for models whose total frequency is zero.
	ErrZeroTotal = errors.New("arithcode: model total is zero")
)
