package pdfset

import (
	"github.com/pkg/errors"
)

var (
	// ErrDegenerateDistribution is returned by Finalize when the summed
	// weight over all symbols is not positive.
	ErrDegenerateDistribution = errors.New("pdfset: degenerate distribution")

	// ErrInvalidDensity is returned by Finalize when a summed weight is NaN,
	// infinite or negative.
	ErrInvalidDensity = errors.New("pdfset: invalid density")

	// ErrIndexOutOfRange is returned for symbols outside [0, 255].
	ErrIndexOutOfRange = errors.New("pdfset: symbol out of range")

	// ErrProtocolViolation is returned by Locate when the residual is not
	// below Total. It means the decoder state is corrupt.
	ErrProtocolViolation = errors.New("pdfset: residual out of range")

	// ErrFinalized is returned when Finalize is called on a consumed set.
	ErrFinalized = errors.New("pdfset: set already finalized")

	// ErrInvalidCounts is returned by FromCounts for counts that cannot form
	// a table.
	ErrInvalidCounts = errors.New("pdfset: invalid counts")
)
