package colorspace

import (
	"errors"

	"colorconv/mat3"
)

var (
	// ErrInvalidPrimaries is returned for primaries that are collinear or
	// coincide, so that they do not span a color gamut.
	ErrInvalidPrimaries = errors.New("invalid primaries")

	// ErrDegenerateWhitePoint is returned for white points which cannot be
	// used as a reference white, e.g. because their luminance or one of
	// their cone responses is zero.
	ErrDegenerateWhitePoint = errors.New("degenerate white point")

	// ErrSingularMatrix is returned when the RGB to XYZ matrix of a target
	// space cannot be inverted.
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrCanonicalizationFailed is returned when a value has no named
	// equivalent.
	ErrCanonicalizationFailed = errors.New("no matching named value")
)

// epsilon bounds all degeneracy checks in this package.
const epsilon = mat3.Epsilon

// DetectTolerance is the maximal distance, per chromaticity coordinate,
// at which a custom white point or set of primaries is recognised as one of
// the named values.
const DetectTolerance = 1e-4
