package colorspace

import (
	"fmt"

	"colorconv/mat3"
	"colorconv/transfer"
)

// Conversion converts color values from one space to another.
//
// A conversion decodes the source transfer function, applies a single 3x3
// matrix and encodes with the target transfer function.  Conversions are
// immutable and can be shared between goroutines.
//
// The zero Conversion, as returned by Derive on error, passes values through
// unchanged.
type Conversion struct {
	src, dst Space
	cone     ConeSpace
	m        mat3.Mat3

	// stages to run; all false in the zero value
	decode, transform, encode bool
}

// Derive returns the conversion from src to dst, adapting between the two
// white points with the Bradford transform where they differ.
func Derive(src, dst Space) (Conversion, error) {
	return DeriveWith(src, dst, Bradford)
}

// DeriveWith is like Derive, but uses the given cone space for chromatic
// adaptation.
func DeriveWith(src, dst Space, cone ConeSpace) (Conversion, error) {
	if !cone.Valid() {
		return Conversion{}, fmt.Errorf("conversion %s -> %s: invalid cone space %d", src, dst, int(cone))
	}
	m, err := linearMatrix(src, dst, cone)
	if err != nil {
		return Conversion{}, fmt.Errorf("conversion %s -> %s: %w", src, dst, err)
	}
	return Conversion{
		src:        src,
		dst:        dst,
		cone:       cone,
		m:          m,
		decode:    !src.tf.IsLinear(),
		transform: m != mat3.Identity,
		encode:    !dst.tf.IsLinear(),
	}, nil
}

// linearMatrix composes source RGB -> XYZ -> adapted XYZ -> target RGB.
func linearMatrix(src, dst Space, cone ConeSpace) (mat3.Mat3, error) {
	if src.IsZero() || dst.IsZero() {
		return mat3.Mat3{}, fmt.Errorf("%w: zero value color space", ErrInvalidPrimaries)
	}
	if src.primaries == dst.primaries {
		return mat3.Identity, nil
	}

	fromXYZ, err := dst.toXYZ.Inverse()
	if err != nil {
		return mat3.Mat3{}, fmt.Errorf("%w: XYZ to %s: %w", ErrSingularMatrix, dst, err)
	}

	adapt, err := AdaptationWith(src.WhitePoint(), dst.WhitePoint(), cone)
	if err != nil {
		return mat3.Mat3{}, err
	}

	return mat3.Chain(src.toXYZ, adapt, fromXYZ), nil
}

// Convert maps the encoded value v of the source space to the encoded value
// of the target space.  Out-of-gamut results are returned unclamped.
func (c *Conversion) Convert(v mat3.Vec3) mat3.Vec3 {
	if c.decode {
		v = transfer.DecodeVec(c.src.tf, v)
	}
	if c.transform {
		v = c.m.Apply(v)
	}
	if c.encode {
		v = transfer.EncodeVec(c.dst.tf, v)
	}
	return v
}

// ConvertSlice converts every element of src and stores the results in dst,
// which must be at least as long as src.  dst and src may be the same slice.
func (c *Conversion) ConvertSlice(dst, src []mat3.Vec3) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = c.Convert(v)
	}
}

// Matrix returns the linear part of the conversion, mapping decoded source
// values to decoded target values.
func (c *Conversion) Matrix() mat3.Mat3 {
	if !c.transform {
		return mat3.Identity
	}
	return c.m
}

// Source returns the space converted from.
func (c *Conversion) Source() Space { return c.src }

// Target returns the space converted to.
func (c *Conversion) Target() Space { return c.dst }

// ConeSpace returns the cone space used for chromatic adaptation.
func (c *Conversion) ConeSpace() ConeSpace { return c.cone }

// IsIdentity reports whether the conversion leaves every value unchanged.
func (c *Conversion) IsIdentity() bool {
	return !c.transform && c.src.tf == c.dst.tf
}

// IsLinear reports whether the conversion is a pure matrix multiplication,
// with linear transfer functions on both sides.
func (c *Conversion) IsLinear() bool {
	return !c.decode && !c.encode
}

// Inverse returns the conversion in the opposite direction.
func (c *Conversion) Inverse() (Conversion, error) {
	return DeriveWith(c.dst, c.src, c.cone)
}
