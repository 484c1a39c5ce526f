// Package cie implements the CIE color models built on top of XYZ: xyY,
// u′v′Y, L*a*b* with its polar form LCh, and L*u*v*.
//
// The models are relative to a reference white, which is always the white
// point of the color space a value comes from or is converted to.  For
// values relative to a fixed white, convert to one of the CIE XYZ spaces
// first, e.g. spaces.CIEXYZD50 for ICC style D50 Lab.
package cie

import (
	"math"

	cs "colorconv/colorspace"
	"colorconv/mat3"
)

// conversions from XYZ into RGB spaces
var cache cs.Cache

// toSpace converts v, relative to the white of s, into s.
func toSpace(v mat3.Vec3, s cs.Space) (cs.Color, error) {
	xyz, err := cs.XYZ(s.WhitePoint())
	if err != nil {
		return cs.Color{}, err
	}
	conv, err := cache.Derive(xyz, s)
	if err != nil {
		return cs.Color{}, err
	}
	return cs.Color{Value: conv.Convert(v), Space: s}, nil
}

// CIE 1976 constants, in their exact rational form.
const (
	epsilon = 216.0 / 24389
	kappa   = 24389.0 / 27
)

// compress is the L*a*b* companding function of a white-relative
// tristimulus component.
func compress(t mat3.Float) mat3.Float {
	if t > epsilon {
		return mat3.Float(math.Cbrt(float64(t)))
	}
	return (kappa*t + 16) / 116
}

func uncompress(ft mat3.Float) mat3.Float {
	if ft3 := ft * ft * ft; ft3 > epsilon {
		return ft3
	}
	return (116*ft - 16) / kappa
}

// lightness returns L* of the white-relative luminance y.
func lightness(y mat3.Float) mat3.Float {
	return 116*compress(y) - 16
}

// ucs returns the CIE 1976 UCS chromaticity of v.  ok is false if v has no
// chromaticity.
func ucs(v mat3.Vec3) (u, w mat3.Float, ok bool) {
	d := v[0] + 15*v[1] + 3*v[2]
	if d == 0 {
		return 0, 0, false
	}
	return 4 * v[0] / d, 9 * v[1] / d, true
}

// fromUCS returns the tristimulus value with chromaticity (u, w) and
// luminance y.
func fromUCS(u, w, y mat3.Float) mat3.Vec3 {
	if w == 0 {
		return mat3.Vec3{}
	}
	return mat3.Vec3{
		y * 9 * u / (4 * w),
		y,
		y * (12 - 3*u - 20*w) / (4 * w),
	}
}
