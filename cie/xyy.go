package cie

import (
	cs "colorconv/colorspace"
	"colorconv/mat3"
)

// XyY is a chromaticity together with the luminance Y.
type XyY struct {
	Chromaticity cs.Chromaticity
	Luminance    mat3.Float
}

// XyYFromXYZ returns the xyY coordinates of v.  Black has no chromaticity
// of its own and gets the chromaticity of the white point w.
func XyYFromXYZ(v mat3.Vec3, w cs.WhitePoint) XyY {
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return XyY{Chromaticity: w.Chromaticity(), Luminance: v[1]}
	}
	return XyY{
		Chromaticity: cs.Chromaticity{X: v[0] / sum, Y: v[1] / sum},
		Luminance:    v[1],
	}
}

// XyYFromColor returns the xyY coordinates of c relative to the white of
// its space.
func XyYFromColor(c cs.Color) XyY {
	return XyYFromXYZ(c.XYZ(), c.Space.WhitePoint())
}

// XYZ returns the tristimulus value of p.
func (p XyY) XYZ() mat3.Vec3 {
	x, y := p.Chromaticity.X, p.Chromaticity.Y
	if y == 0 {
		return mat3.Vec3{}
	}
	s := p.Luminance / y
	return mat3.Vec3{x * s, p.Luminance, (1 - x - y) * s}
}

// In returns p, taken relative to the white of s, encoded in s.
func (p XyY) In(s cs.Space) (cs.Color, error) {
	return toSpace(p.XYZ(), s)
}

// UVY is the CIE 1976 UCS chromaticity u′v′ together with the luminance Y,
// sometimes written uvV.
type UVY struct {
	U, V      mat3.Float
	Luminance mat3.Float
}

// UVYFromXYZ returns the u′v′Y coordinates of v.  Black gets the
// chromaticity of the white point w.
func UVYFromXYZ(v mat3.Vec3, w cs.WhitePoint) UVY {
	u, vv, ok := ucs(v)
	if !ok {
		u, vv, _ = ucs(w.XYZ())
	}
	return UVY{U: u, V: vv, Luminance: v[1]}
}

// UVYFromColor returns the u′v′Y coordinates of c relative to the white of
// its space.
func UVYFromColor(c cs.Color) UVY {
	return UVYFromXYZ(c.XYZ(), c.Space.WhitePoint())
}

func (p UVY) XYZ() mat3.Vec3 {
	return fromUCS(p.U, p.V, p.Luminance)
}

func (p UVY) In(s cs.Space) (cs.Color, error) {
	return toSpace(p.XYZ(), s)
}
