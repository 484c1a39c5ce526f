package cie

import (
	cs "colorconv/colorspace"
	"colorconv/mat3"
)

// Luv is a CIE 1976 L*u*v* color.
type Luv struct {
	L, U, V mat3.Float
}

// LuvFromXYZ returns the L*u*v* coordinates of v relative to the white w.
func LuvFromXYZ(v mat3.Vec3, w cs.WhitePoint) Luv {
	wx := w.XYZ()
	un, vn, _ := ucs(wx)
	l := lightness(v[1] / wx[1])
	u, vv, ok := ucs(v)
	if !ok {
		return Luv{L: l}
	}
	return Luv{L: l, U: 13 * l * (u - un), V: 13 * l * (vv - vn)}
}

// LuvFromColor returns the L*u*v* coordinates of c relative to the white of
// its space.
func LuvFromColor(c cs.Color) Luv {
	return LuvFromXYZ(c.XYZ(), c.Space.WhitePoint())
}

// XYZ returns the tristimulus value of l relative to the white w.
func (l Luv) XYZ(w cs.WhitePoint) mat3.Vec3 {
	if l.L == 0 {
		return mat3.Vec3{}
	}
	wx := w.XYZ()
	un, vn, _ := ucs(wx)
	y := uncompress((l.L+16)/116) * wx[1]
	return fromUCS(l.U/(13*l.L)+un, l.V/(13*l.L)+vn, y)
}

func (l Luv) In(s cs.Space) (cs.Color, error) {
	return toSpace(l.XYZ(s.WhitePoint()), s)
}
