package cie

import (
	"math"

	cs "colorconv/colorspace"
	"colorconv/mat3"
)

// Lab is a CIE 1976 L*a*b* color.  L is 100 for the reference white.
type Lab struct {
	L, A, B mat3.Float
}

// LabFromXYZ returns the L*a*b* coordinates of v relative to the white w.
func LabFromXYZ(v mat3.Vec3, w cs.WhitePoint) Lab {
	wx := w.XYZ()
	fx := compress(v[0] / wx[0])
	fy := compress(v[1] / wx[1])
	fz := compress(v[2] / wx[2])
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabFromColor returns the L*a*b* coordinates of c relative to the white of
// its space.
func LabFromColor(c cs.Color) Lab {
	return LabFromXYZ(c.XYZ(), c.Space.WhitePoint())
}

// XYZ returns the tristimulus value of l relative to the white w.
func (l Lab) XYZ(w cs.WhitePoint) mat3.Vec3 {
	wx := w.XYZ()
	fy := (l.L + 16) / 116
	fx := fy + l.A/500
	fz := fy - l.B/200
	return mat3.Vec3{
		uncompress(fx) * wx[0],
		uncompress(fy) * wx[1],
		uncompress(fz) * wx[2],
	}
}

// In returns l, taken relative to the white of s, encoded in s.
func (l Lab) In(s cs.Space) (cs.Color, error) {
	return toSpace(l.XYZ(s.WhitePoint()), s)
}

func (l Lab) LCh() LCh {
	h := math.Atan2(float64(l.B), float64(l.A)) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCh{
		L: l.L,
		C: mat3.Float(math.Hypot(float64(l.A), float64(l.B))),
		H: mat3.Float(h),
	}
}

// DeltaE returns the CIE 1976 color difference of a and b.
func DeltaE(a, b Lab) mat3.Float {
	d := mat3.Vec3{a.L - b.L, a.A - b.A, a.B - b.B}
	return mat3.Float(math.Sqrt(float64(mat3.Dot(d, d))))
}

// LCh is the polar form of Lab.
type LCh struct {
	L mat3.Float // lightness
	C mat3.Float // chroma
	H mat3.Float // hue in degrees, in [0, 360)
}

func (c LCh) Lab() Lab {
	sin, cos := math.Sincos(float64(c.H) * math.Pi / 180)
	return Lab{
		L: c.L,
		A: c.C * mat3.Float(cos),
		B: c.C * mat3.Float(sin),
	}
}

func (c LCh) In(s cs.Space) (cs.Color, error) {
	return c.Lab().In(s)
}
