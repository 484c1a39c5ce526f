// Package bt2100 implements the ICtCp color representation of
// ITU-R BT.2100 for PQ encoded signals.
package bt2100

import (
	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/spaces"
	"colorconv/transfer"
)

// ICtCp is an intensity and two chroma components.
type ICtCp struct {
	I, Ct, Cp mat3.Float
}

// SDRWhite places linear 1.0 at the 203 cd/m² graphics white of
// ITU-R BT.2408.
var SDRWhite = transfer.PQ{Luminance: 203}

var (
	// linear BT.2020 to cone response
	toLMS = mat3.Mat3{
		{1688.0 / 4096, 2146.0 / 4096, 262.0 / 4096},
		{683.0 / 4096, 2951.0 / 4096, 462.0 / 4096},
		{99.0 / 4096, 309.0 / 4096, 3688.0 / 4096},
	}
	// PQ encoded cone response to ICtCp
	lmsToICtCp = mat3.Mat3{
		{0.5, 0.5, 0},
		{6610.0 / 4096, -13613.0 / 4096, 7003.0 / 4096},
		{17933.0 / 4096, -17390.0 / 4096, -543.0 / 4096},
	}

	fromLMS    = mustInverse(toLMS)
	ictcpToLMS = mustInverse(lmsToICtCp)
)

func mustInverse(m mat3.Mat3) mat3.Mat3 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// conversions between linear BT.2020 and other spaces
var cache cs.Cache

// FromColor returns the ICtCp coordinates of c.  The PQ curve pq fixes the
// luminance of linear 1.0 in the space of c.
func FromColor(c cs.Color, pq transfer.PQ) (ICtCp, error) {
	conv, err := cache.Derive(c.Space, spaces.LinearBT2020)
	if err != nil {
		return ICtCp{}, err
	}
	lms := transfer.EncodeVec(pq, toLMS.Apply(conv.Convert(c.Value)))
	v := lmsToICtCp.Apply(lms)
	return ICtCp{I: v[0], Ct: v[1], Cp: v[2]}, nil
}

// In returns v encoded in the space s, with linear 1.0 of s at the
// luminance of pq.
func (v ICtCp) In(s cs.Space, pq transfer.PQ) (cs.Color, error) {
	conv, err := cache.Derive(spaces.LinearBT2020, s)
	if err != nil {
		return cs.Color{}, err
	}
	lms := transfer.DecodeVec(pq, ictcpToLMS.Apply(mat3.Vec3{v.I, v.Ct, v.Cp}))
	return cs.Color{Value: conv.Convert(fromLMS.Apply(lms)), Space: s}, nil
}
