// based on:
// https://bottosson.github.io/posts/oklab/
// https://bottosson.github.io/posts/colorwrong/#what-can-we-do%3F

package okcolor

import (
	"image/color"
	"math"

	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/spaces"
)

type Lab struct {
	L     mat3.Float // perceived lightness
	A     mat3.Float // how green/red the color is
	B     mat3.Float // how blue/yellow the color is
	Alpha uint16     // alpha
}

var (
	// linear sRGB to cone response
	toLMS = mat3.Mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	// cube rooted cone response to Lab
	lmsToLab = mat3.Mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	labToLMS = mat3.Mat3{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}
	fromLMS = mat3.Mat3{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

// conversions between linear sRGB and other spaces
var cache cs.Cache

var LabModel = color.ModelFunc(labConvert)

func labConvert(c color.Color) color.Color {
	switch lc := c.(type) {
	case Lab:
		return c
	case LCh:
		return lc.Lab()
	}

	col := linearRGBAConvert(c).(LinearRGBA)
	lab := FromLinearSRGB(mat3.Vec3{col.R, col.G, col.B})
	lab.Alpha = col.A
	return lab
}

// FromLinearSRGB returns the opaque Oklab color of a linear sRGB value.
// Values outside the sRGB gamut are converted as they are.
func FromLinearSRGB(rgb mat3.Vec3) Lab {
	lms := toLMS.Apply(rgb)
	for i, x := range lms {
		lms[i] = mat3.Float(math.Cbrt(float64(x)))
	}
	lab := lmsToLab.Apply(lms)
	return Lab{L: lab[0], A: lab[1], B: lab[2], Alpha: 0xffff}
}

// FromColor returns the Oklab coordinates of a color in any space.
func FromColor(c cs.Color) (Lab, error) {
	conv, err := cache.Derive(c.Space, spaces.LinearSRGB)
	if err != nil {
		return Lab{}, err
	}
	return FromLinearSRGB(conv.Convert(c.Value)), nil
}

// LinearSRGB returns lc as unclipped linear sRGB.
func (lc Lab) LinearSRGB() mat3.Vec3 {
	lms := labToLMS.Apply(mat3.Vec3{lc.L, lc.A, lc.B})
	for i, x := range lms {
		lms[i] = x * x * x
	}
	return fromLMS.Apply(lms)
}

// In returns lc encoded in the space s.
func (lc Lab) In(s cs.Space) (cs.Color, error) {
	conv, err := cache.Derive(spaces.LinearSRGB, s)
	if err != nil {
		return cs.Color{}, err
	}
	return cs.Color{Value: conv.Convert(lc.LinearSRGB()), Space: s}, nil
}

func (lc Lab) RGBA() (uint32, uint32, uint32, uint32) {
	rgb := lc.LinearSRGB()
	return LinearRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: lc.Alpha}.RGBA()
}

func (lc Lab) LCh() LCh {
	return LCh{
		L:     lc.L,
		C:     mat3.Float(math.Hypot(float64(lc.A), float64(lc.B))),
		H:     mat3.Float(math.Atan2(float64(lc.B), float64(lc.A))),
		Alpha: lc.Alpha,
	}
}

type LCh struct {
	L     mat3.Float // perceived lightness
	C     mat3.Float // chroma
	H     mat3.Float // hue in radians
	Alpha uint16     // alpha
}

var LChModel = color.ModelFunc(lchConvert)

func lchConvert(c color.Color) color.Color {
	switch lc := c.(type) {
	case LCh:
		return c
	case Lab:
		return lc.LCh()
	}

	return labConvert(c).(Lab).LCh()
}

func (lc LCh) RGBA() (uint32, uint32, uint32, uint32) {
	return lc.Lab().RGBA()
}

func (lc LCh) Lab() Lab {
	sin, cos := math.Sincos(float64(lc.H))
	return Lab{
		L:     lc.L,
		A:     lc.C * mat3.Float(cos),
		B:     lc.C * mat3.Float(sin),
		Alpha: lc.Alpha,
	}
}
