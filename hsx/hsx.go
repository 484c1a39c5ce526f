// Package hsx implements the hue based HSL, HSV and HSI models.
//
// These are reparametrizations of the encoded RGB values of a color space.
// They carry no colorimetry of their own: an HSL triple means whatever its
// RGB value means in the space it is used with.  All three share the
// hexagonal hue, in degrees in [0, 360).
package hsx

import (
	"math"

	cs "colorconv/colorspace"
	"colorconv/mat3"
)

type HSL struct {
	H, S, L mat3.Float
}

type HSV struct {
	H, S, V mat3.Float
}

type HSI struct {
	H, S, I mat3.Float
}

// hue returns the hexagonal hue of rgb together with its largest and
// smallest component.  Grays have hue 0.
func hue(rgb mat3.Vec3) (h, hi, lo mat3.Float) {
	r, g, b := rgb[0], rgb[1], rgb[2]
	hi, lo = max(r, g, b), min(r, g, b)
	c := hi - lo
	switch {
	case c == 0:
		return 0, hi, lo
	case hi == r:
		h = mat3.Float(math.Mod(float64((g-b)/c), 6))
	case hi == g:
		h = (b-r)/c + 2
	default:
		h = (r-g)/c + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, hi, lo
}

// sector returns the hue in sixths of a turn, in [0, 6), and the
// relative size of the middle component.
func sector(h mat3.Float) (hp, z float64) {
	hp = math.Mod(float64(h)/60, 6)
	if hp < 0 {
		hp += 6
	}
	return hp, 1 - math.Abs(math.Mod(hp, 2)-1)
}

// fromHue returns the RGB value of hue h whose largest component exceeds
// the smallest one, m, by c.
func fromHue(h, c, m mat3.Float) mat3.Vec3 {
	hp, z := sector(h)
	x := c * mat3.Float(z)
	var rgb mat3.Vec3
	switch int(hp) {
	case 0:
		rgb = mat3.Vec3{c, x, 0}
	case 1:
		rgb = mat3.Vec3{x, c, 0}
	case 2:
		rgb = mat3.Vec3{0, c, x}
	case 3:
		rgb = mat3.Vec3{0, x, c}
	case 4:
		rgb = mat3.Vec3{x, 0, c}
	default:
		rgb = mat3.Vec3{c, 0, x}
	}
	return mat3.Vec3{rgb[0] + m, rgb[1] + m, rgb[2] + m}
}

func HSLFromRGB(rgb mat3.Vec3) HSL {
	h, hi, lo := hue(rgb)
	l := (hi + lo) / 2
	var s mat3.Float
	if d := 1 - abs(2*l-1); d != 0 {
		s = (hi - lo) / d
	}
	return HSL{H: h, S: s, L: l}
}

// HSLFromColor returns the HSL coordinates of the encoded value of c.
func HSLFromColor(c cs.Color) HSL {
	return HSLFromRGB(c.Value)
}

func (p HSL) RGB() mat3.Vec3 {
	c := (1 - abs(2*p.L-1)) * p.S
	return fromHue(p.H, c, p.L-c/2)
}

// Color returns the color of s whose encoded value has the coordinates p.
func (p HSL) Color(s cs.Space) cs.Color {
	return cs.Color{Value: p.RGB(), Space: s}
}

func HSVFromRGB(rgb mat3.Vec3) HSV {
	h, hi, lo := hue(rgb)
	var s mat3.Float
	if hi != 0 {
		s = (hi - lo) / hi
	}
	return HSV{H: h, S: s, V: hi}
}

// HSVFromColor returns the HSV coordinates of the encoded value of c.
func HSVFromColor(c cs.Color) HSV {
	return HSVFromRGB(c.Value)
}

func (p HSV) RGB() mat3.Vec3 {
	c := p.V * p.S
	return fromHue(p.H, c, p.V-c)
}

func (p HSV) Color(s cs.Space) cs.Color {
	return cs.Color{Value: p.RGB(), Space: s}
}

func HSIFromRGB(rgb mat3.Vec3) HSI {
	h, _, lo := hue(rgb)
	i := (rgb[0] + rgb[1] + rgb[2]) / 3
	var s mat3.Float
	if i != 0 {
		s = 1 - lo/i
	}
	return HSI{H: h, S: s, I: i}
}

// HSIFromColor returns the HSI coordinates of the encoded value of c.
func HSIFromColor(c cs.Color) HSI {
	return HSIFromRGB(c.Value)
}

func (p HSI) RGB() mat3.Vec3 {
	_, z := sector(p.H)
	c := 3 * p.I * p.S / mat3.Float(1+z)
	return fromHue(p.H, c, p.I*(1-p.S))
}

func (p HSI) Color(s cs.Space) cs.Color {
	return cs.Color{Value: p.RGB(), Space: s}
}

func abs(x mat3.Float) mat3.Float {
	if x < 0 {
		return -x
	}
	return x
}
