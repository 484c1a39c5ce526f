package okcolor

import (
	"image/color"

	"colorconv/mat3"
	"colorconv/transfer"
)

// LinearRGBA is a non-premultiplied linear sRGB color.  Components are not
// limited to [0, 1].
type LinearRGBA struct {
	R mat3.Float
	G mat3.Float
	B mat3.Float
	A uint16
}

var LinearRGBAModel = color.ModelFunc(linearRGBAConvert)

func linearRGBAConvert(c color.Color) color.Color {
	if _, ok := c.(LinearRGBA); ok {
		return c
	}

	return sRGBToLinearRGB(color.NRGBA64Model.Convert(c).(color.NRGBA64))
}

// RGBA clamps lc to the sRGB gamut at 16 bit precision.
func (lc LinearRGBA) RGBA() (uint32, uint32, uint32, uint32) {
	return linearRGBToSRGB(lc).RGBA()
}

func linearRGBToSRGB(lc LinearRGBA) color.NRGBA64 {
	v := transfer.EncodeVec(transfer.SRGB{}, mat3.Vec3{lc.R, lc.G, lc.B})
	return color.NRGBA64{
		R: to16(v[0]),
		G: to16(v[1]),
		B: to16(v[2]),
		A: lc.A,
	}
}

func sRGBToLinearRGB(c color.NRGBA64) LinearRGBA {
	v := transfer.DecodeVec(transfer.SRGB{}, mat3.Vec3{
		mat3.Float(c.R) / 65535,
		mat3.Float(c.G) / 65535,
		mat3.Float(c.B) / 65535,
	})
	return LinearRGBA{R: v[0], G: v[1], B: v[2], A: c.A}
}

func to16(x mat3.Float) uint16 {
	return uint16(min(max(x, 0), 1)*65535 + 0.5)
}
