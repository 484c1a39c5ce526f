package convert

import (
	"slices"
	"strings"

	"colorconv/bt2100"
	"colorconv/cie"
	cs "colorconv/colorspace"
	"colorconv/hsx"
	"colorconv/mat3"
)

// models maps the names accepted by --model to the coordinates of a color
// in that model.
var models = map[string]func(cs.Color) (mat3.Vec3, error){
	"xyy": func(c cs.Color) (mat3.Vec3, error) {
		p := cie.XyYFromColor(c)
		return mat3.Vec3{p.Chromaticity.X, p.Chromaticity.Y, p.Luminance}, nil
	},
	"uvy": func(c cs.Color) (mat3.Vec3, error) {
		p := cie.UVYFromColor(c)
		return mat3.Vec3{p.U, p.V, p.Luminance}, nil
	},
	"lab": func(c cs.Color) (mat3.Vec3, error) {
		p := cie.LabFromColor(c)
		return mat3.Vec3{p.L, p.A, p.B}, nil
	},
	"lch": func(c cs.Color) (mat3.Vec3, error) {
		p := cie.LabFromColor(c).LCh()
		return mat3.Vec3{p.L, p.C, p.H}, nil
	},
	"luv": func(c cs.Color) (mat3.Vec3, error) {
		p := cie.LuvFromColor(c)
		return mat3.Vec3{p.L, p.U, p.V}, nil
	},
	"hsl": func(c cs.Color) (mat3.Vec3, error) {
		p := hsx.HSLFromColor(c)
		return mat3.Vec3{p.H, p.S, p.L}, nil
	},
	"hsv": func(c cs.Color) (mat3.Vec3, error) {
		p := hsx.HSVFromColor(c)
		return mat3.Vec3{p.H, p.S, p.V}, nil
	},
	"hsi": func(c cs.Color) (mat3.Vec3, error) {
		p := hsx.HSIFromColor(c)
		return mat3.Vec3{p.H, p.S, p.I}, nil
	},
	"ictcp": func(c cs.Color) (mat3.Vec3, error) {
		p, err := bt2100.FromColor(c, bt2100.SDRWhite)
		return mat3.Vec3{p.I, p.Ct, p.Cp}, err
	},
}

func modelNames() string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
