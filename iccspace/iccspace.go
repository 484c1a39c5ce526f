// Package iccspace reads color spaces from ICC matrix/TRC profiles and
// computes the colorant matrices such profiles store.
package iccspace

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/icc"

	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/transfer"
)

var (
	// ErrUnsupported is returned for profiles which are not three channel
	// matrix/TRC profiles with an XYZ connection space.
	ErrUnsupported = errors.New("unsupported ICC profile")

	// ErrMalformed is returned when a required tag is missing or truncated.
	ErrMalformed = errors.New("malformed ICC profile")
)

const (
	tagRedXYZ   icc.TagType = 0x7258595A // rXYZ
	tagGreenXYZ icc.TagType = 0x6758595A // gXYZ
	tagBlueXYZ  icc.TagType = 0x6258595A // bXYZ
	tagWhite    icc.TagType = 0x77747074 // wtpt
	tagAdapt    icc.TagType = 0x63686164 // chad
	tagRedTRC   icc.TagType = 0x72545243 // rTRC
	tagGreenTRC icc.TagType = 0x67545243 // gTRC
	tagBlueTRC  icc.TagType = 0x62545243 // bTRC
)

// PCSWhite is the D50 illuminant of the ICC profile connection space, as
// given in ICC.1 7.2.16.
var PCSWhite = mat3.Vec3{0.9642, 1, 0.8249}

// FromProfile returns the color space described by an ICC profile.
//
// Colorant and white point tags are stored adapted to the D50 connection
// space.  When the profile carries a chromatic adaptation tag its inverse is
// applied to recover the native primaries and white point; otherwise the
// media white point tag is taken as the native white.  Primaries and white
// points close to a named value are snapped to it.
//
// The three tone curves must be identical.  Parametric curves of all five
// ICC function types are accepted as long as they have no output offset;
// sampled curves are accepted when they follow a known curve.
func FromProfile(data []byte) (cs.Space, error) {
	p, err := icc.Decode(data)
	if err != nil {
		return cs.Space{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if p.ColorSpace != icc.RGBSpace {
		return cs.Space{}, fmt.Errorf("%w: device space %v", ErrUnsupported, p.ColorSpace)
	}
	if p.PCS != icc.CIEXYZSpace {
		return cs.Space{}, fmt.Errorf("%w: connection space %v", ErrUnsupported, p.PCS)
	}

	var cols [3]mat3.Vec3
	for i, tag := range []icc.TagType{tagRedXYZ, tagGreenXYZ, tagBlueXYZ} {
		cols[i], err = readXYZ(p.TagData, tag)
		if err != nil {
			return cs.Space{}, err
		}
	}
	colorants := mat3.FromCols(cols[0], cols[1], cols[2])

	native, white, err := undoAdaptation(p.TagData, colorants)
	if err != nil {
		return cs.Space{}, err
	}

	tf, err := readTRC(p.TagData)
	if err != nil {
		return cs.Space{}, err
	}

	w, err := cs.WhitePointFromXYZ(white)
	if err != nil {
		return cs.Space{}, err
	}
	var xy [3]cs.Chromaticity
	for i := range 3 {
		xy[i], err = chromaticity(native.Col(i))
		if err != nil {
			return cs.Space{}, err
		}
	}
	prim, err := cs.DetectPrimaries(xy[0], xy[1], xy[2], w)
	if err != nil {
		return cs.Space{}, err
	}
	name := readDescription(p.TagData)
	if name == "" {
		name = profileName(prim, tf)
	}
	return cs.NewSpace(name, prim, tf)
}

// PCSMatrix returns the matrix from linear RGB values of s to XYZ values
// relative to the D50 connection space white, using Bradford adaptation.
// The columns are what an ICC profile stores in its colorant tags.
func PCSMatrix(s cs.Space) (mat3.Mat3, error) {
	pcs, err := cs.WhitePointFromXYZ(PCSWhite)
	if err != nil {
		return mat3.Mat3{}, err
	}
	adapt, err := cs.Adaptation(s.WhitePoint(), pcs)
	if err != nil {
		return mat3.Mat3{}, err
	}
	return mat3.Chain(s.RGBToXYZ(), adapt), nil
}

// undoAdaptation returns the native colorant matrix and white point.
func undoAdaptation(tags map[icc.TagType][]byte, colorants mat3.Mat3) (mat3.Mat3, mat3.Vec3, error) {
	if data, ok := tags[tagAdapt]; ok {
		chad, err := parseSF32(data)
		if err != nil {
			return mat3.Mat3{}, mat3.Vec3{}, err
		}
		inv, err := chad.Inverse()
		if err != nil {
			return mat3.Mat3{}, mat3.Vec3{}, fmt.Errorf("%w: chad: %w", ErrMalformed, err)
		}
		return mat3.Mul(inv, colorants), inv.Apply(PCSWhite), nil
	}

	white := PCSWhite
	if _, ok := tags[tagWhite]; ok {
		v, err := readXYZ(tags, tagWhite)
		if err != nil {
			return mat3.Mat3{}, mat3.Vec3{}, err
		}
		white = v
	}
	if mat3.VecApproxEqual(white, PCSWhite, 1e-4) {
		return colorants, PCSWhite, nil
	}

	from, err := cs.WhitePointFromXYZ(PCSWhite)
	if err != nil {
		return mat3.Mat3{}, mat3.Vec3{}, err
	}
	to, err := cs.WhitePointFromXYZ(white)
	if err != nil {
		return mat3.Mat3{}, mat3.Vec3{}, err
	}
	adapt, err := cs.Adaptation(from, to)
	if err != nil {
		return mat3.Mat3{}, mat3.Vec3{}, err
	}
	return mat3.Mul(adapt, colorants), white, nil
}

func chromaticity(v mat3.Vec3) (cs.Chromaticity, error) {
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return cs.Chromaticity{}, fmt.Errorf("%w: zero colorant", cs.ErrInvalidPrimaries)
	}
	return cs.Chromaticity{X: v[0] / sum, Y: v[1] / sum}, nil
}

func profileName(p cs.Primaries, tf transfer.Func) string {
	if name := p.Name(); name != "" {
		return fmt.Sprintf("ICC %s, %s", name, tf)
	}
	return fmt.Sprintf("ICC profile, %s", tf)
}

func readXYZ(tags map[icc.TagType][]byte, tag icc.TagType) (mat3.Vec3, error) {
	data, ok := tags[tag]
	if !ok {
		return mat3.Vec3{}, fmt.Errorf("%w: missing %s tag", ErrMalformed, tagName(tag))
	}
	if len(data) < 20 || string(data[:4]) != "XYZ " {
		return mat3.Vec3{}, fmt.Errorf("%w: bad %s tag", ErrMalformed, tagName(tag))
	}
	return mat3.Vec3{s15Fixed16(data[8:]), s15Fixed16(data[12:]), s15Fixed16(data[16:])}, nil
}

func parseSF32(data []byte) (mat3.Mat3, error) {
	if len(data) < 8+9*4 || string(data[:4]) != "sf32" {
		return mat3.Mat3{}, fmt.Errorf("%w: bad chad tag", ErrMalformed)
	}
	var m mat3.Mat3
	for i := range 9 {
		m[i/3][i%3] = s15Fixed16(data[8+4*i:])
	}
	return m, nil
}

func s15Fixed16(b []byte) mat3.Float {
	return mat3.Float(int32(binary.BigEndian.Uint32(b))) / 65536
}

func u8Fixed8(b []byte) mat3.Float {
	return mat3.Float(binary.BigEndian.Uint16(b)) / 256
}

func tagName(tag icc.TagType) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(tag))
	return string(bytes.TrimRight(b[:], " "))
}

// readTRC decodes the shared tone curve of the three channels.
func readTRC(tags map[icc.TagType][]byte) (transfer.Func, error) {
	red, ok := tags[tagRedTRC]
	if !ok {
		return nil, fmt.Errorf("%w: missing rTRC tag", ErrMalformed)
	}
	for _, tag := range []icc.TagType{tagGreenTRC, tagBlueTRC} {
		if !bytes.Equal(tags[tag], red) {
			return nil, fmt.Errorf("%w: per channel tone curves", ErrUnsupported)
		}
	}
	return decodeCurve(red)
}

func decodeCurve(data []byte) (transfer.Func, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("%w: short curve", ErrMalformed)
	}
	switch string(data[:4]) {
	case "curv":
		n := int(binary.BigEndian.Uint32(data[8:]))
		if len(data) < 12+2*n {
			return nil, fmt.Errorf("%w: short curv tag", ErrMalformed)
		}
		switch n {
		case 0:
			return transfer.Linear{}, nil
		case 1:
			return gamma(u8Fixed8(data[12:]))
		}
		samples := make([]mat3.Float, n)
		for i := range samples {
			samples[i] = mat3.Float(binary.BigEndian.Uint16(data[12+2*i:])) / 65535
		}
		return matchSampled(samples)
	case "para":
		return decodeParametric(data)
	default:
		return nil, fmt.Errorf("%w: curve type %q", ErrUnsupported, data[:4])
	}
}

var paramCounts = [...]int{1, 3, 4, 5, 7}

func decodeParametric(data []byte) (transfer.Func, error) {
	kind := int(binary.BigEndian.Uint16(data[8:]))
	if kind >= len(paramCounts) {
		return nil, fmt.Errorf("%w: parametric curve type %d", ErrUnsupported, kind)
	}
	n := paramCounts[kind]
	if len(data) < 12+4*n {
		return nil, fmt.Errorf("%w: short para tag", ErrMalformed)
	}
	// g a b c d e f, missing entries are zero
	var v [7]mat3.Float
	for i := range n {
		v[i] = s15Fixed16(data[12+4*i:])
	}
	g, a, b, c, d, e, f := v[0], v[1], v[2], v[3], v[4], v[5], v[6]

	var curve transfer.Parametric
	switch kind {
	case 0:
		return gamma(g)
	case 1, 2:
		// Y = (aX+b)^g [+ c] for X >= -b/a, constant below
		if b != 0 || (kind == 2 && c != 0) {
			return nil, fmt.Errorf("%w: parametric curve with offset", ErrUnsupported)
		}
		curve = transfer.Parametric{G: g, A: a}
	case 3:
		curve = transfer.Parametric{G: g, A: a, B: b, C: c, D: d}
	case 4:
		if e != 0 || f != 0 {
			return nil, fmt.Errorf("%w: parametric curve with offset", ErrUnsupported)
		}
		curve = transfer.Parametric{G: g, A: a, B: b, C: c, D: d}
	}
	if err := transfer.Validate(curve); err != nil {
		return nil, err
	}
	if known, ok := nearKnown(curve, 2e-4); ok {
		return known, nil
	}
	return curve, nil
}

func gamma(g mat3.Float) (transfer.Func, error) {
	if g == 1 {
		return transfer.Linear{}, nil
	}
	tf := transfer.Gamma{Exponent: g}
	if err := transfer.Validate(tf); err != nil {
		return nil, err
	}
	return tf, nil
}

// knownCurves are the decode curves sampled and parametric tone curves are
// matched against.
var knownCurves = []transfer.Func{
	transfer.SRGB{},
	transfer.BT709,
	transfer.Gamma{Exponent: 2.2},
	transfer.Gamma{Exponent: 563.0 / 256},
	transfer.Gamma{Exponent: 1.8},
	transfer.Gamma{Exponent: 2.4},
	transfer.Gamma{Exponent: 2.6},
	transfer.Linear{},
}

// nearKnown returns the known curve closest to f if it stays within tol of
// f on a 256 point grid.
func nearKnown(f transfer.Func, tol float64) (transfer.Func, bool) {
	samples := make([]mat3.Float, 256)
	for i := range samples {
		samples[i] = f.Decode(mat3.Float(i) / 255)
	}
	return bestMatch(samples, tol)
}

// matchSampled maps a sampled tone curve onto a known curve.
func matchSampled(samples []mat3.Float) (transfer.Func, error) {
	if tf, ok := bestMatch(samples, 0.01); ok {
		return tf, nil
	}
	return nil, fmt.Errorf("%w: sampled tone curve with %d entries", ErrUnsupported, len(samples))
}

func bestMatch(samples []mat3.Float, tol float64) (transfer.Func, bool) {
	var best transfer.Func
	bestDev := math.Inf(1)
	last := mat3.Float(len(samples) - 1)
	for _, tf := range knownCurves {
		var dev float64
		for i, s := range samples {
			dev = max(dev, math.Abs(float64(tf.Decode(mat3.Float(i)/last)-s)))
		}
		if dev < bestDev {
			best, bestDev = tf, dev
		}
	}
	return best, bestDev <= tol
}
