package colorspace

import (
	"fmt"

	"colorconv/mat3"
)

// Primaries are the chromaticities of the red, green and blue corners of an
// RGB gamut together with the reference white of the space.
//
// Primaries are immutable values and can be compared with ==.
type Primaries struct {
	r, g, b Chromaticity
	white   WhitePoint
}

// NewPrimaries returns the primaries with the given chromaticities and white
// point.  ErrInvalidPrimaries is returned if the three chromaticities are
// collinear.
func NewPrimaries(r, g, b Chromaticity, white WhitePoint) (Primaries, error) {
	if white.IsZero() {
		return Primaries{}, fmt.Errorf("%w: missing white point", ErrDegenerateWhitePoint)
	}
	for _, c := range []Chromaticity{r, g, b} {
		if !c.isFinite() {
			return Primaries{}, fmt.Errorf("%w: chromaticity %s", ErrInvalidPrimaries, c)
		}
	}

	// The determinant is twice the signed area of the gamut triangle.
	det := directions(r, g, b).Det()
	if det > -epsilon && det < epsilon {
		return Primaries{}, fmt.Errorf("%w: %s, %s, %s are collinear", ErrInvalidPrimaries, r, g, b)
	}

	return Primaries{r: r, g: g, b: b, white: white}, nil
}

// Red returns the chromaticity of the red primary.
func (p Primaries) Red() Chromaticity { return p.r }

// Green returns the chromaticity of the green primary.
func (p Primaries) Green() Chromaticity { return p.g }

// Blue returns the chromaticity of the blue primary.
func (p Primaries) Blue() Chromaticity { return p.b }

// White returns the reference white.
func (p Primaries) White() WhitePoint { return p.white }

// IsZero reports whether p is the zero value.
func (p Primaries) IsZero() bool {
	return p == Primaries{}
}

// WithWhitePoint returns primaries with the same chromaticities and the
// reference white w.
func (p Primaries) WithWhitePoint(w WhitePoint) (Primaries, error) {
	return NewPrimaries(p.r, p.g, p.b, w)
}

// Name returns the name of the chromaticity set, e.g. "BT.709", or the empty
// string for custom primaries.  The white point is not taken into account.
func (p Primaries) Name() string {
	for _, n := range namedPrimaries {
		if n.p.r == p.r && n.p.g == p.g && n.p.b == p.b {
			return n.name
		}
	}
	return ""
}

func (p Primaries) String() string {
	name := p.Name()
	if name == "" {
		name = fmt.Sprintf("R%s G%s B%s", p.r, p.g, p.b)
	}
	return name + " / " + p.white.String()
}

// Canonicalize replaces the chromaticities of p with those of the named set
// within DetectTolerance, and the white point with its named equivalent if
// there is one.  ErrCanonicalizationFailed is returned if no named set
// matches.
func (p Primaries) Canonicalize() (Primaries, error) {
	named, ok := matchPrimaries(p.r, p.g, p.b)
	if !ok {
		return p, fmt.Errorf("primaries %s %s %s: %w", p.r, p.g, p.b, ErrCanonicalizationFailed)
	}
	white := p.white
	if w, err := white.Canonicalize(); err == nil {
		white = w
	}
	return Primaries{r: named.r, g: named.g, b: named.b, white: white}, nil
}

// DetectPrimaries is like NewPrimaries, but chromaticities and white point
// within DetectTolerance of a named value are replaced by that value.
func DetectPrimaries(r, g, b Chromaticity, white WhitePoint) (Primaries, error) {
	p, err := NewPrimaries(r, g, b, white)
	if err != nil {
		return Primaries{}, err
	}
	if named, err := p.Canonicalize(); err == nil {
		return named, nil
	}
	if w, err := white.Canonicalize(); err == nil {
		p.white = w
	}
	return p, nil
}

func matchPrimaries(r, g, b Chromaticity) (Primaries, bool) {
	for _, n := range namedPrimaries {
		if n.p.r.near(r, DetectTolerance) &&
			n.p.g.near(g, DetectTolerance) &&
			n.p.b.near(b, DetectTolerance) {
			return n.p, true
		}
	}
	return Primaries{}, false
}

// directions returns the matrix whose columns are the XYZ directions of the
// three primaries.
func directions(r, g, b Chromaticity) mat3.Mat3 {
	return mat3.FromCols(r.direction(), g.direction(), b.direction())
}

// isXYZAxes reports whether the primaries are the corners of the CIE XYZ
// coordinate system.
func (p Primaries) isXYZAxes() bool {
	return p.r == CIEXYZ.r && p.g == CIEXYZ.g && p.b == CIEXYZ.b
}

// rgbToXYZ derives the matrix mapping linear RGB values to XYZ such that
// RGB (1, 1, 1) maps to the white point.
//
// The columns of the matrix are the primary directions, each scaled by the
// factor which makes the three of them add up to the white point.
func (p Primaries) rgbToXYZ() (mat3.Mat3, error) {
	if p.IsZero() {
		return mat3.Mat3{}, fmt.Errorf("%w: zero value", ErrInvalidPrimaries)
	}
	if p.isXYZAxes() {
		// XYZ itself, whatever the reference white
		return mat3.Identity, nil
	}

	dirs := directions(p.r, p.g, p.b)
	inv, err := dirs.Inverse()
	if err != nil {
		return mat3.Mat3{}, fmt.Errorf("%w: %w", ErrInvalidPrimaries, err)
	}
	scale := inv.Apply(p.white.XYZ())
	return mat3.Mul(dirs, mat3.Diag(scale)), nil
}

// Named sets of primaries, each with the reference white of the space it is
// usually found in.
var (
	// BT709 are the primaries of ITU-R BT.709 and sRGB.
	BT709 = mustPrimaries(0.64, 0.33, 0.30, 0.60, 0.15, 0.06, WhitePointD65)

	// BT2020 are the primaries of ITU-R BT.2020 and BT.2100.
	BT2020 = mustPrimaries(0.708, 0.292, 0.170, 0.797, 0.131, 0.046, WhitePointD65)

	// DisplayP3 are the DCI-P3 primaries with a D65 white.
	DisplayP3 = mustPrimaries(0.680, 0.320, 0.265, 0.690, 0.150, 0.060, WhitePointD65)

	// DCIP3 are the primaries of theatrical DCI-P3 with the DCI white.
	DCIP3 = mustPrimaries(0.680, 0.320, 0.265, 0.690, 0.150, 0.060, WhitePointDCI)

	// AdobeRGB are the primaries of Adobe RGB (1998).
	AdobeRGB = mustPrimaries(0.64, 0.33, 0.21, 0.71, 0.15, 0.06, WhitePointD65)

	// ProPhoto are the primaries of ROMM RGB.
	ProPhoto = mustPrimaries(0.734699, 0.265301, 0.159597, 0.840403, 0.036598, 0.000105, WhitePointD50)

	// AcesAP0 are the primaries of ACES2065-1.
	AcesAP0 = mustPrimaries(0.7347, 0.2653, 0.0, 1.0, 0.0001, -0.0770, WhitePointD60)

	// AcesAP1 are the primaries of ACEScg and ACEScc.
	AcesAP1 = mustPrimaries(0.713, 0.293, 0.165, 0.830, 0.128, 0.044, WhitePointD60)

	// CIERGB are the primaries of the CIE 1931 RGB space.
	CIERGB = mustPrimaries(0.7347, 0.2653, 0.2738, 0.7174, 0.1666, 0.0089, WhitePointE)

	// CIEXYZ places the primaries at the corners of the XYZ coordinate
	// system, so that RGB values are XYZ values.
	CIEXYZ = mustPrimaries(1, 0, 0, 1, 0, 0, WhitePointE)
)

// DisplayP3 and DCIP3 share their chromaticities; the first entry wins when
// naming.
var namedPrimaries = []struct {
	name string
	p    Primaries
}{
	{"BT.709", BT709},
	{"BT.2020", BT2020},
	{"P3", DisplayP3},
	{"Adobe RGB", AdobeRGB},
	{"ProPhoto", ProPhoto},
	{"ACES AP0", AcesAP0},
	{"ACES AP1", AcesAP1},
	{"CIE RGB", CIERGB},
	{"CIE XYZ", CIEXYZ},
}

func mustPrimaries(rx, ry, gx, gy, bx, by mat3.Float, white WhitePoint) Primaries {
	p, err := NewPrimaries(
		Chromaticity{X: rx, Y: ry},
		Chromaticity{X: gx, Y: gy},
		Chromaticity{X: bx, Y: by},
		white)
	if err != nil {
		panic(err)
	}
	return p
}
