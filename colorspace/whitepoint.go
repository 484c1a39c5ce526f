package colorspace

import (
	"fmt"
	"math"

	"colorconv/mat3"
)

// Chromaticity is a point (x, y) on the CIE 1931 chromaticity diagram.
type Chromaticity struct {
	X, Y mat3.Float
}

// direction returns the XYZ tristimulus of the chromaticity, scaled so that
// X+Y+Z = 1.  Unlike XYZ, this is defined for y = 0.
func (c Chromaticity) direction() mat3.Vec3 {
	return mat3.Vec3{c.X, c.Y, 1 - c.X - c.Y}
}

// XYZ returns the tristimulus value of c with luminance Y = 1.
// The result is not finite if c.Y is zero.
func (c Chromaticity) XYZ() mat3.Vec3 {
	return mat3.Vec3{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

func (c Chromaticity) isFinite() bool {
	return mat3.Vec3{c.X, c.Y, 0}.IsFinite()
}

func (c Chromaticity) near(other Chromaticity, tol mat3.Float) bool {
	return math.Abs(float64(c.X-other.X)) <= float64(tol) &&
		math.Abs(float64(c.Y-other.Y)) <= float64(tol)
}

func (c Chromaticity) String() string {
	return fmt.Sprintf("(%.5g, %.5g)", c.X, c.Y)
}

// WhitePoint is the reference white of a color space.
// The zero value is not a valid white point; use NewWhitePoint or one of the
// named illuminants.
type WhitePoint struct {
	xy  Chromaticity
	xyz mat3.Vec3
}

// NewWhitePoint returns the white point with chromaticity xy.
func NewWhitePoint(xy Chromaticity) (WhitePoint, error) {
	if !xy.isFinite() || xy.Y < epsilon {
		return WhitePoint{}, fmt.Errorf("%w: chromaticity %s", ErrDegenerateWhitePoint, xy)
	}
	return WhitePoint{xy: xy, xyz: xy.XYZ()}, nil
}

// WhitePointFromXYZ returns the white point with the same chromaticity as
// the tristimulus value v.  The luminance of v is irrelevant.
func WhitePointFromXYZ(v mat3.Vec3) (WhitePoint, error) {
	sum := v[0] + v[1] + v[2]
	if !v.IsFinite() || v[1] < epsilon || sum < epsilon {
		return WhitePoint{}, fmt.Errorf("%w: XYZ %v", ErrDegenerateWhitePoint, v)
	}
	return NewWhitePoint(Chromaticity{X: v[0] / sum, Y: v[1] / sum})
}

// Chromaticity returns the (x, y) coordinates of the white point.
func (w WhitePoint) Chromaticity() Chromaticity {
	return w.xy
}

// XYZ returns the tristimulus value of the white point, normalised to Y = 1.
func (w WhitePoint) XYZ() mat3.Vec3 {
	return w.xyz
}

// IsZero reports whether w is the zero value.
func (w WhitePoint) IsZero() bool {
	return w == WhitePoint{}
}

// Name returns the name of the illuminant, or the empty string for a custom
// white point.
func (w WhitePoint) Name() string {
	for _, n := range namedWhitePoints {
		if n.wp == w {
			return n.name
		}
	}
	return ""
}

func (w WhitePoint) String() string {
	if name := w.Name(); name != "" {
		return name
	}
	return w.xy.String()
}

// Canonicalize returns the named illuminant within DetectTolerance of w.
// If there is none, ErrCanonicalizationFailed is returned.
func (w WhitePoint) Canonicalize() (WhitePoint, error) {
	for _, n := range namedWhitePoints {
		if n.wp.xy.near(w.xy, DetectTolerance) {
			return n.wp, nil
		}
	}
	return w, fmt.Errorf("white point %s: %w", w.xy, ErrCanonicalizationFailed)
}

// DetectWhitePoint returns the white point with chromaticity xy, replaced by
// a named illuminant if one lies within DetectTolerance.
func DetectWhitePoint(xy Chromaticity) (WhitePoint, error) {
	w, err := NewWhitePoint(xy)
	if err != nil {
		return WhitePoint{}, err
	}
	if named, err := w.Canonicalize(); err == nil {
		return named, nil
	}
	return w, nil
}

// LookupWhitePoint returns the named illuminant called name, e.g. "D65".
func LookupWhitePoint(name string) (WhitePoint, bool) {
	for _, n := range namedWhitePoints {
		if n.name == name {
			return n.wp, true
		}
	}
	return WhitePoint{}, false
}

// CIE 1931 2° standard illuminants.
var (
	WhitePointA   = mustWhitePoint(0.44757, 0.40745)
	WhitePointB   = mustWhitePoint(0.34842, 0.35161)
	WhitePointC   = mustWhitePoint(0.31006, 0.31616)
	WhitePointD50 = mustWhitePoint(0.3457, 0.3585)
	WhitePointD55 = mustWhitePoint(0.33242, 0.34743)
	WhitePointD65 = mustWhitePoint(0.3127, 0.3290)
	WhitePointD75 = mustWhitePoint(0.29902, 0.31485)
	WhitePointE   = mustWhitePoint(1.0/3, 1.0/3)
	WhitePointF2  = mustWhitePoint(0.37208, 0.37529)
	WhitePointF7  = mustWhitePoint(0.31292, 0.32933)
	WhitePointF11 = mustWhitePoint(0.38052, 0.37713)

	// WhitePointD60 is the ACES white, close to but not identical with CIE D60.
	WhitePointD60 = mustWhitePoint(0.32168, 0.33767)

	// WhitePointDCI is the white of the DCI-P3 theatrical projection space.
	WhitePointDCI = mustWhitePoint(0.314, 0.351)
)

// namedWhitePoints is searched in order; D65 and D50 come first since they
// are by far the most common.
var namedWhitePoints = []struct {
	name string
	wp   WhitePoint
}{
	{"D65", WhitePointD65},
	{"D50", WhitePointD50},
	{"D60", WhitePointD60},
	{"E", WhitePointE},
	{"A", WhitePointA},
	{"B", WhitePointB},
	{"C", WhitePointC},
	{"D55", WhitePointD55},
	{"D75", WhitePointD75},
	{"F2", WhitePointF2},
	{"F7", WhitePointF7},
	{"F11", WhitePointF11},
	{"DCI", WhitePointDCI},
}

func mustWhitePoint(x, y mat3.Float) WhitePoint {
	w, err := NewWhitePoint(Chromaticity{X: x, Y: y})
	if err != nil {
		panic(err)
	}
	return w
}
