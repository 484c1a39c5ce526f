package transfer

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"colorconv/mat3"
)

var allCurves = []Func{
	Linear{},
	Gamma{Exponent: 2.2},
	Gamma{Exponent: 1.8},
	SRGB{},
	BT709,
	Parametric{G: 2.4, A: 1 / 1.055, B: 0.055 / 1.055, C: 1 / 12.92, D: 0.04045},
	PQ{Luminance: PQMaxLuminance},
	PQ{Luminance: 203},
	HLG{},
}

func tolerance(x mat3.Float) mat3.Float {
	if mat3.SingularEpsilon > 1e-9 { // float32 build
		return 1e-4 * max(1, mat3.Float(math.Abs(float64(x))))
	}
	return 1e-9 * max(1, mat3.Float(math.Abs(float64(x))))
}

func TestRoundTrip(t *testing.T) {
	for _, f := range allCurves {
		t.Run(f.String(), func(t *testing.T) {
			for i := 0; i <= 100; i++ {
				x := mat3.Float(i) / 100
				if x < 0.001 {
					if _, isPQ := f.(PQ); isPQ {
						continue
					}
				}

				got := f.Decode(f.Encode(x))
				if d := math.Abs(float64(got - x)); d > float64(tolerance(x)) {
					t.Errorf("decode(encode(%g)) = %g", x, got)
				}
				got = f.Encode(f.Decode(x))
				if d := math.Abs(float64(got - x)); d > float64(tolerance(x)) {
					t.Errorf("encode(decode(%g)) = %g", x, got)
				}
			}
		})
	}
}

func TestMonotonic(t *testing.T) {
	for _, f := range allCurves {
		t.Run(f.String(), func(t *testing.T) {
			prevE, prevD := f.Encode(-1), f.Decode(-1)
			for i := -99; i <= 100; i++ {
				x := mat3.Float(i) / 100
				e, d := f.Encode(x), f.Decode(x)
				if e < prevE || d < prevD {
					t.Fatalf("not monotonic at %g", x)
				}
				prevE, prevD = e, d
			}
		})
	}
}

func TestNegativeValuesSurvive(t *testing.T) {
	for _, f := range allCurves {
		t.Run(f.String(), func(t *testing.T) {
			for _, x := range []mat3.Float{-0.001, -0.25, -1, -3} {
				e := f.Encode(x)
				if math.IsNaN(float64(e)) || math.IsInf(float64(e), 0) {
					t.Fatalf("encode(%g) = %g", x, e)
				}
				if x < -0.01 && e >= 0 {
					t.Errorf("encode(%g) = %g, sign lost", x, e)
				}
				got := f.Decode(e)
				if d := math.Abs(float64(got - x)); d > float64(tolerance(x)) {
					t.Errorf("decode(encode(%g)) = %g", x, got)
				}
			}
		})
	}
}

func TestGammaNegative(t *testing.T) {
	g := Gamma{Exponent: 2.2}
	x := mat3.Float(-0.5)
	e := g.Encode(x)
	want := -mat3.Float(math.Pow(0.5, 1/2.2))
	if math.Abs(float64(e-want)) > float64(tolerance(e)) {
		t.Errorf("encode(%g) = %g, want %g", x, e, want)
	}
	if got := g.Decode(e); math.Abs(float64(got-x)) > float64(tolerance(x)) {
		t.Errorf("decode(encode(%g)) = %g", x, got)
	}
}

func TestSRGBBreakpoints(t *testing.T) {
	f := SRGB{}
	if got := f.Decode(0.04045); math.Abs(float64(got)-0.04045/12.92) > 1e-7 {
		t.Errorf("decode at breakpoint = %g, want linear segment", got)
	}
	if got := f.Encode(0.0031308); math.Abs(float64(got)-0.0031308*12.92) > 1e-7 {
		t.Errorf("encode at breakpoint = %g, want linear segment", got)
	}
	if got := f.Decode(1); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("decode(1) = %g", got)
	}
	// well-known 8 bit value: 128/255 ≈ 0.2158605 linear
	if got := f.Decode(128.0 / 255); math.Abs(float64(got)-0.2158605) > 1e-6 {
		t.Errorf("decode(128/255) = %.7f", got)
	}
}

func TestPQReference(t *testing.T) {
	f := PQ{Luminance: PQMaxLuminance}
	tests := []struct {
		nits float64
		code float64
	}{
		{10000, 1},
		{100, 0.5080784},
		{1000, 0.7518271},
	}
	for _, tt := range tests {
		got := f.Encode(mat3.Float(tt.nits / PQMaxLuminance))
		if math.Abs(float64(got)-tt.code) > 1e-5 {
			t.Errorf("encode(%g cd/m²) = %.7f, want %.7f", tt.nits, got, tt.code)
		}
	}

	g := PQ{Luminance: 100}
	if got := g.Encode(1); math.Abs(float64(got)-0.5080784) > 1e-5 {
		t.Errorf("100 cd/m² white encodes to %.7f", got)
	}
}

func TestHLGReference(t *testing.T) {
	f := HLG{}
	if got := f.Encode(1.0 / 12); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("encode(1/12) = %g, want 0.5", got)
	}
	if got := f.Encode(1); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("encode(1) = %g, want 1", got)
	}
	if got := f.Decode(1); math.Abs(float64(got)-1) > 1e-7 {
		t.Errorf("decode(1) = %.10f, want 1", got)
	}
	if got := f.Decode(0.5); math.Abs(float64(got)-1.0/12) > 1e-7 {
		t.Errorf("decode(0.5) = %g, want 1/12", got)
	}
}

func TestIsLinear(t *testing.T) {
	tests := []struct {
		f    Func
		want bool
	}{
		{Linear{}, true},
		{Gamma{Exponent: 1}, true},
		{Gamma{Exponent: 2.2}, false},
		{SRGB{}, false},
		{Parametric{G: 1, A: 1, C: 1, D: 0.5}, true},
		{BT709, false},
		{PQ{Luminance: 100}, false},
		{HLG{}, false},
	}
	for _, tt := range tests {
		if got := tt.f.IsLinear(); got != tt.want {
			t.Errorf("%s: IsLinear() = %t", tt.f, got)
		}
	}
}

func TestValidate(t *testing.T) {
	for _, f := range allCurves {
		if err := Validate(f); err != nil {
			t.Errorf("%s: %v", f, err)
		}
	}

	bad := []Func{
		nil,
		Gamma{},
		Gamma{Exponent: -1},
		Gamma{Exponent: mat3.Float(math.Inf(1))},
		PQ{},
		Parametric{G: 2.2, A: 0},
		Parametric{G: 2.2, A: 1, D: 0.1},
	}
	for _, f := range bad {
		t.Run(fmt.Sprint(f), func(t *testing.T) {
			if err := Validate(f); !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("expected ErrInvalidParameters, got %v", err)
			}
		})
	}
}

func TestComparable(t *testing.T) {
	var a, b Func = Gamma{Exponent: 2.2}, Gamma{Exponent: 2.2}
	if a != b {
		t.Error("equal curves compare unequal")
	}
	if a == (Gamma{Exponent: 2.4}) {
		t.Error("different curves compare equal")
	}
}

func BenchmarkSRGBEncodeVec(b *testing.B) {
	var f Func = SRGB{}
	v := mat3.Vec3{0.2, 0.5, 0.8}
	b.ReportAllocs()
	for b.Loop() {
		_ = EncodeVec(f, v)
	}
}
