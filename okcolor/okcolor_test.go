package okcolor

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/spaces"
)

func TestReferenceValues(t *testing.T) {
	// from https://bottosson.github.io/posts/oklab/#table-of-example-xyz-and-oklab-pairs
	tests := []struct {
		xyz  mat3.Vec3
		want Lab
	}{
		{mat3.Vec3{0.950, 1.000, 1.089}, Lab{L: 1, Alpha: 0xffff}},
		{mat3.Vec3{1, 0, 0}, Lab{L: 0.450, A: 1.236, B: -0.019, Alpha: 0xffff}},
		{mat3.Vec3{0, 1, 0}, Lab{L: 0.922, A: -0.671, B: 0.263, Alpha: 0xffff}},
		{mat3.Vec3{0, 0, 1}, Lab{L: 0.153, A: -1.415, B: -0.449, Alpha: 0xffff}},
	}
	for _, tt := range tests {
		got, err := FromColor(cs.Color{Value: tt.xyz, Space: spaces.CIEXYZD65})
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 3e-3)); d != "" {
			t.Errorf("%v (-want +got):\n%s", tt.xyz, d)
		}
	}
}

func TestLinearRoundTrip(t *testing.T) {
	for _, rgb := range []mat3.Vec3{
		{0, 0, 0},
		{1, 1, 1},
		{0.2, 0.5, 0.9},
		{1.5, -0.2, 0.3},
	} {
		got := FromLinearSRGB(rgb).LinearSRGB()
		if d := cmp.Diff(rgb, got, cmpopts.EquateApprox(0, 1e-5)); d != "" {
			t.Errorf("%v (-want +got):\n%s", rgb, d)
		}
	}
}

func TestLChRoundTrip(t *testing.T) {
	lab := Lab{L: 0.5, A: 0.1, B: -0.1, Alpha: 0x8000}
	lch := lab.LCh()
	if d := cmp.Diff(lab, lch.Lab(), cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if got := LChModel.Convert(lab).(LCh); got != lch {
		t.Errorf("model: %v, want %v", got, lch)
	}
	if got := LabModel.Convert(lch).(Lab); got != lch.Lab() {
		t.Errorf("model: %v, want %v", got, lch.Lab())
	}
}

func TestModel(t *testing.T) {
	white := LabModel.Convert(color.White).(Lab)
	want := Lab{L: 1, Alpha: 0xffff}
	if d := cmp.Diff(want, white, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("white (-want +got):\n%s", d)
	}

	for _, c := range []color.NRGBA64{
		{R: 0x3333, G: 0x6666, B: 0x9999, A: 0xffff},
		{R: 0xffff, A: 0xffff},
		{R: 0x1234, G: 0xabcd, B: 0x0042, A: 0x8000},
	} {
		lab := LabModel.Convert(c).(Lab)
		got := color.NRGBA64Model.Convert(lab).(color.NRGBA64)
		if diff16(got.R, c.R) > 4 || diff16(got.G, c.G) > 4 || diff16(got.B, c.B) > 4 || got.A != c.A {
			t.Errorf("%v -> %v -> %v", c, lab, got)
		}
	}
}

func TestOutOfGamutClamped(t *testing.T) {
	// saturated P3 green is outside sRGB
	lab, err := FromColor(cs.Color{Value: mat3.Vec3{0, 1, 0}, Space: spaces.DisplayP3})
	if err != nil {
		t.Fatal(err)
	}
	if rgb := lab.LinearSRGB(); rgb[0] >= 0 {
		t.Errorf("expected negative red, got %v", rgb)
	}
	r, g, b, a := lab.RGBA()
	if r != 0 || g != 0xffff || b != 0 || a != 0xffff {
		t.Errorf("RGBA = %d %d %d %d", r, g, b, a)
	}
}

func TestIn(t *testing.T) {
	white := Lab{L: 1}
	got, err := white.In(spaces.DisplayP3)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Space.Equal(spaces.DisplayP3) {
		t.Errorf("space %v", got.Space)
	}
	if d := cmp.Diff(mat3.Vec3{1, 1, 1}, got.Value, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	back, err := FromColor(got)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Lab{L: 1, Alpha: 0xffff}, back, cmpopts.EquateApprox(0, 1e-4)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func diff16(a, b uint16) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
