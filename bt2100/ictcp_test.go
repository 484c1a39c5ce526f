package bt2100

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/spaces"
	"colorconv/transfer"
)

// tol widens a tolerance for float32 builds.
func tol(eps float64) float64 {
	if mat3.SingularEpsilon > 1e-9 {
		return max(eps, 1e-4)
	}
	return eps
}

func TestWhite(t *testing.T) {
	tests := []struct {
		c    cs.Color
		pq   transfer.PQ
		want ICtCp
		eps  float64
	}{
		// LMS rows sum to one, so white has no chroma
		{cs.Color{Value: mat3.Vec3{1, 1, 1}, Space: spaces.LinearBT2020}, transfer.PQ{Luminance: 10000}, ICtCp{I: 1}, tol(1e-9)},
		{cs.Color{Value: mat3.Vec3{1, 1, 1}, Space: spaces.SRGB}, transfer.PQ{Luminance: 10000}, ICtCp{I: 1}, tol(1e-9)},
		// 100 cd/m² encodes to 0.5081 in PQ
		{cs.Color{Value: mat3.Vec3{1, 1, 1}, Space: spaces.SRGB}, transfer.PQ{Luminance: 100}, ICtCp{I: 0.5081}, 1e-4},
	}
	for _, tt := range tests {
		got, err := FromColor(tt.c, tt.pq)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, tt.eps)); d != "" {
			t.Errorf("%s at %s (-want +got):\n%s", tt.c, tt.pq, d)
		}
	}
}

func TestMatrixInverses(t *testing.T) {
	if !mat3.ApproxEqual(mat3.Mul(fromLMS, toLMS), mat3.Identity, mat3.Float(tol(1e-12))) {
		t.Errorf("LMS inverse: %v", mat3.Mul(fromLMS, toLMS))
	}
	if !mat3.ApproxEqual(mat3.Mul(ictcpToLMS, lmsToICtCp), mat3.Identity, mat3.Float(tol(1e-12))) {
		t.Errorf("ICtCp inverse: %v", mat3.Mul(ictcpToLMS, lmsToICtCp))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []cs.Space{spaces.SRGB, spaces.DisplayP3, spaces.BT2100PQ} {
		for _, v := range []mat3.Vec3{
			{0.2, 0.4, 0.6},
			{1, 0, 0},
			{0.05, 0.9, 0.3},
			{1.1, -0.05, 0.4}, // outside the gamut
		} {
			c := cs.Color{Value: v, Space: s}
			ic, err := FromColor(c, SDRWhite)
			if err != nil {
				t.Fatal(err)
			}
			got, err := ic.In(s, SDRWhite)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(v, got.Value, cmpopts.EquateApprox(0, tol(1e-7))); d != "" {
				t.Errorf("%s (-want +got):\n%s", c, d)
			}
		}
	}
}

func TestChroma(t *testing.T) {
	red, err := FromColor(cs.Color{Value: mat3.Vec3{1, 0, 0}, Space: spaces.SRGB}, SDRWhite)
	if err != nil {
		t.Fatal(err)
	}
	blue, err := FromColor(cs.Color{Value: mat3.Vec3{0, 0, 1}, Space: spaces.SRGB}, SDRWhite)
	if err != nil {
		t.Fatal(err)
	}
	// Cp is the red-green axis, Ct the yellow-blue axis
	if red.Cp <= 0 {
		t.Errorf("red Cp = %g, want > 0", red.Cp)
	}
	if blue.Ct <= 0 {
		t.Errorf("blue Ct = %g, want > 0", blue.Ct)
	}
	if red.I >= 0.5 || blue.I >= red.I {
		t.Errorf("intensities red %g, blue %g", red.I, blue.I)
	}
}
