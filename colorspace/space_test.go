package colorspace

import (
	"errors"
	"testing"

	"colorconv/mat3"
	"colorconv/transfer"
)

var (
	testSRGB       = MustSpace("sRGB", BT709, transfer.SRGB{})
	testLinearSRGB = MustSpace("linear sRGB", BT709, transfer.Linear{})
	testP3         = MustSpace("Display P3", DisplayP3, transfer.SRGB{})
	testBT2020     = MustSpace("BT.2020", BT2020, transfer.BT709)
	testPQ         = MustSpace("BT.2100 PQ", BT2020, transfer.PQ{Luminance: transfer.PQMaxLuminance})
	testHLG        = MustSpace("BT.2100 HLG", BT2020, transfer.HLG{})
	testAdobe      = MustSpace("Adobe RGB", AdobeRGB, transfer.Gamma{Exponent: 563.0 / 256})
	testProPhoto   = MustSpace("ProPhoto", ProPhoto, transfer.Gamma{Exponent: 1.8})
	testACEScg     = MustSpace("ACEScg", AcesAP1, transfer.Linear{})
	testACES       = MustSpace("ACES2065-1", AcesAP0, transfer.Linear{})
	testDCI        = MustSpace("DCI-P3", DCIP3, transfer.Gamma{Exponent: 2.6})
	testCIERGB     = MustSpace("CIE RGB", CIERGB, transfer.Linear{})
	testXYZ        = MustSpace("CIE XYZ", CIEXYZ, transfer.Linear{})
)

var testSpaces = []Space{
	testSRGB, testLinearSRGB, testP3, testBT2020, testPQ, testHLG, testAdobe,
	testProPhoto, testACEScg, testACES, testDCI, testCIERGB, testXYZ,
}

func TestSRGBMatrix(t *testing.T) {
	// IEC 61966-2-1, rounded to four places
	want := mat3.Mat3{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	if d := maxAbsDiff(testSRGB.RGBToXYZ(), want); d > 1e-4 {
		t.Errorf("max deviation %g:\n%v", d, testSRGB.RGBToXYZ())
	}
}

func TestXYZSpaceMatrix(t *testing.T) {
	if testXYZ.RGBToXYZ() != mat3.Identity {
		t.Errorf("CIE XYZ matrix = %v", testXYZ.RGBToXYZ())
	}
	xyz65, err := XYZ(WhitePointD65)
	if err != nil {
		t.Fatal(err)
	}
	if xyz65.RGBToXYZ() != mat3.Identity {
		t.Errorf("CIE XYZ D65 matrix = %v", xyz65.RGBToXYZ())
	}
	if xyz65.WhitePoint() != WhitePointD65 {
		t.Errorf("white point = %v", xyz65.WhitePoint())
	}
}

func TestWhiteToXYZ(t *testing.T) {
	for _, s := range testSpaces {
		if s == testXYZ {
			continue
		}
		// HLG decodes 1 to 1+2.7e-8 with the published ARIB constants
		got := s.ToXYZ(vec(1, 1, 1))
		if !approxVec(got, s.WhitePoint().XYZ(), 1e-7) {
			t.Errorf("%s: white -> %v, want %v", s, got, s.WhitePoint().XYZ())
		}
	}
}

func TestNewSpaceErrors(t *testing.T) {
	if _, err := NewSpace("bad", Primaries{}, transfer.Linear{}); !errors.Is(err, ErrInvalidPrimaries) {
		t.Errorf("zero primaries: %v", err)
	}
	if _, err := NewSpace("bad", BT709, transfer.Gamma{}); !errors.Is(err, transfer.ErrInvalidParameters) {
		t.Errorf("zero gamma: %v", err)
	}
	if _, err := NewSpace("bad", BT709, nil); !errors.Is(err, transfer.ErrInvalidParameters) {
		t.Errorf("nil transfer: %v", err)
	}
}

func TestSpaceEqual(t *testing.T) {
	a := MustSpace("a", BT709, transfer.SRGB{})
	b := MustSpace("b", BT709, transfer.SRGB{})
	if !a.Equal(b) {
		t.Error("spaces differing only by name are not equal")
	}
	if a.Key() != b.Key() {
		t.Error("keys differ")
	}
	if a.Equal(testLinearSRGB) || a.Equal(testP3) {
		t.Error("different spaces compare equal")
	}
	if got := a.WithName("c"); got.Name() != "c" || !got.Equal(a) {
		t.Errorf("WithName: %v", got)
	}
}

func TestSpaceVariants(t *testing.T) {
	lin := testSRGB.Linear()
	if !lin.IsLinear() || !lin.Equal(testLinearSRGB) {
		t.Errorf("Linear() = %v", lin)
	}
	if testLinearSRGB.Linear() != testLinearSRGB {
		t.Error("Linear() of a linear space changed it")
	}

	g22, err := testSRGB.WithTransfer("gamma 2.2", transfer.Gamma{Exponent: 2.2})
	if err != nil {
		t.Fatal(err)
	}
	if g22.RGBToXYZ() != testSRGB.RGBToXYZ() {
		t.Error("WithTransfer changed the matrix")
	}
	if _, err := testSRGB.WithTransfer("bad", transfer.PQ{}); err == nil {
		t.Error("invalid transfer accepted")
	}

	d50, err := testSRGB.WithWhitePoint("sRGB D50", WhitePointD50)
	if err != nil {
		t.Fatal(err)
	}
	if d50.WhitePoint() != WhitePointD50 || d50.Primaries().Red() != BT709.Red() {
		t.Errorf("WithWhitePoint: %v", d50)
	}
	if !approxVec(d50.ToXYZ(vec(1, 1, 1)), WhitePointD50.XYZ(), 1e-9) {
		t.Error("white does not map to D50")
	}
}
