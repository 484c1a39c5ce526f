// Package spaces is a catalog of well-known color spaces.
//
// The catalog is a fixed table built from literal constants; it cannot be
// extended at run time.  Programs which define their own spaces need not
// import this package.
package spaces

import (
	"slices"

	cs "colorconv/colorspace"
	"colorconv/transfer"
)

// Standard dynamic range spaces.
var (
	// SRGB is IEC 61966-2-1 sRGB.
	SRGB = cs.MustSpace("sRGB", cs.BT709, transfer.SRGB{})

	// LinearSRGB is sRGB without its transfer function (scene-linear
	// BT.709), the usual working space of renderers.
	LinearSRGB = cs.MustSpace("linear sRGB", cs.BT709, transfer.Linear{})

	// BT709 is ITU-R BT.709 with its camera transfer function.
	BT709 = cs.MustSpace("BT.709", cs.BT709, transfer.BT709)

	// DisplayP3 is Apple's Display P3: P3 primaries, D65, sRGB curve.
	DisplayP3 = cs.MustSpace("Display P3", cs.DisplayP3, transfer.SRGB{})

	// LinearDisplayP3 is Display P3 without its transfer function.
	LinearDisplayP3 = cs.MustSpace("linear Display P3", cs.DisplayP3, transfer.Linear{})

	// DCIP3 is theatrical DCI-P3 with a pure 2.6 gamma.
	DCIP3 = cs.MustSpace("DCI-P3", cs.DCIP3, transfer.Gamma{Exponent: 2.6})

	// AdobeRGB is Adobe RGB (1998), whose gamma is 563/256.
	AdobeRGB = cs.MustSpace("Adobe RGB", cs.AdobeRGB, transfer.Gamma{Exponent: 563.0 / 256})

	// ProPhoto is ROMM RGB with a D50 white and a 1.8 gamma.
	ProPhoto = cs.MustSpace("ProPhoto", cs.ProPhoto, transfer.Parametric{
		G: 1.8, A: 1, B: 0, C: 1.0 / 16, D: 16.0 / 512,
	})
)

// Wide gamut and high dynamic range spaces.
var (
	// BT2020 is ITU-R BT.2020 with its camera transfer function.
	BT2020 = cs.MustSpace("BT.2020", cs.BT2020, transfer.BT709)

	// LinearBT2020 is BT.2020 without its transfer function.
	LinearBT2020 = cs.MustSpace("linear BT.2020", cs.BT2020, transfer.Linear{})

	// BT2100PQ is ITU-R BT.2100 with the perceptual quantizer.  A linear
	// value of 1 corresponds to 10000 cd/m².
	BT2100PQ = cs.MustSpace("BT.2100 PQ", cs.BT2020, transfer.PQ{Luminance: transfer.PQMaxLuminance})

	// BT2100HLG is ITU-R BT.2100 with hybrid log-gamma.
	BT2100HLG = cs.MustSpace("BT.2100 HLG", cs.BT2020, transfer.HLG{})

	// ACEScg is the ACES working space for rendering and compositing.
	ACEScg = cs.MustSpace("ACEScg", cs.AcesAP1, transfer.Linear{})

	// ACES2065_1 is the ACES interchange space.
	ACES2065_1 = cs.MustSpace("ACES2065-1", cs.AcesAP0, transfer.Linear{})
)

// CIE reference spaces.
var (
	// CIEXYZ is CIE 1931 XYZ with the equal energy white.
	CIEXYZ = cs.MustSpace("CIE XYZ", cs.CIEXYZ, transfer.Linear{})

	// CIEXYZD65 is CIE 1931 XYZ relative to D65.
	CIEXYZD65 = mustXYZ(cs.WhitePointD65)

	// CIEXYZD50 is CIE 1931 XYZ relative to D50, the connection space of
	// ICC profiles.
	CIEXYZD50 = mustXYZ(cs.WhitePointD50)

	// CIERGB is the CIE 1931 RGB space.
	CIERGB = cs.MustSpace("CIE RGB", cs.CIERGB, transfer.Linear{})
)

var catalog = map[string]cs.Space{
	"srgb":              SRGB,
	"linear-srgb":       LinearSRGB,
	"bt709":             BT709,
	"display-p3":        DisplayP3,
	"linear-display-p3": LinearDisplayP3,
	"dci-p3":            DCIP3,
	"adobe-rgb":         AdobeRGB,
	"prophoto":          ProPhoto,
	"bt2020":            BT2020,
	"linear-bt2020":     LinearBT2020,
	"bt2100-pq":         BT2100PQ,
	"bt2100-hlg":        BT2100HLG,
	"acescg":            ACEScg,
	"aces2065-1":        ACES2065_1,
	"cie-xyz":           CIEXYZ,
	"cie-xyz-d65":       CIEXYZD65,
	"cie-xyz-d50":       CIEXYZD50,
	"cie-rgb":           CIERGB,
}

// Lookup returns the catalog entry with the given key, e.g. "display-p3".
func Lookup(key string) (cs.Space, bool) {
	s, ok := catalog[key]
	return s, ok
}

// Names returns the keys of all catalog entries in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns the catalog entries in the order of Names.
func All() []cs.Space {
	names := Names()
	all := make([]cs.Space, len(names))
	for i, name := range names {
		all[i] = catalog[name]
	}
	return all
}

// Find returns the key of the catalog entry equal to s, ignoring names.
func Find(s cs.Space) (string, bool) {
	names := Names()
	for i, c := range All() {
		if c.Equal(s) {
			return names[i], true
		}
	}
	return "", false
}

func mustXYZ(w cs.WhitePoint) cs.Space {
	s, err := cs.XYZ(w)
	if err != nil {
		panic(err)
	}
	return s
}
