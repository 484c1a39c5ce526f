package palette

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/okcolor"
	"colorconv/spaces"
)

func lab(t *testing.T, r, g, b mat3.Float) okcolor.Lab {
	t.Helper()
	lc, err := okcolor.FromColor(cs.Color{Value: mat3.Vec3{r, g, b}, Space: spaces.SRGB})
	if err != nil {
		t.Fatal(err)
	}
	return lc
}

func TestNearestCSS(t *testing.T) {
	css := CSS()
	tests := []struct {
		rgb  mat3.Vec3
		want string
	}{
		{mat3.Vec3{0x48 / 255.0, 0x3d / 255.0, 0x8b / 255.0}, "darkslateblue"},
		{mat3.Vec3{0, 1, 1}, "aqua"}, // first of aqua and cyan
		{mat3.Vec3{0.99, 0.01, 0.02}, "red"},
		{mat3.Vec3{0.5, 0.5, 0.5}, "gray"},
	}
	for _, tt := range tests {
		e, d, ok := css.Nearest(lab(t, tt.rgb[0], tt.rgb[1], tt.rgb[2]))
		if !ok || e.Name != tt.want {
			t.Errorf("%v: got %q (%g)", tt.rgb, e.Name, d)
		}
	}
}

func TestEmpty(t *testing.T) {
	var p Palette
	if i := p.Index(okcolor.Lab{L: 0.5}); i != -1 {
		t.Errorf("Index = %d", i)
	}
	if _, _, ok := p.Nearest(okcolor.Lab{}); ok {
		t.Error("entry found in empty palette")
	}
}

func TestRIFFRoundTrip(t *testing.T) {
	pals := []color.Palette{
		{color.RGBA{0xff, 0, 0, 0xff}, color.RGBA{0, 0x80, 0, 0xff}},
		{color.RGBA{0x12, 0x34, 0x56, 0xff}},
	}
	var buf bytes.Buffer
	n, err := WriteTo(&buf, pals)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) || n != 8+4+2*(8+4)+3*4 {
		t.Errorf("wrote %d bytes, buffer has %d", n, buf.Len())
	}

	got, err := ReadFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(pals, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestLoad(t *testing.T) {
	p := FromColors(color.Palette{
		color.RGBA{0xff, 0xff, 0xff, 0xff},
		color.RGBA{0x33, 0x66, 0x99, 0xff},
	})
	name := filepath.Join(t.TempDir(), "test.pal")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.WriteRIFF(f); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "#ffffff" || got[1].Name != "#336699" {
		t.Fatalf("got %v", got)
	}
	if e, _, _ := got.Nearest(lab(t, 0.21, 0.4, 0.6)); e.Name != "#336699" {
		t.Errorf("nearest: %q", e.Name)
	}
}

func TestReadErrors(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("not riff"),
		[]byte("RIFF\x04\x00\x00\x00WAVE"),
		[]byte("RIFF\x10\x00\x00\x00PAL data\x04\x00\x00\x00\x00\x04\x00\x00"),
	} {
		if _, err := ReadFrom(bytes.NewReader(data)); err == nil {
			t.Errorf("%q: no error", data)
		}
	}
}

func TestWriteTooManyColors(t *testing.T) {
	big := make(color.Palette, math.MaxUint16+1)
	for i := range big {
		big[i] = color.Black
	}
	var buf bytes.Buffer
	n, err := WriteTo(&buf, []color.Palette{{color.White}, big})
	if !errors.Is(err, ErrTooManyColors) {
		t.Fatalf("err = %v, want ErrTooManyColors", err)
	}
	if n != 0 || buf.Len() != 0 {
		t.Errorf("wrote %d bytes before failing", buf.Len())
	}

	if _, err := WriteTo(&buf, []color.Palette{big[:math.MaxUint16]}); err != nil {
		t.Errorf("largest palette: %v", err)
	}
}
