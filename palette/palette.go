// Package palette finds the perceptually closest entry of a color palette,
// measuring distance in Oklab.
package palette

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"golang.org/x/image/colornames"

	"colorconv/mat3"
	"colorconv/okcolor"
)

type Entry struct {
	Name  string
	Color okcolor.Lab
}

type Palette []Entry

// CSS returns the SVG 1.1 named colors, the set CSS3 adopted, in
// alphabetical order.
func CSS() Palette {
	p := make(Palette, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		p = append(p, Entry{
			Name:  name,
			Color: okcolor.LabModel.Convert(colornames.Map[name]).(okcolor.Lab),
		})
	}
	return p
}

// FromColors returns a palette of sRGB colors named by their hex codes.
func FromColors(pal color.Palette) Palette {
	p := make(Palette, 0, len(pal))
	for _, col := range pal {
		c := color.NRGBAModel.Convert(col).(color.NRGBA)
		p = append(p, Entry{
			Name:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			Color: okcolor.LabModel.Convert(col).(okcolor.Lab),
		})
	}
	return p
}

// Load reads the palettes of a RIFF PAL file into a single palette.
func Load(name string) (Palette, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette: %w", err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	}
	var p Palette
	for _, pal := range pals {
		p = append(p, FromColors(pal)...)
	}
	return p, nil
}

// Index returns the index of the entry closest to lc, the first one on
// ties, or -1 for an empty palette.  Alpha is ignored.
func (p Palette) Index(lc okcolor.Lab) int {
	ret, bestSum := -1, mat3.Float(math.Inf(1))
	for i, v := range p {
		dL := lc.L - v.Color.L
		da := lc.A - v.Color.A
		db := lc.B - v.Color.B
		sum := dL*dL + da*da + db*db
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

// Nearest returns the entry closest to lc and its Euclidean Oklab
// distance.
func (p Palette) Nearest(lc okcolor.Lab) (Entry, mat3.Float, bool) {
	i := p.Index(lc)
	if i < 0 {
		return Entry{}, 0, false
	}
	e := p[i]
	d := mat3.Vec3{lc.L - e.Color.L, lc.A - e.Color.A, lc.B - e.Color.B}
	return e, mat3.Float(math.Sqrt(float64(mat3.Dot(d, d)))), true
}

// WriteRIFF writes p as a single palette RIFF PAL file.
func (p Palette) WriteRIFF(w io.Writer) (int64, error) {
	pal := make(color.Palette, len(p))
	for i, e := range p {
		pal[i] = e.Color
	}

	n, err := WriteTo(w, []color.Palette{pal})
	if err != nil {
		return n, fmt.Errorf("could not save palette: %w", err)
	}
	return n, nil
}
