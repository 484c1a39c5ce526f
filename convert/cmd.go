package convert

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"colorconv/cliarg"
	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/okcolor"
	"colorconv/palette"
)

type CLICmd struct {
	From    string   `help:"Source color space: catalog name, ICC profile or JSON definition" short:"f" default:"srgb"`
	To      string   `help:"Target color space: catalog name, ICC profile or JSON definition" short:"t" required:""`
	Cat     string   `help:"Chromatic adaptation method" enum:"bradford,von-kries,cat02,xyz-scaling" default:"bradford"`
	Oklab   bool     `help:"Also print Oklab and Oklch coordinates"`
	Model   []string `help:"Also print the result in these models: xyy, uvy, lab, lch, luv, hsl, hsv, hsi, ictcp (203 cd/m² white)" short:"m" sep:","`
	Swatch  string   `help:"Print a 24-bit color swatch of the result" enum:"auto,always,never" default:"auto"`
	Nearest string   `help:"Report the closest entry of a palette: css for the CSS named colors, or a RIFF PAL file"`
	Color   []string `arg:"" help:"Color as three components, #RGB or #RRGGBB hex, or a CSS color name"`

	src     cs.Space        `kong:"-"`
	dst     cs.Space        `kong:"-"`
	cone    cs.ConeSpace    `kong:"-"`
	value   mat3.Vec3       `kong:"-"`
	palette palette.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.src, err = cliarg.Space(c.From); err != nil {
		return fmt.Errorf("invalid source: %w", err)
	}
	if c.dst, err = cliarg.Space(c.To); err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	if c.cone, err = cliarg.ConeSpace(c.Cat); err != nil {
		return err
	}
	if c.value, err = cliarg.Color(c.Color); err != nil {
		return err
	}
	for i, m := range c.Model {
		m = strings.ToLower(m)
		if _, ok := models[m]; !ok {
			return fmt.Errorf("unknown color model %q, want one of %s", m, modelNames())
		}
		c.Model[i] = m
	}

	switch c.Nearest {
	case "":
	case "css":
		c.palette = palette.CSS()
	default:
		if c.palette, err = palette.Load(c.Nearest); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLICmd) Run(out io.Writer) error {
	conv, err := cs.DeriveWith(c.src, c.dst, c.cone)
	if err != nil {
		return fmt.Errorf("could not derive conversion from %s to %s: %w", c.src, c.dst, err)
	}
	slog.Debug("derived conversion", "from", c.src, "to", c.dst, "cat", c.cone,
		"identity", conv.IsIdentity())

	res := conv.Convert(c.value)
	if !res.IsFinite() {
		slog.Warn("conversion produced non-finite values", "value", res)
	}
	fmt.Fprintf(out, "%s: %s\n", c.dst, formatVec(res))

	for _, m := range c.Model {
		v, err := models[m](cs.Color{Value: res, Space: c.dst})
		if err != nil {
			return fmt.Errorf("could not compute %s coordinates: %w", m, err)
		}
		fmt.Fprintf(out, "%s: %s\n", m, formatVec(v))
	}

	if !c.Oklab && c.palette == nil && !c.showSwatch(out) {
		return nil
	}
	lab, err := okcolor.FromColor(cs.Color{Value: c.value, Space: c.src})
	if err != nil {
		return fmt.Errorf("could not compute Oklab coordinates: %w", err)
	}

	if c.Oklab {
		lch := lab.LCh()
		fmt.Fprintf(out, "oklab: %.6f %.6f %.6f\n", lab.L, lab.A, lab.B)
		fmt.Fprintf(out, "oklch: %.6f %.6f %.2f°\n", lch.L, lch.C, degrees(lch.H))
	}

	if c.palette != nil {
		if e, d, ok := c.palette.Nearest(lab); ok {
			fmt.Fprintf(out, "nearest: %s (ΔE %.4f)\n", e.Name, d)
		}
	}

	if c.showSwatch(out) {
		r, g, b, _ := lab.RGBA()
		fmt.Fprintf(out, "\x1b[48;2;%d;%d;%dm        \x1b[0m\n", r>>8, g>>8, b>>8)
	}
	return nil
}

func (c *CLICmd) showSwatch(out io.Writer) bool {
	switch c.Swatch {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatVec(v mat3.Vec3) string {
	return fmt.Sprintf("%.6f %.6f %.6f", v[0], v[1], v[2])
}

func degrees(rad mat3.Float) mat3.Float {
	d := rad * 180 / math.Pi
	if d < 0 {
		d += 360
	}
	return d
}
