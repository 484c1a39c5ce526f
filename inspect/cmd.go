package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"seehuhn.de/go/icc"

	cs "colorconv/colorspace"
	"colorconv/iccspace"
	"colorconv/spaces"
)

type CLICmd struct {
	Spaces struct {
		JSON bool `help:"Print the catalog as JSON space definitions"`
	} `cmd:"" help:"List the color space catalog"`
	ICC struct {
		File string `arg:"" help:"ICC profile to read" type:"existingfile"`
		JSON bool   `help:"Print the derived space as a JSON space definition"`
	} `cmd:"" name:"icc" help:"Describe the color space of an ICC profile"`

	profile []byte `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if kctx == nil || kctx.Selected().Name != "icc" {
		return nil
	}
	data, err := os.ReadFile(c.ICC.File)
	if err != nil {
		return fmt.Errorf("could not read profile: %w", err)
	}
	c.profile = data
	return nil
}

func (c *CLICmd) Run(subCmd string, out io.Writer) error {
	switch subCmd {
	case "icc":
		return c.runICC(out)
	default:
		return c.runSpaces(out)
	}
}

func (c *CLICmd) runSpaces(out io.Writer) error {
	if c.Spaces.JSON {
		catalog := make(map[string]cs.Space)
		for _, name := range spaces.Names() {
			catalog[name], _ = spaces.Lookup(name)
		}
		return writeJSON(out, catalog)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tPRIMARIES\tWHITE\tTRANSFER")
	for _, name := range spaces.Names() {
		s, _ := spaces.Lookup(name)
		prim := s.Primaries().Name()
		if prim == "" {
			prim = "custom"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, s.Name(), prim, s.WhitePoint(), s.Transfer())
	}
	return w.Flush()
}

func (c *CLICmd) runICC(out io.Writer) error {
	p, err := icc.Decode(c.profile)
	if err != nil {
		return fmt.Errorf("could not decode profile %q: %w", c.ICC.File, err)
	}
	s, err := iccspace.FromProfile(c.profile)
	if err != nil {
		return fmt.Errorf("profile %q: %w", c.ICC.File, err)
	}
	if c.ICC.JSON {
		return writeJSON(out, s)
	}

	pcs, err := iccspace.PCSMatrix(s)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "file\t%s\n", c.ICC.File)
	fmt.Fprintf(w, "version\t%v\n", p.Version)
	fmt.Fprintf(w, "class\t%v\n", p.Class)
	fmt.Fprintf(w, "device space\t%v\n", p.ColorSpace)
	fmt.Fprintf(w, "connection space\t%v\n", p.PCS)
	fmt.Fprintf(w, "name\t%s\n", s.Name())
	fmt.Fprintf(w, "red\t%s\n", s.Primaries().Red())
	fmt.Fprintf(w, "green\t%s\n", s.Primaries().Green())
	fmt.Fprintf(w, "blue\t%s\n", s.Primaries().Blue())
	fmt.Fprintf(w, "white\t%s\n", s.WhitePoint())
	fmt.Fprintf(w, "transfer\t%s\n", s.Transfer())
	if key, ok := spaces.Find(s); ok {
		fmt.Fprintf(w, "catalog\t%s\n", key)
	}
	for i, row := range pcs {
		label := ""
		if i == 0 {
			label = "D50 colorants"
		}
		fmt.Fprintf(w, "%s\t%9.6f %9.6f %9.6f\n", label, row[0], row[1], row[2])
	}
	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
