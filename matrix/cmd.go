package matrix

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"colorconv/cliarg"
	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/parallel"
)

type PairParams struct {
	From string `help:"Source color space" short:"f" required:""`
	To   string `help:"Target color space" short:"t" required:""`
}

type TableParams struct {
	Package string `help:"Package name of the generated file" default:"colortables"`
	Output  string `help:"Output file, standard output if empty" short:"o" type:"path"`
}

type CLICmd struct {
	Cat string `help:"Chromatic adaptation method" enum:"bradford,von-kries,cat02,xyz-scaling" default:"bradford"`

	Pair struct {
		PairParams
	} `cmd:"" default:"withargs" help:"Print the linear RGB matrix between two color spaces"`
	Table struct {
		TableParams
	} `cmd:"" help:"Generate Go source with the matrices between all catalog spaces"`

	cone     cs.ConeSpace `kong:"-"`
	src, dst cs.Space     `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.cone, err = cliarg.ConeSpace(c.Cat); err != nil {
		return err
	}

	if kctx == nil || kctx.Selected().Name != "pair" {
		return nil
	}
	if c.src, err = cliarg.Space(c.Pair.From); err != nil {
		return fmt.Errorf("invalid source: %w", err)
	}
	if c.dst, err = cliarg.Space(c.Pair.To); err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}
	return nil
}

func (c *CLICmd) Run(subCmd string, worker parallel.WorkerFunc, wait parallel.WaitFunc, out io.Writer) error {
	switch subCmd {
	case "table":
		return c.runTable(worker, wait, out)
	default:
		return c.runPair(out)
	}
}

func (c *CLICmd) runPair(out io.Writer) error {
	conv, err := cs.DeriveWith(c.src, c.dst, c.cone)
	if err != nil {
		return fmt.Errorf("could not derive conversion from %s to %s: %w", c.src, c.dst, err)
	}
	m := conv.Matrix()
	fmt.Fprintf(out, "# %s -> %s (%s)\n", c.src, c.dst, c.cone)
	for _, row := range m {
		fmt.Fprintf(out, "%12.9f %12.9f %12.9f\n", row[0], row[1], row[2])
	}
	if !c.src.IsLinear() || !c.dst.IsLinear() {
		slog.Debug("matrix applies to decoded values", "from", c.src.Transfer(), "to", c.dst.Transfer())
	}
	return nil
}

func (c *CLICmd) runTable(worker parallel.WorkerFunc, wait parallel.WaitFunc, out io.Writer) error {
	entries, err := deriveTable(worker, wait, c.cone)
	if err != nil {
		return err
	}
	src, err := generate(c.Table.Package, c.cone, entries)
	if err != nil {
		return err
	}

	if c.Table.Output == "" {
		_, err = out.Write(src)
		return err
	}
	if err := os.WriteFile(c.Table.Output, src, 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", c.Table.Output, err)
	}
	slog.Info("stats", "file", c.Table.Output, "matrices", len(entries))
	return nil
}

// entry is the matrix between two catalog spaces.
type entry struct {
	From, To string
	M        mat3.Mat3
}
