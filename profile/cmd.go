package profile

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"colorconv/cliarg"
	cs "colorconv/colorspace"
	"colorconv/iccspace"
)

type CLICmd struct {
	Space  string `arg:"" help:"Color space to write: catalog name or JSON definition"`
	Output string `help:"Destination file, standard output if empty" short:"o" type:"path"`
	Force  bool   `help:"Overwrite an existing destination file"`

	space cs.Space `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.space, err = cliarg.Space(c.Space); err != nil {
		return err
	}
	if c.Output != "" && !c.Force {
		if _, err := os.Stat(c.Output); err == nil {
			return fmt.Errorf("destination file already exists: %q", c.Output)
		}
	}
	return nil
}

func (c *CLICmd) Run(out io.Writer) error {
	data, err := iccspace.ToProfile(c.space)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", c.space, err)
	}

	if c.Output == "" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("could not write profile %q: %w", c.Output, err)
	}
	slog.Info("wrote profile", "file", c.Output, "space", c.space, "size", len(data))
	return nil
}
