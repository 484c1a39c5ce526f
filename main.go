package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"colorconv/convert"
	"colorconv/inspect"
	"colorconv/matrix"
	"colorconv/parallel"
	"colorconv/profile"
)

type cli struct {
	LogLevel slog.Level `help:"Log level (debug, info, warn, error)" default:"info"`
	Workers  int        `help:"Number of parallel workers, one per CPU if 0" default:"0"`

	Convert convert.CLICmd `cmd:"" help:"Convert a color from one color space to another"`
	Matrix  matrix.CLICmd  `cmd:"" help:"Print or generate linear conversion matrices"`
	Inspect inspect.CLICmd `cmd:"" help:"Describe catalog color spaces and ICC profiles"`
	Profile profile.CLICmd `cmd:"" help:"Write a color space as an ICC profile"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("colorconv"),
		kong.Description("Convert colors between RGB color spaces."),
		kong.UsageOnError(),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel})))

	pool := parallel.Start(c.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(pool.Do, pool.Wait, kctx.Selected().Name)
	pool.Wait(true)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
