package matrix

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"

	cs "colorconv/colorspace"
	"colorconv/parallel"
	"colorconv/spaces"
)

// deriveTable derives the matrices between all pairs of distinct catalog
// spaces with different primaries.
func deriveTable(worker parallel.WorkerFunc, wait parallel.WaitFunc, cone cs.ConeSpace) ([]entry, error) {
	var cache cs.Cache
	names := spaces.Names()

	var pairs [][2]string
	for _, from := range names {
		for _, to := range names {
			a, _ := spaces.Lookup(from)
			b, _ := spaces.Lookup(to)
			if a.Primaries() == b.Primaries() {
				continue
			}
			pairs = append(pairs, [2]string{from, to})
		}
	}

	entries := make([]entry, len(pairs))
	err := parallel.ForEach(worker, wait, len(pairs), func(i int) error {
		from, to := pairs[i][0], pairs[i][1]
		a, _ := spaces.Lookup(from)
		b, _ := spaces.Lookup(to)

		// the matrix does not depend on the transfer functions
		conv, err := cache.DeriveWith(a.Linear(), b.Linear(), cone)
		if err != nil {
			slog.Error("could not derive matrix", "from", from, "to", to, "error", err)
			return fmt.Errorf("%s -> %s: %w", from, to, err)
		}
		entries[i] = entry{From: from, To: to, M: conv.Matrix()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("derived table", "pairs", len(pairs), "derived", cache.Len())
	return entries, nil
}

// generate renders the entries as a gofmt formatted Go source file.
func generate(pkg string, cone cs.ConeSpace, entries []entry) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by colorconv matrix table; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// Matrices maps pairs of color spaces to the matrix converting linear RGB\n")
	fmt.Fprintf(&buf, "// values between them, using %s chromatic adaptation.\n", cone)
	fmt.Fprintf(&buf, "var Matrices = map[[2]string][3][3]float64{\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "{%q, %q}: {\n", e.From, e.To)
		for _, row := range e.M {
			fmt.Fprintf(&buf, "{%.17g, %.17g, %.17g},\n", row[0], row[1], row[2])
		}
		fmt.Fprintf(&buf, "},\n")
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not format generated code: %w", err)
	}
	return src, nil
}
