// Package cliarg parses the color space and color arguments shared by the
// colorconv commands.
package cliarg

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	cs "colorconv/colorspace"
	"colorconv/iccspace"
	"colorconv/mat3"
	"colorconv/spaces"
)

// Space resolves a color space argument: a catalog key such as
// "display-p3", an ICC profile (*.icc, *.icm) or a JSON space definition
// (*.json).
func Space(arg string) (cs.Space, error) {
	if s, ok := spaces.Lookup(strings.ToLower(arg)); ok {
		return s, nil
	}

	switch strings.ToLower(filepath.Ext(arg)) {
	case ".icc", ".icm":
		data, err := os.ReadFile(arg)
		if err != nil {
			return cs.Space{}, fmt.Errorf("could not read profile: %w", err)
		}
		s, err := iccspace.FromProfile(data)
		if err != nil {
			return cs.Space{}, fmt.Errorf("profile %q: %w", arg, err)
		}
		return s, nil
	case ".json":
		data, err := os.ReadFile(arg)
		if err != nil {
			return cs.Space{}, fmt.Errorf("could not read space definition: %w", err)
		}
		var s cs.Space
		if err := json.Unmarshal(data, &s); err != nil {
			return cs.Space{}, fmt.Errorf("space definition %q: %w", arg, err)
		}
		return s, nil
	}

	return cs.Space{}, fmt.Errorf("unknown color space %q, expected one of %s or a .icc/.json file",
		arg, strings.Join(spaces.Names(), ", "))
}

// Color parses a color given as three numbers (as separate arguments or
// separated by commas), a #rgb or #rrggbb hex code, or a CSS color name.
// Hex codes and names yield encoded values in [0, 1].
func Color(args []string) (mat3.Vec3, error) {
	if len(args) == 1 {
		arg := args[0]
		if strings.HasPrefix(arg, "#") {
			c, err := parseHexToColor(arg)
			if err != nil {
				return mat3.Vec3{}, err
			}
			return fromRGBA(c), nil
		}
		if c, ok := colornames.Map[strings.ToLower(arg)]; ok {
			return fromRGBA(c), nil
		}
		args = strings.Split(arg, ",")
	}
	if len(args) != 3 {
		return mat3.Vec3{}, fmt.Errorf("invalid color %q: need three components, a hex code or a color name",
			strings.Join(args, " "))
	}

	var v mat3.Vec3
	for i, a := range args {
		x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return mat3.Vec3{}, fmt.Errorf("invalid color component %q: %w", a, err)
		}
		v[i] = mat3.Float(x)
	}
	return v, nil
}

// ConeSpace parses a chromatic adaptation method name.
func ConeSpace(arg string) (cs.ConeSpace, error) {
	return cs.ParseConeSpace(strings.ToLower(arg))
}

func fromRGBA(c color.RGBA) mat3.Vec3 {
	return mat3.Vec3{
		mat3.Float(c.R) / 255,
		mat3.Float(c.G) / 255,
		mat3.Float(c.B) / 255,
	}
}

func parseHexToColor(s string) (color.RGBA, error) {
	var c color.RGBA
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return c, fmt.Errorf("insufficient color fields: %d", n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return c, fmt.Errorf("insufficient color fields: %d", n)
		}
	default:
		return c, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}

	c.A = 0xFF
	return c, nil
}
