package colorspace

import (
	"fmt"

	"colorconv/mat3"
)

// Color is a value together with the space it is encoded in.
type Color struct {
	Value mat3.Vec3
	Space Space
}

// To returns the color converted to the space dst.
func (c Color) To(dst Space) (Color, error) {
	conv, err := Derive(c.Space, dst)
	if err != nil {
		return Color{}, err
	}
	return Color{Value: conv.Convert(c.Value), Space: dst}, nil
}

// XYZ returns the tristimulus value of c relative to its space's white
// point.
func (c Color) XYZ() mat3.Vec3 {
	return c.Space.ToXYZ(c.Value)
}

func (c Color) String() string {
	return fmt.Sprintf("%s(%.6g, %.6g, %.6g)", c.Space, c.Value[0], c.Value[1], c.Value[2])
}
