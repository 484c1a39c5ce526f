package colorspace

import (
	"fmt"

	"colorconv/mat3"
	"colorconv/transfer"
)

// Space describes an RGB color space: its primaries, reference white and
// transfer function.  Spaces are immutable values.  Two spaces with equal
// primaries and transfer function are interchangeable, whatever their names.
type Space struct {
	name      string
	primaries Primaries
	tf        transfer.Func
	toXYZ     mat3.Mat3
}

// Key identifies a Space by value.  Keys are comparable and can be used as
// map keys.
type Key struct {
	Primaries Primaries
	Transfer  transfer.Func
}

// NewSpace returns the color space with the given primaries and transfer
// function, and derives its RGB to XYZ matrix.
func NewSpace(name string, p Primaries, tf transfer.Func) (Space, error) {
	if err := transfer.Validate(tf); err != nil {
		return Space{}, fmt.Errorf("color space %q: %w", name, err)
	}
	m, err := p.rgbToXYZ()
	if err != nil {
		return Space{}, fmt.Errorf("color space %q: %w", name, err)
	}
	return Space{
		name:      name,
		primaries: p,
		tf:        tf,
		toXYZ:     m,
	}, nil
}

// MustSpace is like NewSpace but panics on error.  It is intended for
// package level definitions from literal constants.
func MustSpace(name string, p Primaries, tf transfer.Func) Space {
	s, err := NewSpace(name, p, tf)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name the space was constructed with.
func (s Space) Name() string { return s.name }

// Primaries returns the primaries of the space, including its white point.
func (s Space) Primaries() Primaries { return s.primaries }

// WhitePoint returns the reference white of the space.
func (s Space) WhitePoint() WhitePoint { return s.primaries.white }

// Transfer returns the transfer function of the space.
func (s Space) Transfer() transfer.Func { return s.tf }

// RGBToXYZ returns the matrix mapping linear RGB values of the space to XYZ
// values relative to its white point.
func (s Space) RGBToXYZ() mat3.Mat3 { return s.toXYZ }

// IsLinear reports whether the transfer function of the space is the
// identity.
func (s Space) IsLinear() bool { return s.tf != nil && s.tf.IsLinear() }

// IsZero reports whether s is the zero value.
func (s Space) IsZero() bool { return s.tf == nil }

// Key returns the value-equality key of the space.
func (s Space) Key() Key {
	return Key{Primaries: s.primaries, Transfer: s.tf}
}

// Equal reports whether s and other describe the same color space.
// Names are ignored.
func (s Space) Equal(other Space) bool {
	return s.Key() == other.Key()
}

// ToXYZ maps an encoded RGB value of the space to XYZ relative to the
// space's white point.
func (s Space) ToXYZ(rgb mat3.Vec3) mat3.Vec3 {
	return s.toXYZ.Apply(transfer.DecodeVec(s.tf, rgb))
}

// WithName returns a copy of s with a different name.
func (s Space) WithName(name string) Space {
	s.name = name
	return s
}

// WithTransfer returns a space with the primaries of s and the transfer
// function tf.
func (s Space) WithTransfer(name string, tf transfer.Func) (Space, error) {
	if err := transfer.Validate(tf); err != nil {
		return Space{}, fmt.Errorf("color space %q: %w", name, err)
	}
	s.name = name
	s.tf = tf
	return s, nil
}

// WithWhitePoint returns a space with the primary chromaticities and transfer
// function of s and the reference white w.
func (s Space) WithWhitePoint(name string, w WhitePoint) (Space, error) {
	p, err := s.primaries.WithWhitePoint(w)
	if err != nil {
		return Space{}, fmt.Errorf("color space %q: %w", name, err)
	}
	return NewSpace(name, p, s.tf)
}

// Linear returns the linear-light variant of s.
func (s Space) Linear() Space {
	if s.IsLinear() {
		return s
	}
	s.name = "linear " + s.name
	s.tf = transfer.Linear{}
	return s
}

func (s Space) String() string {
	if s.name != "" {
		return s.name
	}
	return fmt.Sprintf("%s, %s", s.primaries, s.tf)
}

// XYZ returns the CIE XYZ space with reference white w.  RGB values in this
// space are XYZ values relative to w.
func XYZ(w WhitePoint) (Space, error) {
	p, err := CIEXYZ.WithWhitePoint(w)
	if err != nil {
		return Space{}, err
	}
	return NewSpace("CIE XYZ "+w.String(), p, transfer.Linear{})
}
