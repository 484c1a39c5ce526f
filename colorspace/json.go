package colorspace

import (
	"encoding/json"
	"fmt"

	"colorconv/mat3"
	"colorconv/transfer"
)

// The JSON forms mirror the constructor arguments.  Decoding runs the
// constructors, so invalid definitions are rejected with the usual errors.

type jsonChromaticity struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonPrimaries struct {
	Red   Chromaticity `json:"red"`
	Green Chromaticity `json:"green"`
	Blue  Chromaticity `json:"blue"`
	White WhitePoint   `json:"white"`
}

type jsonSpace struct {
	Name      string          `json:"name,omitempty"`
	Primaries Primaries       `json:"primaries"`
	Transfer  json.RawMessage `json:"transfer"`
}

// MarshalJSON implements the json.Marshaler interface.
func (c Chromaticity) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonChromaticity{X: float64(c.X), Y: float64(c.Y)})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *Chromaticity) UnmarshalJSON(data []byte) error {
	var j jsonChromaticity
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	c.X, c.Y = mat3.Float(j.X), mat3.Float(j.Y)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.  Named illuminants
// are written by name.
func (w WhitePoint) MarshalJSON() ([]byte, error) {
	if name := w.Name(); name != "" {
		return json.Marshal(name)
	}
	return json.Marshal(w.xy)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (w *WhitePoint) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		named, ok := LookupWhitePoint(name)
		if !ok {
			return fmt.Errorf("unknown white point %q", name)
		}
		*w = named
		return nil
	}

	var xy Chromaticity
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}
	res, err := NewWhitePoint(xy)
	if err != nil {
		return err
	}
	*w = res
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (p Primaries) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPrimaries{Red: p.r, Green: p.g, Blue: p.b, White: p.white})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Primaries) UnmarshalJSON(data []byte) error {
	var j jsonPrimaries
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	res, err := NewPrimaries(j.Red, j.Green, j.Blue, j.White)
	if err != nil {
		return err
	}
	*p = res
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (s Space) MarshalJSON() ([]byte, error) {
	tf, err := transfer.Marshal(s.tf)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonSpace{Name: s.name, Primaries: s.primaries, Transfer: tf})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Space) UnmarshalJSON(data []byte) error {
	var j jsonSpace
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	tf, err := transfer.Unmarshal(j.Transfer)
	if err != nil {
		return fmt.Errorf("color space %q: %w", j.Name, err)
	}
	res, err := NewSpace(j.Name, j.Primaries, tf)
	if err != nil {
		return err
	}
	*s = res
	return nil
}
