package transfer

import (
	"encoding/json"
	"fmt"

	"colorconv/mat3"
)

// jsonFunc is the serialized form of all curves.  Kind selects the curve,
// the remaining fields hold its parameters.
type jsonFunc struct {
	Kind      string      `json:"kind"`
	Exponent  mat3.Float  `json:"exponent,omitempty"`
	Luminance mat3.Float  `json:"luminance,omitempty"`
	Params    *Parametric `json:"params,omitempty"`
}

// Marshal returns the JSON encoding of f.
func Marshal(f Func) ([]byte, error) {
	var j jsonFunc
	switch f := f.(type) {
	case Linear:
		j.Kind = "linear"
	case Gamma:
		j.Kind = "gamma"
		j.Exponent = f.Exponent
	case SRGB:
		j.Kind = "srgb"
	case Parametric:
		j.Kind = "parametric"
		j.Params = &f
	case PQ:
		j.Kind = "pq"
		j.Luminance = f.Luminance
	case HLG:
		j.Kind = "hlg"
	default:
		return nil, fmt.Errorf("%w: cannot marshal %T", ErrInvalidParameters, f)
	}
	return json.Marshal(j)
}

// Unmarshal decodes a curve encoded by Marshal and validates its
// parameters.
func Unmarshal(data []byte) (Func, error) {
	var j jsonFunc
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, err
	}

	var f Func
	switch j.Kind {
	case "linear":
		f = Linear{}
	case "gamma":
		f = Gamma{Exponent: j.Exponent}
	case "srgb":
		f = SRGB{}
	case "parametric":
		if j.Params == nil {
			return nil, fmt.Errorf("%w: parametric curve without parameters", ErrInvalidParameters)
		}
		f = *j.Params
	case "pq":
		f = PQ{Luminance: j.Luminance}
	case "hlg":
		f = HLG{}
	default:
		return nil, fmt.Errorf("%w: unknown curve %q", ErrInvalidParameters, j.Kind)
	}
	if err := Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}
