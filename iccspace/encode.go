package iccspace

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/encoding/unicode"
	"seehuhn.de/go/icc"

	cs "colorconv/colorspace"
	"colorconv/mat3"
	"colorconv/transfer"
)

const tagDescription icc.TagType = 0x64657363 // desc

// mluc strings are big endian UTF-16 without byte order mark
var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// ToProfile encodes s as a version 4 display class matrix/TRC profile.
// PQ and HLG curves cannot be written as ICC tone curves and give
// ErrUnsupported.
func ToProfile(s cs.Space) ([]byte, error) {
	trc, err := encodeCurve(s.Transfer())
	if err != nil {
		return nil, err
	}
	colorants, err := PCSMatrix(s)
	if err != nil {
		return nil, err
	}
	pcs, err := cs.WhitePointFromXYZ(PCSWhite)
	if err != nil {
		return nil, err
	}
	chad, err := cs.Adaptation(s.WhitePoint(), pcs)
	if err != nil {
		return nil, err
	}

	return assemble([]tagEntry{
		{tagDescription, encodeMLUC(s.Name())},
		{tagWhite, encodeXYZ(PCSWhite)},
		{tagAdapt, encodeSF32(chad)},
		{tagRedXYZ, encodeXYZ(colorants.Col(0))},
		{tagGreenXYZ, encodeXYZ(colorants.Col(1))},
		{tagBlueXYZ, encodeXYZ(colorants.Col(2))},
		{tagRedTRC, trc},
		{tagGreenTRC, trc},
		{tagBlueTRC, trc},
	}, "RGB "), nil
}

type tagEntry struct {
	sig  icc.TagType
	data []byte
}

// assemble writes a profile header for the given device space followed by
// the tag table and tag data.
func assemble(tags []tagEntry, device string) []byte {
	offset := 128 + 4 + 12*len(tags)
	table := make([]byte, 0, offset-128)
	table = binary.BigEndian.AppendUint32(table, uint32(len(tags)))
	var body []byte
	for _, t := range tags {
		table = binary.BigEndian.AppendUint32(table, uint32(t.sig))
		table = binary.BigEndian.AppendUint32(table, uint32(offset+len(body)))
		table = binary.BigEndian.AppendUint32(table, uint32(len(t.data)))
		body = append(body, t.data...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
	}

	header := make([]byte, 128)
	be := binary.BigEndian
	be.PutUint32(header[0:], uint32(offset+len(body)))
	be.PutUint32(header[8:], 0x04300000)
	copy(header[12:], "mntr")
	copy(header[16:], device)
	copy(header[20:], "XYZ ")
	be.PutUint16(header[24:], 2024)
	be.PutUint16(header[26:], 1)
	be.PutUint16(header[28:], 1)
	copy(header[36:], "acsp")
	for i, v := range PCSWhite {
		putS15Fixed16(header[68+4*i:], v)
	}

	out := make([]byte, 0, offset+len(body))
	out = append(out, header...)
	out = append(out, table...)
	return append(out, body...)
}

func encodeCurve(tf transfer.Func) ([]byte, error) {
	switch tf := tf.(type) {
	case transfer.Linear:
		return []byte{'c', 'u', 'r', 'v', 0, 0, 0, 0, 0, 0, 0, 0}, nil
	case transfer.Gamma:
		return encodePara(0, tf.Exponent), nil
	case transfer.SRGB:
		return encodePara(3, 2.4, 1/1.055, 0.055/1.055, 1/12.92, 0.04045), nil
	case transfer.Parametric:
		return encodePara(3, tf.G, tf.A, tf.B, tf.C, tf.D), nil
	default:
		return nil, fmt.Errorf("%w: %s tone curve", ErrUnsupported, tf)
	}
}

func encodePara(kind uint16, params ...mat3.Float) []byte {
	b := make([]byte, 12+4*len(params))
	copy(b, "para")
	binary.BigEndian.PutUint16(b[8:], kind)
	for i, p := range params {
		putS15Fixed16(b[12+4*i:], p)
	}
	return b
}

func encodeXYZ(v mat3.Vec3) []byte {
	b := make([]byte, 20)
	copy(b, "XYZ ")
	for i, x := range v {
		putS15Fixed16(b[8+4*i:], x)
	}
	return b
}

func encodeSF32(m mat3.Mat3) []byte {
	b := make([]byte, 8+9*4)
	copy(b, "sf32")
	for i := range 9 {
		putS15Fixed16(b[8+4*i:], m[i/3][i%3])
	}
	return b
}

func encodeMLUC(text string) []byte {
	str, err := utf16BE.NewEncoder().String(text)
	if err != nil {
		str = ""
	}
	b := make([]byte, 28, 28+len(str))
	be := binary.BigEndian
	copy(b, "mluc")
	be.PutUint32(b[8:], 1)
	be.PutUint32(b[12:], 12)
	copy(b[16:], "enUS")
	be.PutUint32(b[20:], uint32(len(str)))
	be.PutUint32(b[24:], 28)
	return append(b, str...)
}

func putS15Fixed16(b []byte, x mat3.Float) {
	v := int32(math.Round(float64(x) * 65536))
	binary.BigEndian.PutUint32(b, uint32(v))
}

// readDescription returns the profile description, or "" when the tag is
// absent or cannot be read.
func readDescription(tags map[icc.TagType][]byte) string {
	data := tags[tagDescription]
	if len(data) < 12 {
		return ""
	}
	be := binary.BigEndian
	switch string(data[:4]) {
	case "desc":
		n := int(be.Uint32(data[8:]))
		if n == 0 || len(data) < 12+n {
			return ""
		}
		return string(trimNUL(data[12 : 12+n]))
	case "mluc":
		if len(data) < 28 || be.Uint32(data[8:]) == 0 {
			return ""
		}
		n, off := int(be.Uint32(data[20:])), int(be.Uint32(data[24:]))
		if off+n > len(data) {
			return ""
		}
		text, err := utf16BE.NewDecoder().Bytes(data[off : off+n])
		if err != nil {
			return ""
		}
		return string(text)
	}
	return ""
}

func trimNUL(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return b
}
