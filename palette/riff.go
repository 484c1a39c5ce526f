package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// palVersion is stored as the bytes 0x00 0x03.
const palVersion = 0x0300

// ErrTooManyColors is returned by WriteTo for palettes whose size does not
// fit into the 16-bit entry count of a PAL chunk.
var ErrTooManyColors = errors.New("too many colors for a RIFF palette")

// ReadFrom reads all palettes of a RIFF PAL stream.
func ReadFrom(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readPalettes(rd, string(formType[:]))
}

func readPalettes(r *riff.Reader, ident string) ([]color.Palette, error) {
	var res []color.Palette

	for {
		id, size, data, err := r.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("could not read chunk %q#%d: %w", ident, len(res), err)
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, fmt.Errorf("could not read list from chunk %q#%d: %w", ident, len(res), err)
			} else if listType != palType {
				return res, fmt.Errorf("chunk %q#%d unsupported type: %s", ident, len(res), string(listType[:]))
			}

			nested, err := readPalettes(list, fmt.Sprintf("%s%d.%s", ident, len(res), listType[:]))
			res = append(res, nested...)
			if err != nil {
				return res, err
			}
		case dataType:
			pal, err := readPalette(data, fmt.Sprintf("%s%d", ident, len(res)))
			if err != nil {
				return res, err
			}
			res = append(res, pal)
		default:
			return res, fmt.Errorf("unsupported chunk type in %q#%d: %s", ident, len(res), id)
		}
	}
}

func readPalette(r io.Reader, ident string) (color.Palette, error) {
	var hdr struct {
		Version uint16
		Count   uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("could not read header of chunk %s: %w", ident, err)
	}
	if hdr.Version != palVersion {
		return nil, fmt.Errorf("unsupported palette version in chunk %s: %#04x", ident, hdr.Version)
	}

	entries := make([][4]byte, hdr.Count)
	if err := binary.Read(r, binary.LittleEndian, entries); err != nil {
		return nil, fmt.Errorf("could not read %d colors from chunk %s: %w", hdr.Count, ident, err)
	}

	res := make(color.Palette, hdr.Count)
	for i, e := range entries {
		res[i] = color.RGBA{R: e[0], G: e[1], B: e[2], A: 0xff}
	}
	return res, nil
}

// WriteTo writes pals as a RIFF PAL stream and returns the number of
// bytes written.
func WriteTo(w io.Writer, pals []color.Palette) (int64, error) {
	size := 4
	for i, pal := range pals {
		if len(pal) > math.MaxUint16 {
			return 0, fmt.Errorf("palette %d: %w (%d)", i, ErrTooManyColors, len(pal))
		}
		size += 4 + 4 + 4 + len(pal)*4 // chunk id + chunk size + palVersion + palNumEntries + 4 bytes/color
	}

	cw := &countingWriter{w: w}
	cw.write(riffType[:])
	cw.write(binary.LittleEndian.AppendUint32(nil, uint32(size)))
	cw.write(palType[:])
	for _, pal := range pals {
		writePalette(cw, pal)
	}
	if cw.err != nil {
		return cw.n, fmt.Errorf("could not write palette: %w", cw.err)
	}
	return cw.n, nil
}

func writePalette(cw *countingWriter, pal color.Palette) {
	cw.write(dataType[:])
	cw.write(binary.LittleEndian.AppendUint32(nil, uint32(4+len(pal)*4)))
	cw.write(binary.LittleEndian.AppendUint16(nil, palVersion))
	cw.write(binary.LittleEndian.AppendUint16(nil, uint16(len(pal))))
	for _, col := range pal {
		c := color.NRGBAModel.Convert(col).(color.NRGBA)
		cw.write([]byte{c.R, c.G, c.B, 0x00})
	}
}

// countingWriter keeps the first error and the number of bytes written.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) write(b []byte) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	cw.err = err
}
