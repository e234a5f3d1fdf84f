// Package pngrgba writes PNG files that always carry an alpha channel.
//
// image/png picks the smallest color type that represents an image exactly,
// so a fully opaque image is written as 8-bit truecolor without alpha.
// Encode always writes color type 6 (8-bit RGBA, non-interlaced).
package pngrgba

import (
	"bufio"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"io"
)

// ColorTypeRGBA is the IHDR color type for 8-bit truecolor with alpha.
const ColorTypeRGBA = 6

var signature = []byte("\x89PNG\r\n\x1a\n")

// ErrEmptyImage is returned for images with no pixels, which PNG cannot hold.
var ErrEmptyImage = errors.New("pngrgba: image has zero width or height")

const (
	filterSub = 1
	filterUp  = 2
)

// Encode writes m to w as an 8-bit RGBA PNG.
func Encode(w io.Writer, m *image.NRGBA) error {
	width, height := m.Rect.Dx(), m.Rect.Dy()
	if width <= 0 || height <= 0 {
		return ErrEmptyImage
	}

	e := &encoder{w: w}
	e.write(signature)

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = ColorTypeRGBA
	e.chunk("IHDR", ihdr[:])

	e.writeIDAT(m)
	e.chunk("IEND", nil)
	return e.err
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *encoder) chunk(name string, data []byte) {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], name)

	crc := crc32.NewIEEE()
	_, _ = crc.Write(header[4:8])
	_, _ = crc.Write(data)
	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	e.write(header[:])
	e.write(data)
	e.write(footer[:])
}

// Write implements io.Writer so the zlib stream can be split into IDAT
// chunks by a bufio.Writer.
func (e *encoder) Write(b []byte) (int, error) {
	e.chunk("IDAT", b)
	if e.err != nil {
		return 0, e.err
	}
	return len(b), nil
}

func (e *encoder) writeIDAT(m *image.NRGBA) {
	if e.err != nil {
		return
	}
	bw := bufio.NewWriterSize(e, 1<<15)
	zw, err := zlib.NewWriterLevel(bw, zlib.BestCompression)
	if err != nil {
		e.err = err
		return
	}

	width, height := m.Rect.Dx(), m.Rect.Dy()
	rowLen := 4 * width
	row := make([]byte, 1+rowLen)
	var prev []byte
	for y := 0; y < height; y++ {
		off := m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y+y)
		cur := m.Pix[off : off+rowLen]
		filterRow(row, cur, prev)
		if _, err := zw.Write(row); err != nil {
			e.err = err
			return
		}
		prev = cur
	}
	if err := zw.Close(); err != nil {
		e.err = err
		return
	}
	if err := bw.Flush(); err != nil && e.err == nil {
		e.err = err
	}
}

// filterRow stores the filtered scanline in dst: Up when the row matches the
// previous one byte for byte, otherwise Sub. Solid regions compress to
// almost nothing either way.
func filterRow(dst, cur, prev []byte) {
	if prev != nil && string(cur) == string(prev) {
		dst[0] = filterUp
		for i := range cur {
			dst[1+i] = 0
		}
		return
	}
	dst[0] = filterSub
	for i := range cur {
		if i < 4 {
			dst[1+i] = cur[i]
			continue
		}
		dst[1+i] = cur[i] - cur[i-4]
	}
}
