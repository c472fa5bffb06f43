package tiff

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/echoflaresat/vec3/colors"
	"github.com/echoflaresat/vec3/texture/tiff/compression"
	"github.com/echoflaresat/vec3/texture/tiff/photometric"
	"golang.org/x/exp/mmap"
)

// stripedTiff reads pixels of an uncompressed striped TIFF straight from
// the memory map on every At call.
type stripedTiff struct {
	header Header
	reader io.ReaderAt
}

// OpenStriped memory-maps an uncompressed striped TIFF and returns it as
// a lazily read image. Unsupported variants fail with ErrUnsupported.
func OpenStriped(path string) (image.Image, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	header, err := parseHeader(reader)
	if err != nil {
		return nil, err
	}

	if header.Compression != compression.None {
		return nil, fmt.Errorf("%w: compression %d", ErrUnsupported, header.Compression)
	}
	if len(header.BitsPerSample) == 0 {
		return nil, fmt.Errorf("%w: missing bits per sample", ErrUnsupported)
	}
	switch header.Photometric {
	case photometric.BlackIsZero:
		if header.SamplesPerPixel != 1 || header.BitsPerSample[0] != 8 {
			return nil, fmt.Errorf("%w: grayscale must be a single 8-bit sample", ErrUnsupported)
		}
	case photometric.RGB:
		if header.SamplesPerPixel != 3 || header.BitsPerSample[0] != 8 {
			return nil, fmt.Errorf("%w: RGB must be three 8-bit samples", ErrUnsupported)
		}
	default:
		return nil, fmt.Errorf("%w: photometric %d", ErrUnsupported, header.Photometric)
	}

	if len(header.StripOffsets) == 0 || len(header.StripOffsets) != len(header.StripByteCounts) {
		return nil, fmt.Errorf("%w: missing strip layout", ErrUnsupported)
	}
	if header.RowsPerStrip <= 0 {
		// Single-strip files may omit the tag.
		header.RowsPerStrip = header.Height
	}

	return &stripedTiff{header: header, reader: reader}, nil
}

func (t *stripedTiff) ColorModel() color.Model {
	return color.RGBAModel
}

func (t *stripedTiff) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.header.Width, t.header.Height)
}

// At reads one pixel from the map. Reads past the validated layout only
// fail on truncated files, which surfaces as a panic since image.Image
// has no error channel.
func (t *stripedTiff) At(x, y int) color.Color {
	h := t.header

	strip := y / h.RowsPerStrip
	localY := y % h.RowsPerStrip
	bytesPerPixel := h.SamplesPerPixel

	idx := h.StripOffsets[strip] + (localY*h.Width+x)*bytesPerPixel

	switch h.Photometric {
	case photometric.RGB:
		var buf [3]byte
		if _, err := t.reader.ReadAt(buf[:], int64(idx)); err != nil {
			panic(fmt.Sprintf("could not read RGB pixel at (%d,%d): %v", x, y, err))
		}
		return colors.New(
			float64(buf[0])/255.0,
			float64(buf[1])/255.0,
			float64(buf[2])/255.0,
			1.0,
		)

	default: // BlackIsZero, validated in OpenStriped
		var b [1]byte
		if _, err := t.reader.ReadAt(b[:], int64(idx)); err != nil {
			panic(fmt.Sprintf("could not read grayscale pixel at (%d,%d): %v", x, y, err))
		}
		v := float64(b[0]) / 255.0
		return colors.New(v, v, v, 1.0)
	}
}
