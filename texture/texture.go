// Package texture loads equirectangular Earth textures and samples them
// by ECEF position.
//
// Loading tries the cheap paths first: the striped and tiled TIFF readers
// map the file and fetch pixels lazily, so huge rasters never sit fully
// decoded in memory. Files neither reader handles fall through to the
// full TIFF codec and then to the stdlib image decoders.
package texture

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode

	tiffcodec "github.com/echoflaresat/tiff"
	"go.uber.org/zap"

	"github.com/echoflaresat/vec3"
	"github.com/echoflaresat/vec3/colors"
	"github.com/echoflaresat/vec3/internal/logger"
	"github.com/echoflaresat/vec3/texture/tiff"
)

// Texture is an image sampled by ECEF position vectors using a lon-lat
// projection.
type Texture struct {
	Width  int
	Height int
	img    image.Image
}

// Load opens the image at path and wraps it for sampling.
func Load(path string) (Texture, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return Texture{}, fmt.Errorf("loading texture %s: %w", path, err)
	}

	t := FromImage(img)
	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height))
	return t, nil
}

// FromImage wraps an already decoded image, mainly for tests and tools.
func FromImage(img image.Image) Texture {
	b := img.Bounds()
	return Texture{
		Width:  b.Dx(),
		Height: b.Dy(),
		img:    img,
	}
}

// DecodeFile opens the image at path, trying the lazy TIFF readers
// before the full decoders.
func DecodeFile(path string) (image.Image, error) {
	img, err := tiff.OpenStriped(path)
	if err == nil {
		return img, nil
	}
	warnUnexpected("striped TIFF reader failed", path, err)

	img, err = tiff.OpenTiled(path)
	if err == nil {
		return img, nil
	}
	warnUnexpected("tiled TIFF reader failed", path, err)

	// Fall back to decoding the whole file.
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err = tiffcodec.Decode(f)
	if err == nil {
		return img, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err = image.Decode(f)
	return img, err
}

// warnUnexpected logs reader failures that are not the routine "wrong
// format, try the next reader" outcomes.
func warnUnexpected(msg, path string, err error) {
	if errors.Is(err, tiff.ErrInvalidHeader) || errors.Is(err, tiff.ErrUnsupported) {
		return
	}
	logger.Warn(msg, zap.String("path", path), zap.Error(err))
}

// Sample maps the position p to texture coordinates and returns the pixel
// there. Longitude zero lands on the horizontal center of the image;
// there is no interpolation.
func (t Texture) Sample(p vec3.Expr[float64]) colors.Color4 {
	px, py, pz := p.X(), p.Y(), p.Z()

	lat := math.Atan2(pz, math.Sqrt(px*px+py*py))
	lon := math.Atan2(py, px)
	if lon < 0 {
		lon += 2 * math.Pi
	}

	u := float64(t.Width)/2.0 + lon/(2*math.Pi)*float64(t.Width-1)
	u = math.Mod(u, float64(t.Width))
	if u < 0 {
		u += float64(t.Width)
	}
	v := (0.5 - (lat / math.Pi)) * float64(t.Height-1)

	x := int(u)
	y := int(v)

	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}

	return colors.FromColor(t.img.At(x, y))
}
