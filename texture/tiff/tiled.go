package tiff

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/mmap"

	"github.com/echoflaresat/vec3/texture/tiff/compression"
	"github.com/echoflaresat/vec3/texture/tiff/photometric"
)

// tileCacheSize bounds how many decompressed tiles stay resident.
const tileCacheSize = 200

// tiledTiff decompresses tiles on demand and keeps the most recently used
// ones in an LRU cache. The cache is safe for concurrent readers.
type tiledTiff struct {
	header Header
	reader *mmap.ReaderAt
	cache  *lru.Cache // tile index -> decompressed bytes
}

// OpenTiled memory-maps a tiled TIFF, uncompressed or deflate-compressed,
// and returns it as a lazily decoded image. Unsupported variants fail
// with ErrUnsupported.
func OpenTiled(path string) (image.Image, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	header, err := parseHeader(reader)
	if err != nil {
		return nil, err
	}

	if header.Compression != compression.None && header.Compression != compression.Deflate {
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

	if header.TileWidth <= 0 || header.TileHeight <= 0 {
		return nil, fmt.Errorf("%w: missing tile dimensions", ErrUnsupported)
	}
	if len(header.TileOffsets) == 0 || len(header.TileOffsets) != len(header.TileByteCounts) {
		return nil, fmt.Errorf("%w: missing tile layout", ErrUnsupported)
	}

	cache, _ := lru.New(tileCacheSize)

	return &tiledTiff{
		header: header,
		reader: reader,
		cache:  cache,
	}, nil
}

func (t *tiledTiff) ColorModel() color.Model {
	return color.RGBAModel
}

func (t *tiledTiff) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.header.Width, t.header.Height)
}

func (t *tiledTiff) At(x, y int) color.Color {
	h := t.header

	tileX := x / h.TileWidth
	tileY := y / h.TileHeight
	tilesAcross := int(math.Ceil(float64(h.Width) / float64(h.TileWidth)))
	tileIndex := tileY*tilesAcross + tileX

	var tile []byte
	if val, ok := t.cache.Get(tileIndex); ok {
		tile = val.([]byte)
	} else {
		tile = t.loadTile(tileIndex)
		t.cache.Add(tileIndex, tile)
	}

	localX := x % h.TileWidth
	localY := y % h.TileHeight
	rowStride := h.TileWidth * h.SamplesPerPixel
	pixOffset := localY*rowStride + localX*h.SamplesPerPixel

	switch h.Photometric {
	case photometric.RGB:
		return color.RGBA{
			R: tile[pixOffset],
			G: tile[pixOffset+1],
			B: tile[pixOffset+2],
			A: 255,
		}
	default: // BlackIsZero, validated in OpenTiled
		v := tile[pixOffset]
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}
}

func (t *tiledTiff) loadTile(index int) []byte {
	h := t.header
	offset := h.TileOffsets[index]
	byteCount := h.TileByteCounts[index]

	buf := make([]byte, byteCount)
	if _, err := t.reader.ReadAt(buf, int64(offset)); err != nil {
		panic(fmt.Sprintf("failed to read tile %d: %v", index, err))
	}

	if h.Compression == compression.Deflate {
		r, err := zlib.NewReader(bytes.NewReader(buf))
		if err != nil {
			panic(fmt.Sprintf("zlib decompression error: %v", err))
		}
		defer r.Close()
		tile, err := io.ReadAll(r)
		if err != nil {
			panic(fmt.Sprintf("zlib read error: %v", err))
		}
		return tile
	}
	return buf
}
