package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/echoflaresat/vec3/internal/logger"
	"github.com/echoflaresat/vec3/texture"
)

func main() {
	logger.Init("info", "")
	defer logger.Sync()

	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <cols>x<rows> <output.png> <tile1> <tile2> ...\n", os.Args[0])
		os.Exit(1)
	}

	cols, rows := parseLayout(os.Args[1])
	output := os.Args[2]
	inputFiles := os.Args[3:]
	if len(inputFiles) != cols*rows {
		logger.Fatal("wrong tile count",
			zap.Int("expected", cols*rows),
			zap.Int("got", len(inputFiles)))
	}

	var canvas *image.NRGBA
	var tileW, tileH int
	for idx, path := range inputFiles {
		logger.Info("merging tile", zap.String("path", path))

		tile, err := texture.DecodeFile(path)
		if err != nil {
			logger.Fatal("could not load tile", zap.String("path", path), zap.Error(err))
		}

		// The first tile fixes the grid cell size.
		if canvas == nil {
			tileW = tile.Bounds().Dx()
			tileH = tile.Bounds().Dy()
			canvas = image.NewNRGBA(image.Rect(0, 0, cols*tileW, rows*tileH))
		} else if tileW != tile.Bounds().Dx() || tileH != tile.Bounds().Dy() {
			logger.Fatal("tile size mismatch",
				zap.String("path", path),
				zap.String("expected", fmt.Sprintf("%dx%d", tileW, tileH)),
				zap.String("got", fmt.Sprintf("%dx%d", tile.Bounds().Dx(), tile.Bounds().Dy())))
		}

		col := idx % cols
		row := idx / cols
		x := col * tileW
		y := row * tileH
		draw.Draw(canvas, image.Rect(x, y, x+tileW, y+tileH), tile, image.Point{}, draw.Over)
	}

	save(output, canvas)
}

func parseLayout(arg string) (int, int) {
	parts := strings.Split(arg, "x")
	if len(parts) != 2 {
		logger.Fatal("invalid tile layout (expected NxM)", zap.String("arg", arg))
	}
	cols, err := strconv.Atoi(parts[0])
	if err != nil {
		logger.Fatal("invalid column count", zap.Error(err))
	}
	rows, err := strconv.Atoi(parts[1])
	if err != nil {
		logger.Fatal("invalid row count", zap.Error(err))
	}
	return cols, rows
}

func save(output string, canvas *image.NRGBA) {
	logger.Info("writing merged image", zap.String("path", output))

	f, err := os.Create(output)
	if err != nil {
		logger.Fatal("could not create output", zap.Error(err))
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		if err := png.Encode(f, canvas); err != nil {
			logger.Fatal("PNG encode failed", zap.Error(err))
		}
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(f, canvas, &jpeg.Options{Quality: 95}); err != nil {
			logger.Fatal("JPEG encode failed", zap.Error(err))
		}
	default:
		logger.Fatal("unsupported output format", zap.String("ext", ext))
	}
}
