package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/echoflaresat/vec3/colors"
	"github.com/echoflaresat/vec3/earth"
	"github.com/echoflaresat/vec3/internal/config"
	"github.com/echoflaresat/vec3/internal/logger"
	"github.com/echoflaresat/vec3/render"
)

type flagSet struct {
	configPath *string

	lat, lon, alt  *float64
	fov, tilt, yaw *float64

	size, supersample, workers *int
	timeStr                    *string

	out                *string
	day, night, clouds *string

	logLevel, logFile *string

	showHelp *bool
}

func defineFlags(d *config.Config) flagSet {
	return flagSet{
		configPath: flag.String("config", "", "Config file path (YAML); flags override file values"),

		lat:  flag.Float64("lat", d.Camera.Lat, "Camera latitude in degrees"),
		lon:  flag.Float64("lon", d.Camera.Lon, "Camera longitude in degrees"),
		alt:  flag.Float64("alt", d.Camera.Alt, "Camera altitude in kilometers"),
		fov:  flag.Float64("fov", d.Camera.FOV, "Camera field of view in degrees"),
		yaw:  flag.Float64("yaw", d.Camera.Yaw, "Camera yaw in degrees"),
		tilt: flag.Float64("tilt", d.Camera.Tilt, "Camera tilt in degrees"),

		size:        flag.Int("size", d.Render.Size, "Output image size (width/height in pixels)"),
		supersample: flag.Int("supersample", d.Render.Supersample, "Supersampling factor (higher is slower but smoother)"),
		workers:     flag.Int("workers", d.Render.Workers, "Render worker count (0 means one per CPU)"),
		timeStr:     flag.String("time", d.Render.Time, "Time in RFC3339 format (e.g., 2025-08-02T15:04:05Z); defaults to now"),

		out: flag.String("out", d.Output.File, "Output PNG file path"),

		day:    flag.String("day", d.Assets.Day, "Day texture path"),
		night:  flag.String("night", d.Assets.Night, "Night texture path"),
		clouds: flag.String("clouds", d.Assets.Clouds, "Clouds texture path"),

		logLevel: flag.String("log-level", d.Logging.Level, "Log level (debug, info, warn, error)"),
		logFile:  flag.String("log-file", d.Logging.LogFile, "Log file path (empty for console only)"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

// applyFlagOverrides copies explicitly set flags over the loaded config,
// so precedence runs defaults, then file, then command line.
func applyFlagOverrides(cfg *config.Config, fl flagSet) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			cfg.Camera.Lat = *fl.lat
		case "lon":
			cfg.Camera.Lon = *fl.lon
		case "alt":
			cfg.Camera.Alt = *fl.alt
		case "fov":
			cfg.Camera.FOV = *fl.fov
		case "tilt":
			cfg.Camera.Tilt = *fl.tilt
		case "yaw":
			cfg.Camera.Yaw = *fl.yaw
		case "size":
			cfg.Render.Size = *fl.size
		case "supersample":
			cfg.Render.Supersample = *fl.supersample
		case "workers":
			cfg.Render.Workers = *fl.workers
		case "time":
			cfg.Render.Time = *fl.timeStr
		case "out":
			cfg.Output.File = *fl.out
		case "day":
			cfg.Assets.Day = *fl.day
		case "night":
			cfg.Assets.Night = *fl.night
		case "clouds":
			cfg.Assets.Clouds = *fl.clouds
		case "log-level":
			cfg.Logging.Level = *fl.logLevel
		case "log-file":
			cfg.Logging.LogFile = *fl.logFile
		}
	})
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Earth Renderer - Satellite View Generator

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Camera Options", []string{"lat", "lon", "alt", "fov", "tilt", "yaw"})
	printGroup("Rendering Options", []string{"size", "supersample", "workers", "time"})
	printGroup("Assets", []string{"day", "night", "clouds"})
	printGroup("Output", []string{"out"})
	printGroup("Logging", []string{"log-level", "log-file"})
	printGroup("Misc", []string{"config", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-12s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	fl := defineFlags(config.Default())
	flag.Usage = printHelp
	flag.Parse()

	if *fl.showHelp {
		printHelp()
		return
	}

	cfg, err := config.Load(*fl.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg, fl)

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	renderTime := parseTimeOrExit(cfg.Render.Time)

	theme := render.Theme{
		DayRim:   themeColor("day_rim", cfg.Theme.DayRim),
		NightRim: themeColor("night_rim", cfg.Theme.NightRim),
		Warm:     themeColor("warm", cfg.Theme.Warm),
		Day:      cfg.Assets.Day,
		Night:    cfg.Assets.Night,
		Clouds:   cfg.Assets.Clouds,
	}

	logger.Info("generating view",
		zap.String("out", cfg.Output.File),
		zap.Time("render_time", renderTime))

	img, err := renderImage(cfg, renderTime, theme)
	if err != nil {
		logger.Fatal("render failed", zap.Error(err))
	}

	if err := writePNG(cfg.Output.File, img); err != nil {
		logger.Fatal("writing PNG failed", zap.Error(err))
	}
	logger.Info("view written", zap.String("out", cfg.Output.File))
}

// themeColor converts a configured RGBA quadruple into a color.
func themeColor(name string, v []float64) colors.Color4 {
	if len(v) != 4 {
		logger.Fatal("theme color needs four components",
			zap.String("color", name),
			zap.Int("got", len(v)))
	}
	return colors.New(v[0], v[1], v[2], v[3])
}

func parseTimeOrExit(timeStr string) time.Time {
	if timeStr == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		logger.Fatal("invalid time format", zap.Error(err))
	}
	return t
}

func renderImage(cfg *config.Config, renderTime time.Time, theme render.Theme) (image.Image, error) {
	sunDir := earth.SunDirectionECEF(renderTime)
	camera := render.NewCamera(
		cfg.Camera.Lat, cfg.Camera.Lon, cfg.Camera.Alt,
		cfg.Camera.FOV, cfg.Camera.Tilt, cfg.Camera.Yaw,
	)

	return render.RenderScene(
		camera,
		sunDir,
		cfg.Render.Size,
		cfg.Render.Supersample,
		cfg.Render.Workers,
		theme,
	)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img)
}
