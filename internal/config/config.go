// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
	Theme   ThemeConfig   `yaml:"theme"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CameraConfig holds the viewpoint settings, angles in degrees and
// altitude in kilometers above the surface.
type CameraConfig struct {
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
	Alt  float64 `yaml:"alt"`
	FOV  float64 `yaml:"fov"`
	Tilt float64 `yaml:"tilt"`
	Yaw  float64 `yaml:"yaw"`
}

// RenderConfig holds image generation settings.
type RenderConfig struct {
	Size        int    `yaml:"size"`
	Supersample int    `yaml:"supersample"`
	Workers     int    `yaml:"workers"` // 0 means one per CPU
	Time        string `yaml:"time"`    // RFC3339; empty means now
}

// AssetsConfig holds texture file paths.
type AssetsConfig struct {
	Day    string `yaml:"day"`
	Night  string `yaml:"night"`
	Clouds string `yaml:"clouds"`
}

// ThemeConfig holds the tint colors of the rendered view. Each color is
// an RGBA quadruple in linear light, components usually in [0, 1].
type ThemeConfig struct {
	DayRim   []float64 `yaml:"day_rim"`
	NightRim []float64 `yaml:"night_rim"`
	Warm     []float64 `yaml:"warm"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	File string `yaml:"file"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Lat:  0.0,
			Lon:  20.0,
			Alt:  880.0,
			FOV:  60.0,
			Tilt: 40.0,
			Yaw:  0.0,
		},
		Render: RenderConfig{
			Size:        640,
			Supersample: 3,
			Workers:     0,
			Time:        "",
		},
		Assets: AssetsConfig{
			Day:    "assets/world.200408.tif",
			Night:  "assets/night.tif",
			Clouds: "assets/cloud.2001210.tif",
		},
		Theme: ThemeConfig{
			DayRim:   []float64{0.25, 0.60, 1.00, 1.0},
			NightRim: []float64{0.05, 0.07, 0.20, 0.5},
			Warm:     []float64{1.02, 1.00, 0.98, 1.0},
		},
		Output: OutputConfig{
			File: "earth_view.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
