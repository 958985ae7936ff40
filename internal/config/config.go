// YAML configuration for the tracking and presentation commands.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	// Video is the input video path.
	Video string `yaml:"video"`
	// DataDir is where trajectory records are written.
	DataDir string `yaml:"data_dir"`
	// MaxFrames caps how many frames are ingested.
	MaxFrames int `yaml:"max_frames"`

	// Matching thresholds; zero values fall back to defaults.
	ColorTolerance   float64 `yaml:"color_tolerance"`
	CircleDistance   float64 `yaml:"circle_distance"`
	CircleRadiusDiff float64 `yaml:"circle_radius_diff"`
	SquareDistance   float64 `yaml:"square_distance"`
	SquareSizeDiff   float64 `yaml:"square_size_diff"`
	MaxFrameGap      int     `yaml:"max_frame_gap"`

	// ChartOut is where the presenter writes its HTML chart.
	ChartOut string `yaml:"chart_out"`
	// Smooth enables the Kalman-smoothed overlay series.
	Smooth bool `yaml:"smooth"`
}

// Default returns the configuration the pipeline was tuned with.
func Default() *Config {
	return &Config{
		Video:            "luxonis_task_video.mp4",
		DataDir:          "data",
		MaxFrames:        1000,
		ColorTolerance:   30,
		CircleDistance:   50,
		CircleRadiusDiff: 17,
		SquareDistance:   40,
		SquareSizeDiff:   5,
		MaxFrameGap:      20,
		ChartOut:         "paths.html",
	}
}

// Load reads a YAML config file over the defaults. An empty path
// yields the defaults; keys absent from the file keep their default
// values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "can't parse config %s", path)
	}
	return cfg, nil
}
