package stripgif

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultInputFolder    = "./static/video1/"
	DefaultOutputFolder   = "./output_gifs/"
	DefaultFramesPerStrip = 10
	DefaultFPS            = 2
)

// Config describes one batch conversion.
type Config struct {
	InputFolder    string      `yaml:"input_folder"`
	OutputFolder   string      `yaml:"output_folder"`
	FramesPerStrip int         `yaml:"frames_per_strip"`
	FPS            float64     `yaml:"fps"`
	Dither         bool        `yaml:"dither"`
	Adjust         Adjustments `yaml:"adjust"`
}

func DefaultConfig() Config {
	return Config{
		InputFolder:    DefaultInputFolder,
		OutputFolder:   DefaultOutputFolder,
		FramesPerStrip: DefaultFramesPerStrip,
		FPS:            DefaultFPS,
		Dither:         true,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Keys absent
// from the file keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.FramesPerStrip <= 0 {
		return fmt.Errorf("%w: frames_per_strip is %d", ErrInvalidConfig, cfg.FramesPerStrip)
	}
	if !(cfg.FPS >= MinFPS) {
		return fmt.Errorf("%w: fps is %v, the slowest a gif can hold is %.6f", ErrInvalidConfig, cfg.FPS, MinFPS)
	}
	return nil
}

// Options turns the conversion settings of cfg into Converter options.
func (cfg Config) Options() []Option {
	return []Option{
		WithFramesPerStrip(cfg.FramesPerStrip),
		WithFPS(cfg.FPS),
		WithDither(cfg.Dither),
		WithAdjustments(cfg.Adjust),
	}
}
