package stripgif

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid config")

// Patterns are the file globs picked up from the input folder. Matching is
// case sensitive.
var Patterns = []string{"*.png", "*.jpg", "*.jpeg", "*.bmp", "*.tif", "*.tiff"}

type Option func(c *Converter)

func WithFramesPerStrip(n int) Option {
	return func(c *Converter) {
		c.framesPerStrip = n
	}
}

func WithFPS(fps float64) Option {
	return func(c *Converter) {
		c.fps = fps
	}
}

// WithDither enables Floyd-Steinberg diffusion for frames that need more
// than 256 colors.
func WithDither(dither bool) Option {
	return func(c *Converter) {
		c.dither = dither
	}
}

func WithAdjustments(a Adjustments) Option {
	return func(c *Converter) {
		c.adjust = a
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithPreview draws the first frame of every written GIF to w as braille,
// at most cols symbols wide.
func WithPreview(w io.Writer, cols int) Option {
	return func(c *Converter) {
		c.preview = w
		c.previewCols = cols
	}
}

// Converter turns stitched strips into animated GIFs.
type Converter struct {
	framesPerStrip int
	fps            float64
	dither         bool
	adjust         Adjustments
	logger         *slog.Logger
	preview        io.Writer
	previewCols    int
}

func NewConverter(opts ...Option) *Converter {
	c := Converter{
		framesPerStrip: DefaultFramesPerStrip,
		fps:            DefaultFPS,
		dither:         true,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Report lists what a ConvertDir call produced.
type Report struct {
	Written []string // Output paths, in processing order
	Skipped []string // Input paths that could not be converted
}

// Run converts every strip in cfg.InputFolder using cfg's settings. Later
// options override earlier ones, so opts win over cfg.
func Run(cfg Config, opts ...Option) (*Report, error) {
	return NewConverter(append(cfg.Options(), opts...)...).ConvertDir(cfg.InputFolder, cfg.OutputFolder)
}

// Discover lists the strips in dir, non-recursively, sorted by path. Dot
// files are ignored. A missing dir yields no paths.
func Discover(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range Patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if strings.HasPrefix(filepath.Base(m), ".") {
				continue
			}
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

/*
ConvertDir writes one GIF into outputDir for every strip found in inputDir.

A file that fails to convert is logged and skipped; the rest of the batch still
runs and the error return stays nil. Errors are only returned for settings that
can never work and for an output folder that cannot be created. Outputs are
named after their inputs, so running again overwrites them.
*/
func (c *Converter) ConvertDir(inputDir, outputDir string) (*Report, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output folder %s: %w", outputDir, err)
	}

	paths, err := Discover(inputDir)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	if len(paths) == 0 {
		c.logger.Warn("no images found", "input", inputDir)
		return report, nil
	}

	for _, path := range paths {
		out, err := c.ConvertFile(path, outputDir)
		if err != nil {
			c.logger.Error("failed to convert, skipping", "path", path, "err", err)
			report.Skipped = append(report.Skipped, path)
			continue
		}
		report.Written = append(report.Written, out)
	}
	return report, nil
}

// ConvertFile converts a single strip and returns the path of the GIF it
// wrote. Nothing is written unless the whole GIF encodes.
func (c *Converter) ConvertFile(path, outputDir string) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}

	strip, err := DecodeFile(path)
	if err != nil {
		return "", err
	}

	width := strip.Bounds().Dx()
	if width%c.framesPerStrip != 0 {
		c.logger.Warn("width not divisible by frames per strip",
			"path", path, "width", width, "frames", c.framesPerStrip)
	}

	parts, err := Split(strip, c.framesPerStrip)
	if err != nil {
		return "", fmt.Errorf("split %s: %w", path, err)
	}

	frames := make([]image.Image, len(parts))
	for i, s := range parts {
		frames[i] = c.adjust.Apply(ToRGB(s))
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, c.fps, c.dither); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}

	base := filepath.Base(path)
	out := filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".gif")
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return "", err
	}

	bounds := frames[0].Bounds()
	c.logger.Info("wrote gif",
		"path", out,
		"frames", len(frames),
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"fps", c.fps,
	)

	if c.preview != nil {
		if err := Preview(c.preview, frames[0], c.previewCols); err != nil {
			c.logger.Debug("preview failed", "path", out, "err", err)
		}
	}
	return out, nil
}

func (c *Converter) validate() error {
	return Config{FramesPerStrip: c.framesPerStrip, FPS: c.fps}.Validate()
}
