package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/codegangsta/cli"
	"github.com/lmittmann/tint"

	"github.com/forla-research/stripgif"
)

type runFunc func(cfg stripgif.Config, opts ...stripgif.Option) (*stripgif.Report, error)

// newApp builds the command line. Settings are read from lookup for the
// environment and handed to run once they are layered and valid.
func newApp(run runFunc, lookup func(string) (string, bool)) *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "stripgif"
	app.Usage = "Slices horizontally stitched image strips into frames and writes them as animated gifs."
	app.UsageText = "stripgif [options]"
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "YAML `FILE` with settings. Environment variables and flags take precedence over it.",
		},
		cli.StringFlag{
			Name:  "input,i",
			Usage: "`DIR` holding the stitched strips. [$STRIPGIF_INPUT]",
			Value: stripgif.DefaultInputFolder,
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "`DIR` to write gifs to. Created if missing. [$STRIPGIF_OUTPUT]",
			Value: stripgif.DefaultOutputFolder,
		},
		cli.IntFlag{
			Name:  "frames,n",
			Usage: "`FRAMES` stitched side by side in each strip. [$STRIPGIF_FRAMES]",
			Value: stripgif.DefaultFramesPerStrip,
		},
		cli.Float64Flag{
			Name:  "fps,r",
			Usage: "Playback rate in `FPS`. Each frame shows for 1/FPS seconds. [$STRIPGIF_FPS]",
			Value: stripgif.DefaultFPS,
		},
		cli.BoolFlag{
			Name:  "no-dither",
			Usage: "Map busy frames to the nearest palette color instead of diffusing.",
		},
		cli.IntFlag{
			Name:  "max-width",
			Usage: "Scale frames down to at most `WIDTH` pixels.",
		},
		cli.IntFlag{
			Name:  "max-height",
			Usage: "Scale frames down to at most `HEIGHT` pixels.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original frame. GAMMA less than 1.0 darkens the frame and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original frame. BRIGHTNESS = -100 gives solid black. BRIGHTNESS = 100 gives solid white.",
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original frame. CONTRAST = -100 gives solid grey. CONTRAST = 100 gives maximum contrast.",
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original frame. SHARPEN greater than 0 sharpens it.",
		},
		cli.Float64Flag{
			Name:  "blur",
			Usage: "Gaussian blur `RADIUS`, 0 for none.",
		},
		cli.BoolFlag{
			Name:  "invert",
			Usage: "Inverts the frames.",
		},
		cli.BoolFlag{
			Name:  "preview,p",
			Usage: "Draws the first frame of each gif in the terminal as braille.",
		},
		cli.IntFlag{
			Name:  "preview-cols",
			Usage: "Width of the preview in `COLUMNS`. Defaults to the terminal width.",
		},
		cli.BoolFlag{
			Name:  "verbose,v",
			Usage: "Log debug output.",
		},
	}
	app.Action = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.Bool("verbose") {
			level = slog.LevelDebug
		}
		logger := slog.New(tint.NewHandler(c.App.ErrWriter, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}))

		cfg, err := settings(c, lookup)
		if err != nil {
			return err
		}

		opts := []stripgif.Option{stripgif.WithLogger(logger)}
		if c.Bool("preview") {
			cols := c.Int("preview-cols")
			if cols <= 0 {
				cols = terminalCols()
			}
			opts = append(opts, stripgif.WithPreview(c.App.Writer, cols))
		}

		report, err := run(cfg, opts...)
		if err != nil {
			return err
		}
		logger.Debug("done", "written", len(report.Written), "skipped", len(report.Skipped))
		return nil
	}
	return app
}

// settings layers, from weakest to strongest: the defaults, the --config
// file, STRIPGIF_* environment variables and flags that were actually set.
func settings(c *cli.Context, lookup func(string) (string, bool)) (stripgif.Config, error) {
	cfg := stripgif.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = stripgif.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if v, ok := lookup("STRIPGIF_INPUT"); ok && v != "" {
		cfg.InputFolder = v
	}
	if v, ok := lookup("STRIPGIF_OUTPUT"); ok && v != "" {
		cfg.OutputFolder = v
	}
	if v, ok := lookup("STRIPGIF_FRAMES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("STRIPGIF_FRAMES: %w", err)
		}
		cfg.FramesPerStrip = n
	}
	if v, ok := lookup("STRIPGIF_FPS"); ok && v != "" {
		fps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("STRIPGIF_FPS: %w", err)
		}
		cfg.FPS = fps
	}

	if c.IsSet("input") {
		cfg.InputFolder = c.String("input")
	}
	if c.IsSet("output") {
		cfg.OutputFolder = c.String("output")
	}
	if c.IsSet("frames") {
		cfg.FramesPerStrip = c.Int("frames")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Float64("fps")
	}
	if c.Bool("no-dither") {
		cfg.Dither = false
	}
	if c.IsSet("max-width") {
		cfg.Adjust.MaxWidth = uint(c.Int("max-width"))
	}
	if c.IsSet("max-height") {
		cfg.Adjust.MaxHeight = uint(c.Int("max-height"))
	}
	if c.IsSet("gamma") {
		cfg.Adjust.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Adjust.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Adjust.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Adjust.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("blur") {
		cfg.Adjust.Blur = c.Float64("blur")
	}
	if c.Bool("invert") {
		cfg.Adjust.Invert = true
	}
	return cfg, cfg.Validate()
}
