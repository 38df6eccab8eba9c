package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/codegangsta/cli"
	"github.com/lmittmann/tint"

	"github.com/forla-research/stripgif/qr"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "qrgen"
	app.Usage = "Writes a URL as a QR code PNG."
	app.UsageText = "qrgen [options]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "url,u",
			Usage: "`URL` to encode.",
			Value: qr.DefaultURL,
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "`FILE` to write the PNG to.",
			Value: qr.DefaultFile,
		},
		cli.IntFlag{
			Name:  "size,s",
			Usage: "`SIZE` in pixels of each side of the image.",
			Value: qr.DefaultSize,
		},
		cli.StringFlag{
			Name:  "level,l",
			Usage: "Error recovery `LEVEL`: low, medium, high or highest.",
			Value: "medium",
		},
	}
	app.Action = func(c *cli.Context) error {
		logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}))

		level, err := qr.ParseLevel(c.String("level"))
		if err != nil {
			return err
		}
		out := c.String("output")
		if err := qr.WriteFile(out, c.String("url"), c.Int("size"), level); err != nil {
			return err
		}
		logger.Info("wrote qr code", "path", out, "url", c.String("url"))
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
