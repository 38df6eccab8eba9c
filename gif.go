package stripgif

import (
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"sort"
)

var ErrNoFrames = errors.New("no frames to encode")

// GIF stores frame delays as unsigned 16-bit hundredths of a second.
const (
	minDelay = 1
	maxDelay = 0xffff
)

// MinFPS is the slowest rate whose frame delay still fits in a GIF.
const MinFPS = 100.0 / maxDelay

// Delay converts a playback rate into a GIF frame delay in hundredths of a
// second, clamped to what GIF can hold.
func Delay(fps float64) int {
	d := math.Round(100 / fps)
	switch {
	case math.IsNaN(d) || d < minDelay:
		return minDelay
	case d > maxDelay:
		return maxDelay
	}
	return int(d)
}

// NewGIF builds an animation showing each frame for 1/fps seconds. Frames
// with at most 256 distinct colors are stored losslessly; busier frames are
// mapped onto the Plan 9 palette, with Floyd-Steinberg diffusion if dither is
// set. LoopCount is left at 0, which loops forever.
func NewGIF(frames []image.Image, fps float64, dither bool) (*gif.GIF, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if !(fps >= MinFPS) {
		return nil, ErrInvalidConfig
	}

	delay := Delay(fps)
	giff := &gif.GIF{
		Image:    make([]*image.Paletted, len(frames)),
		Delay:    make([]int, len(frames)),
		Disposal: make([]byte, len(frames)),
	}
	for i, frame := range frames {
		giff.Image[i] = quantize(frame, dither)
		giff.Delay[i] = delay
		giff.Disposal[i] = gif.DisposalNone
	}
	bounds := giff.Image[0].Bounds()
	giff.Config = image.Config{
		ColorModel: giff.Image[0].Palette,
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}
	return giff, nil
}

// EncodeGIF writes frames to w as an animated GIF. See NewGIF.
func EncodeGIF(w io.Writer, frames []image.Image, fps float64, dither bool) error {
	giff, err := NewGIF(frames, fps, dither)
	if err != nil {
		return err
	}
	return gif.EncodeAll(w, giff)
}

func quantize(img image.Image, dither bool) *image.Paletted {
	bounds := img.Bounds()
	rect := image.Rect(0, 0, bounds.Dx(), bounds.Dy())

	if p, ok := exactPalette(img); ok {
		index := make(map[color.RGBA]uint8, len(p))
		for i, c := range p {
			index[c.(color.RGBA)] = uint8(i)
		}
		paletted := image.NewPaletted(rect, p)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := opaque(img.At(x, y))
				paletted.SetColorIndex(x-bounds.Min.X, y-bounds.Min.Y, index[c])
			}
		}
		return paletted
	}

	paletted := image.NewPaletted(rect, palette.Plan9)
	var drawer draw.Drawer = draw.Src
	if dither {
		drawer = draw.FloydSteinberg
	}
	drawer.Draw(paletted, rect, img, bounds.Min)
	return paletted
}

// exactPalette collects the distinct colors of img, ordered by their packed
// RGB value so that identical frames always get identical palettes.
func exactPalette(img image.Image) (color.Palette, bool) {
	seen := make(map[color.RGBA]struct{}, 256)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			seen[opaque(img.At(x, y))] = struct{}{}
			if len(seen) > 256 {
				return nil, false
			}
		}
	}

	colors := make([]color.RGBA, 0, len(seen))
	for c := range seen {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		return pack(colors[i]) < pack(colors[j])
	})

	p := make(color.Palette, len(colors))
	for i, c := range colors {
		p[i] = c
	}
	return p, true
}

func opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}

func pack(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
