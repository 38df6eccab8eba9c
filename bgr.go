package stripgif

import (
	"image"
	"image/color"
)

// BGRColor is an opaque 24-bit color stored in blue, green, red order.
type BGRColor struct {
	B, G, R uint8
}

func (c BGRColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// BGRModel converts any color to BGRColor. Alpha is discarded, not
// composited, so the channels keep their non-premultiplied values.
var BGRModel = color.ModelFunc(bgrModel)

func bgrModel(c color.Color) color.Color {
	if c, ok := c.(BGRColor); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return BGRColor{B: n.B, G: n.G, R: n.R}
}

/*
BGR is a 3-channel raster laid out the way image decoders in the OpenCV family
hand pixels back: one byte each of blue, green then red per pixel, rows packed
top to bottom. Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3] holds the blue
channel of the pixel at (x, y).
*/
type BGR struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewBGR(r image.Rectangle) *BGR {
	w, h := r.Dx(), r.Dy()
	return &BGR{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

// FromImage copies img into a new BGR raster. A *BGR is returned as is.
func FromImage(img image.Image) *BGR {
	if p, ok := img.(*BGR); ok {
		return p
	}
	bounds := img.Bounds()
	dst := NewBGR(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetBGR(x, y, bgrModel(img.At(x, y)).(BGRColor))
		}
	}
	return dst
}

func (p *BGR) ColorModel() color.Model { return BGRModel }

func (p *BGR) Bounds() image.Rectangle { return p.Rect }

// Channels is always 3.
func (p *BGR) Channels() int { return 3 }

func (p *BGR) At(x, y int) color.Color {
	return p.BGRAt(x, y)
}

func (p *BGR) BGRAt(x, y int) BGRColor {
	if !(image.Point{x, y}.In(p.Rect)) {
		return BGRColor{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return BGRColor{B: s[0], G: s[1], R: s[2]}
}

func (p *BGR) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *BGR) Set(x, y int, c color.Color) {
	p.SetBGR(x, y, bgrModel(c).(BGRColor))
}

func (p *BGR) SetBGR(x, y int, c BGRColor) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.B
	s[1] = c.G
	s[2] = c.R
}

// SubImage returns the part of p visible through r. The returned raster
// shares pixels with p.
func (p *BGR) SubImage(r image.Rectangle) *BGR {
	r = r.Intersect(p.Rect)
	// An empty intersection may lie outside p, with no valid offset into Pix.
	if r.Empty() {
		return &BGR{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &BGR{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}
