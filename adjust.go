package stripgif

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Adjustments are optional per-frame edits applied after the channel swap.
// The zero value leaves frames untouched.
type Adjustments struct {
	MaxWidth   uint    `yaml:"max_width"`  // Fit frames within this width, 0 for no limit
	MaxHeight  uint    `yaml:"max_height"` // Fit frames within this height, 0 for no limit
	Gamma      float64 `yaml:"gamma"`      // 1.0 or 0 gives the original frame
	Brightness float64 `yaml:"brightness"` // Percentage in [-100, 100]
	Contrast   float64 `yaml:"contrast"`   // Percentage in [-100, 100]
	Sharpen    float64 `yaml:"sharpen"`    // Sigma, 0 for none
	Blur       float64 `yaml:"blur"`       // Gaussian radius, 0 for none
	Invert     bool    `yaml:"invert"`
}

func (a Adjustments) IsZero() bool {
	return a == Adjustments{} || a == Adjustments{Gamma: 1}
}

// Apply runs the configured adjustments over img in a fixed order: fit,
// gamma, brightness, sharpen, contrast, blur, invert.
func (a Adjustments) Apply(img image.Image) image.Image {
	if a.IsZero() {
		return img
	}

	if a.MaxWidth > 0 || a.MaxHeight > 0 {
		maxW, maxH := a.MaxWidth, a.MaxHeight
		if maxW == 0 {
			maxW = uint(img.Bounds().Dx())
		}
		if maxH == 0 {
			maxH = uint(img.Bounds().Dy())
		}
		img = resize.Thumbnail(maxW, maxH, img, resize.Lanczos3)
	}
	if a.Gamma != 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen != 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.Blur != 0 {
		img = blur.Gaussian(img, a.Blur)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}
