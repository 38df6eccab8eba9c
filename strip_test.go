package stripgif_test

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/forla-research/stripgif"
)

var _ = Describe("BGR", func() {
	It("stores channels blue first", func() {
		src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		src.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff})

		bgr := stripgif.FromImage(src)
		Expect(bgr.Channels()).To(Equal(3))
		Expect(bgr.Pix).To(Equal([]uint8{3, 2, 1}))
		Expect(bgr.BGRAt(0, 0)).To(Equal(stripgif.BGRColor{B: 3, G: 2, R: 1}))
	})

	It("drops alpha without premultiplying", func() {
		src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
		src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0x10})

		Expect(stripgif.FromImage(src).BGRAt(0, 0)).To(Equal(stripgif.BGRColor{B: 50, G: 100, R: 200}))
	})

	It("reports opaque RGBA", func() {
		r, g, b, a := stripgif.BGRColor{B: 0xff, G: 0x80, R: 0}.RGBA()
		Expect([]uint32{r, g, b, a}).To(Equal([]uint32{0, 0x8080, 0xffff, 0xffff}))
	})

	It("shares pixels with sub images", func() {
		bgr := stripgif.NewBGR(image.Rect(0, 0, 4, 2))
		sub := bgr.SubImage(image.Rect(2, 0, 4, 2))
		sub.SetBGR(3, 1, stripgif.BGRColor{B: 9, G: 8, R: 7})

		Expect(bgr.BGRAt(3, 1)).To(Equal(stripgif.BGRColor{B: 9, G: 8, R: 7}))
		Expect(sub.BGRAt(0, 0)).To(Equal(stripgif.BGRColor{}))
	})

	It("returns an empty raster for rectangles outside it", func() {
		bgr := stripgif.NewBGR(image.Rect(0, 0, 4, 2))
		sub := bgr.SubImage(image.Rect(10, 10, 12, 12))
		Expect(sub.Bounds().Empty()).To(BeTrue())
		Expect(sub.Pix).To(BeEmpty())
	})
})

var _ = Describe("Split", func() {
	It("cuts a 1000x100 strip into ten 100x100 frames", func() {
		frames, err := stripgif.Split(stripgif.FromImage(banded(1000, 100, 10)), 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(10))
		for i, f := range frames {
			Expect(f.Bounds()).To(Equal(image.Rect(i*100, 0, (i+1)*100, 100)))
		}
	})

	It("drops the remainder columns", func() {
		Expect(stripgif.FrameWidth(1005, 10)).To(Equal(100))

		frames, err := stripgif.Split(stripgif.FromImage(gradient(1005, 20)), 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(10))
		Expect(frames[9].Bounds().Max.X).To(Equal(1000))
	})

	It("rejects a non-positive frame count", func() {
		_, err := stripgif.Split(stripgif.NewBGR(image.Rect(0, 0, 10, 10)), 0)
		Expect(err).To(Equal(stripgif.ErrInvalidFrameCount))
	})

	It("rejects strips narrower than the frame count", func() {
		_, err := stripgif.Split(stripgif.NewBGR(image.Rect(0, 0, 5, 10)), 10)
		Expect(err).To(Equal(stripgif.ErrFrameTooNarrow))
	})
})

var _ = Describe("ToRGB", func() {
	It("maps frame pixels back to the strip with channels swapped", func() {
		src := gradient(300, 40)
		strip := stripgif.FromImage(src)
		frames, err := stripgif.Split(strip, 3)
		Expect(err).NotTo(HaveOccurred())

		for i, f := range frames {
			rgb := stripgif.ToRGB(f)
			Expect(rgb.Bounds()).To(Equal(image.Rect(0, 0, 100, 40)))
			for y := 0; y < 40; y++ {
				for x := 0; x < 100; x++ {
					want := src.NRGBAAt(i*100+x, y)
					bgr := strip.BGRAt(i*100+x, y)
					got := rgb.RGBAAt(x, y)
					Expect(got).To(Equal(color.RGBA{R: bgr.R, G: bgr.G, B: bgr.B, A: 0xff}))
					Expect(got).To(Equal(color.RGBA{R: want.R, G: want.G, B: want.B, A: 0xff}))
				}
			}
		}
	})
})
