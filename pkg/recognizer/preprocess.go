package recognizer

import (
	"bytes"
	"fmt"
	"image"
	"math"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"github.com/adrianliechti/toolify/pkg/errdefs"
)

type PreprocessOptions struct {
	// MinWidth is the width images narrower than this are upscaled to.
	MinWidth int

	// Contrast multiplies the distance of each pixel from mid-grey.
	Contrast float64

	// MaxPixels caps both the source and the upscaled surface. Zero uses the
	// default.
	MaxPixels int
}

var DefaultPreprocess = PreprocessOptions{
	MinWidth:  1200,
	Contrast:  1.5,
	MaxPixels: 16_000_000,
}

// Preprocess decodes an image, upscales it to at least MinWidth, converts it
// to grayscale and boosts its contrast. Images above MaxPixels are rejected
// before decoding; upscaling stops at MaxPixels.
func Preprocess(data []byte, options PreprocessOptions) (*image.Gray, error) {
	maxPixels := options.MaxPixels

	if maxPixels <= 0 {
		maxPixels = DefaultPreprocess.MaxPixels
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrDecode, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image", errdefs.ErrDecode)
	}

	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, fmt.Errorf("%w: image of %dx%d exceeds %d pixels", errdefs.ErrDecode, cfg.Width, cfg.Height, maxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(data))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrDecode, err)
	}

	bounds := src.Bounds()

	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image", errdefs.ErrDecode)
	}

	scale := 1.0

	if options.MinWidth > bounds.Dx() {
		scale = float64(options.MinWidth) / float64(bounds.Dx())
	}

	width := int(math.Round(float64(bounds.Dx()) * scale))
	height := int(math.Round(float64(bounds.Dy()) * scale))

	if int64(width)*int64(height) > int64(maxPixels) {
		scale = math.Max(1, math.Sqrt(float64(maxPixels)/float64(bounds.Dx()*bounds.Dy())))

		width = max(1, int(math.Floor(float64(bounds.Dx())*scale)))
		height = max(1, int(math.Floor(float64(bounds.Dy())*scale)))
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))

	if scale > 1 {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	} else {
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	}

	if options.Contrast > 0 && options.Contrast != 1 {
		for i, v := range dst.Pix {
			c := (float64(v)-128)*options.Contrast + 128
			dst.Pix[i] = uint8(math.Max(0, math.Min(255, math.Round(c))))
		}
	}

	return dst, nil
}
