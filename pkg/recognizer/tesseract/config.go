package tesseract

import (
	"context"

	"github.com/adrianliechti/toolify/pkg/recognizer"
)

const DefaultDPI = 300

type Config struct {
	dpi      int
	tessdata string
}

type Option func(*Config)

func WithDPI(dpi int) Option {
	return func(c *Config) {
		c.dpi = dpi
	}
}

// WithTessdata points Tesseract at a directory holding traineddata files.
func WithTessdata(path string) Option {
	return func(c *Config) {
		c.tessdata = path
	}
}

// Factory returns a recognizer.Factory creating Tesseract engines.
func Factory(options ...Option) recognizer.Factory {
	return func(ctx context.Context) (recognizer.Engine, error) {
		e, err := New(ctx, options...)

		if err != nil {
			return nil, err
		}

		return e, nil
	}
}
