package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/recognizer"
	"github.com/adrianliechti/toolify/pkg/recognizer/tesseract"
)

type recognizerConfig struct {
	Engine string `yaml:"engine"`
	Policy string `yaml:"policy"`

	DPI      int    `yaml:"dpi"`
	Tessdata string `yaml:"tessdata"`

	MinWidth  int     `yaml:"min_width"`
	Contrast  float64 `yaml:"contrast"`
	MaxPixels int     `yaml:"max_pixels"`
}

func (cfg *Config) registerRecognizer(c *recognizerConfig) error {
	if c == nil {
		c = &recognizerConfig{}
	}

	engine := strings.ToLower(c.Engine)

	if engine == "" {
		if !tesseract.Enabled() {
			return nil
		}

		engine = "tesseract"
	}

	if engine == "none" {
		return nil
	}

	policy := recognizer.ReleasePolicy(strings.ToLower(c.Policy))

	switch policy {
	case "":
		policy = recognizer.ReleaseAfterUse

	case recognizer.ReleaseAfterUse, recognizer.KeepWarm:

	default:
		return fmt.Errorf("%w: invalid recognizer policy: %s", errdefs.ErrConfig, c.Policy)
	}

	preprocess := recognizer.DefaultPreprocess

	if c.MinWidth > 0 {
		preprocess.MinWidth = c.MinWidth
	}

	if c.Contrast > 0 {
		preprocess.Contrast = c.Contrast
	}

	if c.MaxPixels > 0 {
		preprocess.MaxPixels = c.MaxPixels
	}

	var factory recognizer.Factory

	switch engine {
	case "tesseract":
		var options []tesseract.Option

		if c.DPI > 0 {
			options = append(options, tesseract.WithDPI(c.DPI))
		}

		if c.Tessdata != "" {
			options = append(options, tesseract.WithTessdata(c.Tessdata))
		}

		factory = tesseract.Factory(options...)

	default:
		return errors.New("invalid recognizer engine: " + c.Engine)
	}

	cfg.recognizer = recognizer.New(factory,
		recognizer.WithPolicy(policy),
		recognizer.WithPreprocess(preprocess),
		recognizer.WithLogger(slog.Default().With("component", "recognizer")),
	)

	return nil
}
