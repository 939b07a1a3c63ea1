package replicate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/segmenter"

	"github.com/replicate/replicate-go"
)

var _ segmenter.Provider = (*Client)(nil)

// Client runs a background removal model hosted on Replicate, e.g.
// "cjwbw/rembg:<version>". The model receives the image as a data URL in its
// "image" input and returns a URL to the cut-out image.
type Client struct {
	url   string
	token string
	model string

	client *http.Client
	r8     *replicate.Client
}

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(url, model string, options ...Option) (*Client, error) {
	c := &Client{
		url:   url,
		model: model,

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(c)
	}

	if c.model == "" {
		return nil, errors.New("missing model")
	}

	opts := []replicate.ClientOption{
		replicate.WithToken(c.token),
		replicate.WithHTTPClient(c.client),
	}

	if c.url != "" {
		opts = append(opts, replicate.WithBaseURL(c.url))
	}

	r8, err := replicate.NewClient(opts...)

	if err != nil {
		return nil, err
	}

	c.r8 = r8

	return c, nil
}

func (c *Client) Segment(ctx context.Context, file segmenter.File, options *segmenter.SegmentOptions) (*segmenter.File, error) {
	input := replicate.PredictionInput{
		"image": file.DataURL(),
	}

	output, err := c.r8.Run(ctx, c.model, input, nil)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrGeneration, err)
	}

	url, err := outputURL(output)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrGeneration, err)
	}

	return c.download(ctx, url)
}

func (c *Client) download(ctx context.Context, url string) (*segmenter.File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrGeneration, err)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrGeneration, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: download: %s", errdefs.ErrGeneration, resp.Status)
	}

	content, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrGeneration, err)
	}

	contentType := resp.Header.Get("Content-Type")

	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	return &segmenter.File{
		Name:        path.Base(req.URL.Path),
		Content:     content,
		ContentType: contentType,
	}, nil
}

// outputURL picks the image URL out of a prediction output, which models
// return either as a plain string or as a list of strings.
func outputURL(output replicate.PredictionOutput) (string, error) {
	switch v := output.(type) {
	case string:
		if v != "" {
			return v, nil
		}

	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				return s, nil
			}
		}

	case map[string]any:
		for _, key := range []string{"image", "output"} {
			if s, ok := v[key].(string); ok && s != "" {
				return s, nil
			}
		}
	}

	return "", fmt.Errorf("unexpected prediction output: %v", output)
}
