package removebg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/segmenter"
)

var _ segmenter.Provider = (*Client)(nil)

// Client talks to remove.bg compatible segmentation APIs: the image is posted
// as multipart form data and the response body is the resulting image.
type Client struct {
	url   string
	token string

	client *http.Client
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

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		url = "https://api.remove.bg/v1.0/"
	}

	c := &Client{
		url:    strings.TrimRight(url, "/"),
		client: http.DefaultClient,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Segment(ctx context.Context, file segmenter.File, options *segmenter.SegmentOptions) (*segmenter.File, error) {
	if options == nil {
		options = new(segmenter.SegmentOptions)
	}

	size := options.Size

	if size == "" {
		size = "auto"
	}

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	w.WriteField("size", size)
	w.WriteField("format", "png")

	name := file.Name

	if name == "" {
		name = "image"
	}

	f, err := w.CreateFormFile("image_file", name)

	if err != nil {
		return nil, err
	}

	if _, err := f.Write(file.Content); err != nil {
		return nil, err
	}

	w.Close()

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/removebg", &data)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "image/*")

	if c.token != "" {
		req.Header.Set("X-Api-Key", c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrGeneration, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: %s: %s", errdefs.ErrGeneration, resp.Status, strings.TrimSpace(string(body)))
	}

	content, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrGeneration, err)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty response", errdefs.ErrGeneration)
	}

	contentType := resp.Header.Get("Content-Type")

	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(content)
	}

	return &segmenter.File{
		Name:        "no-bg.png",
		Content:     content,
		ContentType: contentType,
	}, nil
}
