package custom

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	_ extractor.Provider = (*Client)(nil)
)

// ExtractMethod is the unary method a custom extractor service exposes. Request
// and response are google.protobuf.Struct messages.
const ExtractMethod = "/extractor.Extractor/Extract"

type Client struct {
	url  string
	conn *grpc.ClientConn

	options []grpc.DialOption
}

type Option func(*Client)

func WithDialOptions(options ...grpc.DialOption) Option {
	return func(c *Client) {
		c.options = append(c.options, options...)
	}
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" || !strings.HasPrefix(url, "grpc://") {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		url: url,
	}

	for _, option := range options {
		option(c)
	}

	dialOptions := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(100 * 1024 * 1024)),
	}, c.options...)

	conn, err := grpc.NewClient(strings.TrimPrefix(c.url, "grpc://"), dialOptions...)

	if err != nil {
		return nil, err
	}

	c.conn = conn

	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	req, err := structpb.NewStruct(map[string]any{
		"name":         file.Name,
		"content":      base64.StdEncoding.EncodeToString(file.Content),
		"content_type": file.ContentType,
		"language":     options.Language,
	})

	if err != nil {
		return nil, err
	}

	resp := new(structpb.Struct)

	if err := c.conn.Invoke(ctx, ExtractMethod, req, resp); err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrExtraction, err)
	}

	text := strings.TrimSpace(resp.GetFields()["text"].GetStringValue())

	if text == "" {
		return nil, fmt.Errorf("%w: empty response", errdefs.ErrExtraction)
	}

	return &extractor.Document{
		Text: text,
	}, nil
}
