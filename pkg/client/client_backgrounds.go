package client

import (
	"context"
)

type BackgroundService struct {
	Options []RequestOption
}

func NewBackgroundService(opts ...RequestOption) BackgroundService {
	return BackgroundService{
		Options: opts,
	}
}

type BackgroundRequest struct {
	// Image is a data URL.
	Image string
}

// Remove returns the image without background as a PNG data URL.
func (r *BackgroundService) Remove(ctx context.Context, input BackgroundRequest, opts ...RequestOption) (string, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	return c.post(ctx, "/v1/background", map[string]string{
		"image": input.Image,
	})
}
