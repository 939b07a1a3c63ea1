package client

import (
	"context"
)

type RecognitionService struct {
	Options []RequestOption
}

func NewRecognitionService(opts ...RequestOption) RecognitionService {
	return RecognitionService{
		Options: opts,
	}
}

type RecognitionRequest struct {
	Image    string
	Language string
}

func (r *RecognitionService) New(ctx context.Context, input RecognitionRequest, opts ...RequestOption) (string, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	return c.post(ctx, "/v1/ocr", map[string]string{
		"image":    input.Image,
		"language": input.Language,
	})
}
