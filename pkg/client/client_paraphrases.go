package client

import (
	"context"
)

type ParaphraseService struct {
	Options []RequestOption
}

func NewParaphraseService(opts ...RequestOption) ParaphraseService {
	return ParaphraseService{
		Options: opts,
	}
}

type ParaphraseRequest struct {
	Text  string
	Style string
}

func (r *ParaphraseService) New(ctx context.Context, input ParaphraseRequest, opts ...RequestOption) (string, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	return c.post(ctx, "/v1/paraphrase", map[string]string{
		"text":  input.Text,
		"style": input.Style,
	})
}
