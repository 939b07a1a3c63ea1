package action

import (
	"context"
	"fmt"

	"github.com/adrianliechti/toolify/pkg/document"
	"github.com/adrianliechti/toolify/pkg/errdefs"
)

// RemoveBackground cuts the subject out of an image and returns the result as
// a data URL.
func (s *Service) RemoveBackground(ctx context.Context, image string) Result[string] {
	ctx, op := s.begin(ctx, "remove_background")

	doc, err := parseImage(image)

	if err != nil {
		return fail[string](op, err)
	}

	op.process()

	if s.segmenter == nil {
		return fail[string](op, fmt.Errorf("%w: no segmenter configured", errdefs.ErrConfig))
	}

	result, err := s.segmenter.Segment(ctx, doc.File("image"), nil)

	if err != nil {
		return fail[string](op, classify(err, errdefs.ErrGeneration))
	}

	return succeed(op, document.New(result.ContentType, result.Content).String())
}
