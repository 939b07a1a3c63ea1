package segmenter

import (
	"context"

	"github.com/adrianliechti/toolify/pkg/provider"
)

// Provider removes the background of an image and returns the cut-out
// subject, usually as a transparent PNG.
type Provider interface {
	Segment(ctx context.Context, file File, options *SegmentOptions) (*File, error)
}

type File = provider.File

type SegmentOptions struct {
	// Size selects the output resolution where the backend supports it
	// ("preview", "full" or "auto").
	Size string
}
