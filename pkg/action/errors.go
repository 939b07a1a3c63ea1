package action

import (
	"errors"
	"fmt"

	"github.com/adrianliechti/toolify/pkg/errdefs"
)

const (
	MessageDecode      = "the uploaded file could not be read"
	MessageUnavailable = "the service is temporarily unavailable, please try again later"
	MessageNoContent   = "no text could be extracted from the uploaded documents"
	MessageEncoding    = "the Word document could not be created"
	MessageInternal    = "something went wrong, please try again"
)

// UserMessage maps a technical error to the message shown to callers.
func UserMessage(err error) string {
	if message, ok := errdefs.Message(err); ok {
		return message
	}

	switch {
	case errors.Is(err, errdefs.ErrDecode):
		return MessageDecode

	case errors.Is(err, errdefs.ErrExtraction), errors.Is(err, errdefs.ErrGeneration):
		return MessageUnavailable

	case errors.Is(err, errdefs.ErrNoContent):
		return MessageNoContent

	case errors.Is(err, errdefs.ErrEncoding):
		return MessageEncoding

	default:
		return MessageInternal
	}
}

// classify wraps err with kind unless it already carries a known kind.
func classify(err error, kind error) error {
	for _, known := range []error{
		errdefs.ErrValidation,
		errdefs.ErrDecode,
		errdefs.ErrExtraction,
		errdefs.ErrGeneration,
		errdefs.ErrNoContent,
		errdefs.ErrEncoding,
		errdefs.ErrConfig,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", kind, err)
}
