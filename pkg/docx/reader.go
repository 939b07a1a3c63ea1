package docx

import (
	"fmt"
	"os"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"

	"github.com/tsawler/tabula/docx"
)

// Paragraphs decodes a DOCX package back into its flat paragraph sequence.
func Paragraphs(data []byte) ([]string, error) {
	f, err := os.CreateTemp("", "toolify-*.docx")

	if err != nil {
		return nil, err
	}

	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.Close(); err != nil {
		return nil, err
	}

	r, err := docx.Open(f.Name())

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrDecode, err)
	}

	defer r.Close()

	text, err := r.Text()

	if err != nil {
		return nil, fmt.Errorf("%w: %w", errdefs.ErrDecode, err)
	}

	return strings.Split(text, "\n"), nil
}
