package docx

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/adrianliechti/toolify/pkg/document"
	"github.com/adrianliechti/toolify/pkg/errdefs"
)

// Lines splits text into paragraph lines. CRLF line endings are tolerated.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Encode renders text as a WordprocessingML package with one paragraph per line.
func Encode(text string) ([]byte, error) {
	var buf bytes.Buffer

	if err := Write(&buf, text); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func EncodeDocument(text string) (document.Document, error) {
	data, err := Encode(text)

	if err != nil {
		return document.Document{}, err
	}

	return document.New(document.ContentTypeDOCX, data), nil
}

func Write(w io.Writer, text string) error {
	doc := docx.New().WithDefaultTheme()

	for _, line := range Lines(text) {
		p := doc.AddParagraph()

		if line == "" {
			continue
		}

		// runs are built directly so tabs and surrounding spaces stay inside one text node
		p.Children = append(p.Children, &docx.Run{
			RunProperties: &docx.RunProperties{},

			Children: []interface{}{
				&docx.Text{
					XMLSpace: "preserve",
					Text:     line,
				},
			},
		})
	}

	doc.WithA4Page()

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", errdefs.ErrEncoding, err)
	}

	return nil
}
