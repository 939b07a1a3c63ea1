package document

import (
	"fmt"
	"strings"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/provider"

	"github.com/vincent-petithory/dataurl"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Document is a binary payload with exactly one media type, exchanged as a
// data:<type>;base64,<payload> string.
type Document struct {
	ContentType string
	Data        []byte
}

func New(contentType string, data []byte) Document {
	return Document{
		ContentType: contentType,
		Data:        data,
	}
}

func Parse(s string) (Document, error) {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "data:") {
		return Document{}, fmt.Errorf("%w: missing data url scheme", errdefs.ErrDecode)
	}

	u, err := dataurl.DecodeString(s)

	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", errdefs.ErrDecode, err)
	}

	if u.Encoding != dataurl.EncodingBase64 {
		return Document{}, fmt.Errorf("%w: data url is not base64 encoded", errdefs.ErrDecode)
	}

	if len(u.Data) == 0 {
		return Document{}, fmt.Errorf("%w: empty payload", errdefs.ErrDecode)
	}

	return Document{
		ContentType: u.MediaType.ContentType(),
		Data:        u.Data,
	}, nil
}

func (d Document) String() string {
	return dataurl.New(d.Data, d.ContentType).String()
}

func (d Document) IsPDF() bool {
	return d.ContentType == ContentTypePDF
}

func (d Document) IsImage() bool {
	return strings.HasPrefix(d.ContentType, "image/")
}

func (d Document) File(name string) provider.File {
	return provider.File{
		Name: name,

		Content:     d.Data,
		ContentType: d.ContentType,
	}
}
