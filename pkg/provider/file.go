package provider

import (
	"encoding/base64"
	"strings"
)

type File struct {
	Name string

	Content     []byte
	ContentType string
}

func (f File) IsPDF() bool {
	return f.ContentType == "application/pdf"
}

func (f File) IsImage() bool {
	return strings.HasPrefix(f.ContentType, "image/")
}

// Base64 returns the standard base64 encoding of the file content.
func (f File) Base64() string {
	return base64.StdEncoding.EncodeToString(f.Content)
}

// DataURL renders the file as data:<type>;base64,<payload>.
func (f File) DataURL() string {
	return "data:" + f.ContentType + ";base64," + f.Base64()
}
