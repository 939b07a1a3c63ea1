package api

type BackgroundRequest struct {
	// Image is a data URL.
	Image string `json:"image"`
}

type OCRRequest struct {
	Image string `json:"image"`

	Language string `json:"language,omitempty"`
}

type ParaphraseRequest struct {
	Text string `json:"text"`

	Style string `json:"style,omitempty"`
}

type ConvertRequest struct {
	// Document is a PDF data URL.
	Document string `json:"document"`
}

type MergeRequest struct {
	Documents []string `json:"documents"`
}

type Envelope struct {
	Success bool `json:"success"`

	Data  string `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
