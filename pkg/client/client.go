package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type Client struct {
	Backgrounds  BackgroundService
	Recognitions RecognitionService
	Paraphrases  ParaphraseService
	Documents    DocumentService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Backgrounds:  NewBackgroundService(opts...),
		Recognitions: NewRecognitionService(opts...),
		Paraphrases:  NewParaphraseService(opts...),
		Documents:    NewDocumentService(opts...),
	}
}

type RequestConfig struct {
	URL string

	RequestID string

	Client *http.Client
}

type RequestOption func(*RequestConfig)

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = strings.TrimRight(url, "/")
	}
}

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func WithRequestID(id string) RequestOption {
	return func(c *RequestConfig) {
		c.RequestID = id
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Error is a failed operation as reported by the server.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool `json:"success"`

	Data  string `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func (c *RequestConfig) post(ctx context.Context, path string, body any) (string, error) {
	var data bytes.Buffer

	if err := json.NewEncoder(&data).Encode(body); err != nil {
		return "", err
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+path, &data)
	req.Header.Set("Content-Type", "application/json")

	if c.RequestID != "" {
		req.Header.Set("X-Request-Id", c.RequestID)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	var result envelope

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &Error{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	if !result.Success {
		message := result.Error

		if message == "" {
			message = resp.Status
		}

		return "", &Error{StatusCode: resp.StatusCode, Message: message}
	}

	return result.Data, nil
}
