package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/adrianliechti/toolify/pkg/action"
	"github.com/adrianliechti/toolify/pkg/client"
	"github.com/adrianliechti/toolify/pkg/document"
)

// runner executes actions either in process or against a remote server.
type runner interface {
	RemoveBackground(ctx context.Context, image string) (string, error)
	ExtractText(ctx context.Context, image, language string) (string, error)
	Paraphrase(ctx context.Context, text, style string) (string, error)
	Convert(ctx context.Context, document string) (string, error)
	Merge(ctx context.Context, documents []string) (string, error)

	Close() error
}

func newRunner(opts *options) (runner, error) {
	if opts.url != "" {
		return &remoteRunner{
			client: client.New(opts.url),
		}, nil
	}

	cfg, logger, err := loadConfig(opts, textHandler)

	if err != nil {
		return nil, err
	}

	service, err := cfg.Service(logger)

	if err != nil {
		cfg.Close()
		return nil, err
	}

	return &localRunner{
		service: service,
		close:   cfg.Close,
	}, nil
}

type localRunner struct {
	service *action.Service
	close   func() error
}

func unwrap(result action.Result[string]) (string, error) {
	if data, ok := result.Get(); ok {
		return data, nil
	}

	return "", errors.New(result.Message())
}

func (r *localRunner) RemoveBackground(ctx context.Context, image string) (string, error) {
	return unwrap(r.service.RemoveBackground(ctx, image))
}

func (r *localRunner) ExtractText(ctx context.Context, image, language string) (string, error) {
	return unwrap(r.service.ExtractTextFromImage(ctx, action.OCRRequest{Image: image, Language: language}))
}

func (r *localRunner) Paraphrase(ctx context.Context, text, style string) (string, error) {
	return unwrap(r.service.Paraphrase(ctx, action.ParaphraseRequest{Text: text, Style: action.Style(style)}))
}

func (r *localRunner) Convert(ctx context.Context, document string) (string, error) {
	return unwrap(r.service.ConvertDocumentToWord(ctx, document))
}

func (r *localRunner) Merge(ctx context.Context, documents []string) (string, error) {
	return unwrap(r.service.MergeDocumentsToWord(ctx, documents))
}

func (r *localRunner) Close() error {
	return r.close()
}

type remoteRunner struct {
	client *client.Client
}

func (r *remoteRunner) RemoveBackground(ctx context.Context, image string) (string, error) {
	return r.client.Backgrounds.Remove(ctx, client.BackgroundRequest{Image: image})
}

func (r *remoteRunner) ExtractText(ctx context.Context, image, language string) (string, error) {
	return r.client.Recognitions.New(ctx, client.RecognitionRequest{Image: image, Language: language})
}

func (r *remoteRunner) Paraphrase(ctx context.Context, text, style string) (string, error) {
	return r.client.Paraphrases.New(ctx, client.ParaphraseRequest{Text: text, Style: style})
}

func (r *remoteRunner) Convert(ctx context.Context, document string) (string, error) {
	return r.client.Documents.Convert(ctx, document)
}

func (r *remoteRunner) Merge(ctx context.Context, documents []string) (string, error) {
	return r.client.Documents.Merge(ctx, documents)
}

func (r *remoteRunner) Close() error {
	return nil
}

// readDataURL loads a file as a data URL. Arguments that already are data
// URLs pass through unchanged.
func readDataURL(path string) (string, error) {
	if strings.HasPrefix(path, "data:") {
		return path, nil
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	return document.New(http.DetectContentType(data), data).String(), nil
}

func writeDataURL(path string, value string) error {
	doc, err := document.Parse(value)

	if err != nil {
		return err
	}

	return os.WriteFile(path, doc.Data, 0o644)
}
