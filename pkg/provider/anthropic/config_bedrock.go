package anthropic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// IsBedrock reports whether url points at an Amazon Bedrock runtime endpoint.
func IsBedrock(url string) bool {
	return strings.Contains(url, "amazonaws.com")
}

func (cfg *Config) bedrockOptions() []option.RequestOption {
	token := cfg.token

	if token == "" {
		token = os.Getenv("AWS_BEARER_TOKEN_BEDROCK")
	}

	var options []option.RequestOption

	if token != "" {
		options = append(options,
			option.WithBaseURL(cfg.url),
			option.WithMiddleware(bedrockMiddleware(token)),
		)
	} else {
		options = append(options, bedrock.WithLoadDefaultConfig(context.Background()))
	}

	if cfg.client != nil {
		options = append(options, option.WithHTTPClient(cfg.client))
	}

	return options
}

// bedrockMiddleware rewrites Messages API calls into Bedrock invoke calls
// authenticated with a Bedrock API key.
func bedrockMiddleware(token string) option.Middleware {
	return func(r *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		if r.Body != nil {
			body, err := io.ReadAll(r.Body)

			if err != nil {
				return nil, err
			}

			r.Body.Close()

			if !gjson.GetBytes(body, "anthropic_version").Exists() {
				body, _ = sjson.SetBytes(body, "anthropic_version", bedrock.DefaultVersion)
			}

			if betas := r.Header.Values("anthropic-beta"); len(betas) > 0 {
				r.Header.Del("anthropic-beta")

				if body, err = sjson.SetBytes(body, "anthropic_beta", betas); err != nil {
					return nil, err
				}
			}

			if r.Method == http.MethodPost && bedrock.DefaultEndpoints[r.URL.Path] {
				model := gjson.GetBytes(body, "model").String()

				body, _ = sjson.DeleteBytes(body, "model")
				body, _ = sjson.DeleteBytes(body, "stream")

				r.URL.Path = fmt.Sprintf("/model/%s/invoke", model)
				r.URL.RawPath = fmt.Sprintf("/model/%s/invoke", url.QueryEscape(model))
			}

			reader := bytes.NewReader(body)

			r.Body = io.NopCloser(reader)

			r.GetBody = func() (io.ReadCloser, error) {
				_, err := reader.Seek(0, io.SeekStart)
				return io.NopCloser(reader), err
			}

			r.ContentLength = int64(len(body))
		}

		r.Header.Set("Authorization", "Bearer "+token)

		return next(r)
	}
}
