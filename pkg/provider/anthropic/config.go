package anthropic

import (
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go/option"
)

type Config struct {
	url string

	token string
	model string

	maxTokens int

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

// WithMaxTokens sets the output budget used when a request does not carry one.
func WithMaxTokens(tokens int) Option {
	return func(c *Config) {
		c.maxTokens = tokens
	}
}

func (cfg *Config) Options() []option.RequestOption {
	if IsBedrock(cfg.url) {
		return cfg.bedrockOptions()
	}

	url := cfg.url

	if url == "" {
		url = "https://api.anthropic.com/"
	}

	url = strings.TrimRight(url, "/") + "/"

	options := []option.RequestOption{
		option.WithBaseURL(url),
	}

	if cfg.client != nil {
		options = append(options, option.WithHTTPClient(cfg.client))
	}

	if cfg.token != "" {
		options = append(options, option.WithAPIKey(cfg.token))
	}

	return options
}
