package gemini

import (
	"net/http"

	"google.golang.org/genai"
)

type Config struct {
	url string

	token string
	model string

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

func (cfg *Config) clientConfig() *genai.ClientConfig {
	config := &genai.ClientConfig{
		APIKey:  cfg.token,
		Backend: genai.BackendGeminiAPI,

		HTTPClient: cfg.client,
	}

	if cfg.url != "" {
		config.HTTPOptions = genai.HTTPOptions{
			BaseURL: cfg.url,
		}
	}

	return config
}
