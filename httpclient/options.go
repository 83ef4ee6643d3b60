package httpclient

import "time"

type config struct {
	baseURL string
	timeout time.Duration
	headers map[string]string
}

func defaultConfig() config {
	return config{
		timeout: 30 * time.Second,
		headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

type Option func(*config)

func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func WithHeader(key, value string) Option {
	return func(c *config) {
		c.headers[key] = value
	}
}

type requestConfig struct {
	headers     map[string]string
	queryParams map[string]string
}

func defaultRequestConfig() requestConfig {
	return requestConfig{
		headers:     make(map[string]string),
		queryParams: make(map[string]string),
	}
}

type RequestOption func(*requestConfig)

func WithQueryParam(key, value string) RequestOption {
	return func(c *requestConfig) {
		c.queryParams[key] = value
	}
}

func WithRequestHeader(key, value string) RequestOption {
	return func(c *requestConfig) {
		c.headers[key] = value
	}
}
