// Package hcloud реализация провайдера серверов поверх Hetzner Cloud API.
package hcloud

import (
	"net/http"
	"time"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/sirupsen/logrus"
)

const (
	applicationName = "groph-vps"

	defaultRetryAttempts = 3
	defaultRetryDelay    = 500 * time.Millisecond
)

// Client адаптер Hetzner Cloud. Ошибки всех методов имеют тип *domain.ProviderError.
type Client struct {
	client        *hcloud.Client
	logger        *logrus.Entry
	retryAttempts int
	retryDelay    time.Duration
}

type Option func(*options)

type options struct {
	endpoint      string
	httpClient    *http.Client
	hcloudClient  *hcloud.Client
	logger        *logrus.Logger
	retryAttempts int
	retryDelay    time.Duration
}

// WithEndpoint адрес API, используется в тестах и для прокси.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithHCloudClient готовый клиент hcloud, токен и endpoint тогда не используются.
func WithHCloudClient(hc *hcloud.Client) Option {
	return func(o *options) {
		o.hcloudClient = hc
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRetry количество попыток и начальная задержка для повторяемых запросов (чтение, удаление).
func WithRetry(attempts int, delay time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryDelay = delay
	}
}

func New(token, version string, opts ...Option) *Client {
	o := options{
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.hcloudClient
	if hc == nil {
		clientOpts := []hcloud.ClientOption{
			hcloud.WithToken(token),
			hcloud.WithApplication(applicationName, version),
		}
		if o.endpoint != "" {
			clientOpts = append(clientOpts, hcloud.WithEndpoint(o.endpoint))
		}
		if o.httpClient != nil {
			clientOpts = append(clientOpts, hcloud.WithHTTPClient(o.httpClient))
		}
		hc = hcloud.NewClient(clientOpts...)
	}

	l := o.logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Client{
		client:        hc,
		logger:        l.WithField("component", "hcloud"),
		retryAttempts: o.retryAttempts,
		retryDelay:    o.retryDelay,
	}
}
