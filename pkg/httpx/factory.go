/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package httpx

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// DefaultClientFactory implements ClientFactory
type DefaultClientFactory struct {
	logger         logr.Logger
	metrics        *Metrics
	tracerProvider trace.TracerProvider
	requestID      bool
}

// FactoryOption configures a DefaultClientFactory
type FactoryOption func(*DefaultClientFactory)

// WithFactoryLogger logs every request made by created clients
func WithFactoryLogger(logger logr.Logger) FactoryOption {
	return func(f *DefaultClientFactory) {
		f.logger = logger
	}
}

// WithFactoryMetrics instruments created clients
func WithFactoryMetrics(m *Metrics) FactoryOption {
	return func(f *DefaultClientFactory) {
		f.metrics = m
	}
}

// WithFactoryTracing traces requests made by created clients
func WithFactoryTracing(tp trace.TracerProvider) FactoryOption {
	return func(f *DefaultClientFactory) {
		f.tracerProvider = tp
	}
}

// WithFactoryRequestID stamps requests with DefaultRequestIDHeader
func WithFactoryRequestID() FactoryOption {
	return func(f *DefaultClientFactory) {
		f.requestID = true
	}
}

// NewClientFactory creates a new client factory
func NewClientFactory(opts ...FactoryOption) ClientFactory {
	f := &DefaultClientFactory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateClient creates an HTTP client based on kind
func (f *DefaultClientFactory) CreateClient(kind string, config *ClientConfig, auth *AuthConfig) (Client, error) {
	if config == nil {
		return nil, fmt.Errorf("client config is required")
	}

	handlers, err := f.handlers(config, auth)
	if err != nil {
		return nil, err
	}

	transport := cleanhttp.DefaultPooledTransport()
	if config.InsecureSkipVerify {
		// #nosec G402 -- explicitly requested through configuration
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	switch strings.ToLower(kind) {
	case KindDefault:
		return NewClient(&http.Client{
			Transport: Chain(transport, handlers...),
			Timeout:   config.Timeout,
		}), nil
	case KindRetrying:
		rc := retryablehttp.NewClient()
		rc.HTTPClient = &http.Client{Transport: Chain(transport, handlers...)}
		rc.Logger = retryLogger{logger: f.logger}
		// zero keeps the library defaults
		if config.MaxRetries > 0 {
			rc.RetryMax = config.MaxRetries
		}
		if config.RetryWaitMin > 0 {
			rc.RetryWaitMin = config.RetryWaitMin
		}
		if config.RetryWaitMax > 0 {
			rc.RetryWaitMax = config.RetryWaitMax
		}
		c := rc.StandardClient()
		c.Timeout = config.Timeout
		return NewClient(c), nil
	default:
		return nil, fmt.Errorf("unsupported client kind: %s", kind)
	}
}

// handlers returns the decorators for one client, outermost first.
func (f *DefaultClientFactory) handlers(config *ClientConfig, auth *AuthConfig) ([]Handler, error) {
	var handlers []Handler
	if f.logger.GetSink() != nil {
		handlers = append(handlers, WithLogging(f.logger))
	}
	if f.requestID {
		handlers = append(handlers, WithRequestID(DefaultRequestIDHeader))
	}
	if f.tracerProvider != nil {
		handlers = append(handlers, WithTracing(f.tracerProvider))
	}
	if f.metrics != nil {
		handlers = append(handlers, WithMetrics(f.metrics))
	}
	if auth != nil {
		h, err := WithAuth(auth)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, h)
	}
	if config.UserAgent != "" {
		handlers = append(handlers, WithUserAgent(config.UserAgent))
	}
	if config.RateLimit > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		handlers = append(handlers, WithRateLimit(rate.NewLimiter(rate.Limit(config.RateLimit), burst)))
	}
	return handlers, nil
}

// retryLogger adapts a logr.Logger to retryablehttp.LeveledLogger. Info and
// Debug both land on V(1), the most verbose level the logger enables.
type retryLogger struct {
	logger logr.Logger
}

var _ retryablehttp.LeveledLogger = retryLogger{}

func (l retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(nil, msg, keysAndValues...)
}

func (l retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.V(1).Info(msg, keysAndValues...)
}

func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.V(1).Info(msg, keysAndValues...)
}
