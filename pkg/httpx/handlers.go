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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/codihuston/stdseam/internal/logging"
)

// DefaultRequestIDHeader is the header WithRequestID sets
const DefaultRequestIDHeader = "X-Request-Id"

// WithLogging logs every round trip. Successful exchanges are logged at
// V(1), failures as errors. A zero logger falls back to the logger stored
// in the request's context.
func WithLogging(logger logr.Logger) Handler {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			log := logger
			if log.GetSink() == nil {
				log = logging.FromContext(req.Context())
			}
			log = log.WithValues("method", req.Method, "url", req.URL.Redacted())

			start := time.Now()
			log.V(1).Info("Sending HTTP request")
			resp, err := next.RoundTrip(req)
			if err != nil {
				log.Error(err, "HTTP request failed", "duration", time.Since(start))
				return resp, err
			}
			log.V(1).Info("Received HTTP response", "status", resp.StatusCode, "duration", time.Since(start))
			return resp, nil
		})
	}
}

// WithRequestID stamps each request with a random UUID in header, unless
// the request already carries one. An empty header uses
// DefaultRequestIDHeader.
func WithRequestID(header string) Handler {
	if header == "" {
		header = DefaultRequestIDHeader
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(header) != "" {
				return next.RoundTrip(req)
			}
			// round trippers must not modify the caller's request
			clone := req.Clone(req.Context())
			if clone.Header == nil {
				clone.Header = make(http.Header)
			}
			clone.Header.Set(header, uuid.NewString())
			return next.RoundTrip(clone)
		})
	}
}

// WithRateLimit blocks each request until limiter admits it. A request
// whose context ends while waiting fails with the limiter's error.
func WithRateLimit(limiter *rate.Limiter) Handler {
	return func(next http.RoundTripper) http.RoundTripper {
		if limiter == nil {
			return next
		}
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, fmt.Errorf("rate limit wait: %w", err)
			}
			return next.RoundTrip(req)
		})
	}
}

// WithTracing records a client span per request. A nil provider uses the
// global one.
func WithTracing(tp trace.TracerProvider) Handler {
	return func(next http.RoundTripper) http.RoundTripper {
		var opts []otelhttp.Option
		if tp != nil {
			opts = append(opts, otelhttp.WithTracerProvider(tp))
		}
		return otelhttp.NewTransport(next, opts...)
	}
}

// Metrics holds the client-side collectors WithMetrics updates.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "requests_total",
			Help:      "HTTP requests sent, partitioned by status code and method.",
		}, []string{"code", "method"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Time until response headers were received.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code", "method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "in_flight_requests",
			Help:      "HTTP requests currently waiting for a response.",
		}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration, m.inFlight} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register http client metrics: %w", err)
		}
	}
	return m, nil
}

// WithMetrics instruments requests with m.
func WithMetrics(m *Metrics) Handler {
	return func(next http.RoundTripper) http.RoundTripper {
		if m == nil {
			return next
		}
		return promhttp.InstrumentRoundTripperInFlight(m.inFlight,
			promhttp.InstrumentRoundTripperCounter(m.requests,
				promhttp.InstrumentRoundTripperDuration(m.duration, next)))
	}
}

// WithUserAgent sets the User-Agent header on requests that have none.
func WithUserAgent(userAgent string) Handler {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if userAgent == "" || req.Header.Get("User-Agent") != "" {
				return next.RoundTrip(req)
			}
			clone := req.Clone(req.Context())
			if clone.Header == nil {
				clone.Header = make(http.Header)
			}
			clone.Header.Set("User-Agent", userAgent)
			return next.RoundTrip(clone)
		})
	}
}

// WithAuth adds credentials from auth to requests that carry no
// Authorization header.
func WithAuth(auth *AuthConfig) (Handler, error) {
	if auth == nil {
		return nil, fmt.Errorf("auth config is required")
	}
	var apply func(*http.Request)
	switch strings.ToLower(auth.Type) {
	case AuthTypeBasic:
		apply = func(r *http.Request) { r.SetBasicAuth(auth.Username, auth.Password) }
	case AuthTypeBearer:
		if auth.Token == "" {
			return nil, fmt.Errorf("bearer authentication requires a token")
		}
		apply = func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+auth.Token) }
	default:
		return nil, fmt.Errorf("unsupported authentication type: %s", auth.Type)
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("Authorization") != "" {
				return next.RoundTrip(req)
			}
			clone := req.Clone(req.Context())
			if clone.Header == nil {
				clone.Header = make(http.Header)
			}
			apply(clone)
			return next.RoundTrip(clone)
		})
	}, nil
}
