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
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/time/rate"

	"github.com/codihuston/stdseam/internal/logging"
)

// recorder is a terminal round tripper that remembers the last request.
type recorder struct {
	last   *http.Request
	calls  int
	status int
	err    error
}

func (r *recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	r.last = req
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader("body")),
		Request:    req,
	}, nil
}

func newGet(ctx context.Context) *http.Request {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://example.test/path", nil)
	Expect(err).NotTo(HaveOccurred())
	return req
}

var _ = Describe("Handlers", func() {
	var (
		base *recorder
		ctx  context.Context
	)

	BeforeEach(func() {
		base = &recorder{}
		ctx = context.Background()
	})

	Describe("Chain", func() {
		It("runs the first handler outermost", func() {
			var order []string
			tag := func(name string) Handler {
				return func(next http.RoundTripper) http.RoundTripper {
					return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
						order = append(order, name+">")
						resp, err := next.RoundTrip(req)
						order = append(order, "<"+name)
						return resp, err
					})
				}
			}

			rt := Chain(base, tag("a"), nil, tag("b"))
			resp, err := rt.RoundTrip(newGet(ctx))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Body.Close()).To(Succeed())
			Expect(order).To(Equal([]string{"a>", "b>", "<b", "<a"}))
		})

		It("uses the default transport when base is nil", func() {
			Expect(Chain(nil)).To(BeIdenticalTo(http.DefaultTransport))
		})
	})

	Describe("WithRequestID", func() {
		It("stamps a request id without touching the caller's request", func() {
			req := newGet(ctx)
			_, err := Chain(base, WithRequestID("")).RoundTrip(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(base.last.Header.Get(DefaultRequestIDHeader)).To(HaveLen(36))
			Expect(req.Header.Get(DefaultRequestIDHeader)).To(BeEmpty())
		})

		It("keeps an existing id", func() {
			req := newGet(ctx)
			req.Header.Set("X-Trace", "fixed")
			_, err := Chain(base, WithRequestID("X-Trace")).RoundTrip(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(base.last).To(BeIdenticalTo(req))
		})
	})

	Describe("WithUserAgent", func() {
		It("sets a missing user agent", func() {
			_, err := Chain(base, WithUserAgent("seam/1")).RoundTrip(newGet(ctx))
			Expect(err).NotTo(HaveOccurred())
			Expect(base.last.Header.Get("User-Agent")).To(Equal("seam/1"))
		})

		It("keeps the caller's user agent", func() {
			req := newGet(ctx)
			req.Header.Set("User-Agent", "mine")
			_, err := Chain(base, WithUserAgent("seam/1")).RoundTrip(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(base.last.Header.Get("User-Agent")).To(Equal("mine"))
		})
	})

	Describe("WithAuth", func() {
		It("adds a bearer token", func() {
			h, err := WithAuth(&AuthConfig{Type: "Bearer", Token: "t0k"})
			Expect(err).NotTo(HaveOccurred())
			_, err = Chain(base, h).RoundTrip(newGet(ctx))
			Expect(err).NotTo(HaveOccurred())
			Expect(base.last.Header.Get("Authorization")).To(Equal("Bearer t0k"))
		})

		It("adds basic credentials", func() {
			h, err := WithAuth(&AuthConfig{Type: AuthTypeBasic, Username: "u", Password: "p"})
			Expect(err).NotTo(HaveOccurred())
			_, err = Chain(base, h).RoundTrip(newGet(ctx))
			Expect(err).NotTo(HaveOccurred())
			user, pass, ok := base.last.BasicAuth()
			Expect(ok).To(BeTrue())
			Expect(user).To(Equal("u"))
			Expect(pass).To(Equal("p"))
		})

		It("rejects missing or unknown configuration", func() {
			_, err := WithAuth(nil)
			Expect(err).To(HaveOccurred())
			_, err = WithAuth(&AuthConfig{Type: "digest"})
			Expect(err).To(MatchError(ContainSubstring("unsupported authentication type")))
		})
	})

	Describe("WithRateLimit", func() {
		It("fails when the context ends while waiting", func() {
			limiter := rate.NewLimiter(rate.Limit(0.001), 1)
			rt := Chain(base, WithRateLimit(limiter))

			_, err := rt.RoundTrip(newGet(ctx))
			Expect(err).NotTo(HaveOccurred())

			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err = rt.RoundTrip(newGet(cancelled))
			Expect(err).To(MatchError(ContainSubstring("rate limit wait")))
			Expect(base.calls).To(Equal(1))
		})

		It("passes through without a limiter", func() {
			Expect(WithRateLimit(nil)(base)).To(BeIdenticalTo(base))
		})
	})

	Describe("WithLogging", func() {
		var out *bytes.Buffer

		BeforeEach(func() {
			out = &bytes.Buffer{}
		})

		It("logs successful exchanges at debug level", func() {
			logger := logging.New(logging.Options{Level: "debug", Output: out})
			resp, err := Chain(base, WithLogging(logger)).RoundTrip(newGet(ctx))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Body.Close()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Received HTTP response"))
			Expect(out.String()).To(ContainSubstring("http://example.test/path"))
		})

		It("logs failures as errors using the context logger", func() {
			base.err = errors.New("connection refused")
			logger := logging.New(logging.Options{Level: "info", Output: out})
			_, err := Chain(base, WithLogging(logr.Logger{})).RoundTrip(newGet(logging.IntoContext(ctx, logger)))
			Expect(err).To(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("HTTP request failed"))
			Expect(out.String()).To(ContainSubstring("connection refused"))
			Expect(out.String()).NotTo(ContainSubstring("Sending HTTP request"))
		})
	})

	Describe("WithTracing", func() {
		It("records a client span per request", func() {
			sr := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
			DeferCleanup(func() {
				_ = tp.Shutdown(context.Background())
			})

			resp, err := Chain(base, WithTracing(tp)).RoundTrip(newGet(ctx))
			Expect(err).NotTo(HaveOccurred())
			_, _ = io.Copy(io.Discard, resp.Body)
			Expect(resp.Body.Close()).To(Succeed())

			Expect(sr.Ended()).To(HaveLen(1))
			Expect(sr.Ended()[0].SpanKind().String()).To(Equal("client"))
		})
	})
})
