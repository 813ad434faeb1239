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
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/codihuston/stdseam/pkg/abstraction"
	"github.com/codihuston/stdseam/pkg/iox"
)

// Request is an outgoing HTTP request.
type Request interface {
	abstraction.Abstraction[*http.Request]

	Method() string
	URL() *url.URL
	Host() string
	Header() Header
	// Body returns the request body as a read-only stream, or nil when the
	// request has none.
	Body() iox.Stream
	ContentLength() int64
	Context() context.Context
	WithContext(ctx context.Context) Request
	Clone(ctx context.Context) Request
	SetBasicAuth(username, password string)
	BasicAuth() (username, password string, ok bool)
	Cookies() []*http.Cookie
	AddCookie(c *http.Cookie)
}

// RequestAdapter adapts an *http.Request to Request.
type RequestAdapter struct {
	abstraction.Adapter[*http.Request]
}

var _ Request = (*RequestAdapter)(nil)

// WrapRequest wraps r
func WrapRequest(r *http.Request) *RequestAdapter {
	return &RequestAdapter{Adapter: abstraction.NewAdapter(r)}
}

// ToRequest returns r as a Request, or nil if r is nil
func ToRequest(r *http.Request) Request {
	return abstraction.ToInterface(r, func(r *http.Request) Request {
		return WrapRequest(r)
	})
}

// NewRequest forwards to http.NewRequestWithContext and wraps the result
func NewRequest(ctx context.Context, method, rawURL string, body io.Reader) (Request, error) {
	r, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	return WrapRequest(r), nil
}

func (r *RequestAdapter) Method() string {
	return r.Unwrap().Method
}

func (r *RequestAdapter) URL() *url.URL {
	return r.Unwrap().URL
}

func (r *RequestAdapter) Host() string {
	return r.Unwrap().Host
}

func (r *RequestAdapter) Header() Header {
	req := r.Unwrap()
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	return NewHeader(req.Header)
}

func (r *RequestAdapter) Body() iox.Stream {
	body := r.Unwrap().Body
	if body == nil || body == http.NoBody {
		return nil
	}
	return iox.ToReadOnlyStream(body)
}

func (r *RequestAdapter) ContentLength() int64 {
	return r.Unwrap().ContentLength
}

func (r *RequestAdapter) Context() context.Context {
	return r.Unwrap().Context()
}

func (r *RequestAdapter) WithContext(ctx context.Context) Request {
	return WrapRequest(r.Unwrap().WithContext(ctx))
}

func (r *RequestAdapter) Clone(ctx context.Context) Request {
	return WrapRequest(r.Unwrap().Clone(ctx))
}

func (r *RequestAdapter) SetBasicAuth(username, password string) {
	r.Unwrap().SetBasicAuth(username, password)
}

func (r *RequestAdapter) BasicAuth() (string, string, bool) {
	return r.Unwrap().BasicAuth()
}

func (r *RequestAdapter) Cookies() []*http.Cookie {
	return r.Unwrap().Cookies()
}

func (r *RequestAdapter) AddCookie(c *http.Cookie) {
	r.Unwrap().AddCookie(c)
}
