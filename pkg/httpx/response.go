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
	"net/http"
	"net/url"

	"github.com/codihuston/stdseam/pkg/abstraction"
	"github.com/codihuston/stdseam/pkg/iox"
)

// Response is the response to an HTTP request.
type Response interface {
	abstraction.Abstraction[*http.Response]

	StatusCode() int
	Status() string
	Header() Header
	// Body returns the response body as a read-only stream. The caller
	// closes it, or closes the response.
	Body() iox.Stream
	ContentLength() int64
	Request() Request
	Cookies() []*http.Cookie
	Location() (*url.URL, error)
	Close() error

	IsSuccessStatusCode() bool
	// EnsureSuccessStatusCode returns a *StatusError unless the status code
	// is in the 2xx range.
	EnsureSuccessStatusCode() error
}

// ResponseAdapter adapts an *http.Response to Response.
type ResponseAdapter struct {
	abstraction.Adapter[*http.Response]
}

var _ Response = (*ResponseAdapter)(nil)

// NewResponse wraps r
func NewResponse(r *http.Response) *ResponseAdapter {
	return &ResponseAdapter{Adapter: abstraction.NewAdapter(r)}
}

// ToResponse returns r as a Response, or nil if r is nil
func ToResponse(r *http.Response) Response {
	return abstraction.ToInterface(r, func(r *http.Response) Response {
		return NewResponse(r)
	})
}

func (r *ResponseAdapter) StatusCode() int {
	return r.Unwrap().StatusCode
}

func (r *ResponseAdapter) Status() string {
	return r.Unwrap().Status
}

func (r *ResponseAdapter) Header() Header {
	resp := r.Unwrap()
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}
	return NewHeader(resp.Header)
}

func (r *ResponseAdapter) Body() iox.Stream {
	body := r.Unwrap().Body
	if body == nil {
		return nil
	}
	name := ""
	if req := r.Unwrap().Request; req != nil && req.URL != nil {
		name = req.URL.String()
	}
	if s, ok := body.(iox.Stream); ok {
		return s
	}
	return iox.NewReadOnlyStream(body, name)
}

func (r *ResponseAdapter) ContentLength() int64 {
	return r.Unwrap().ContentLength
}

func (r *ResponseAdapter) Request() Request {
	return ToRequest(r.Unwrap().Request)
}

func (r *ResponseAdapter) Cookies() []*http.Cookie {
	return r.Unwrap().Cookies()
}

func (r *ResponseAdapter) Location() (*url.URL, error) {
	return r.Unwrap().Location()
}

// Close closes the response body
func (r *ResponseAdapter) Close() error {
	if body := r.Unwrap().Body; body != nil {
		return body.Close()
	}
	return nil
}

func (r *ResponseAdapter) IsSuccessStatusCode() bool {
	return IsSuccessStatusCode(r.Unwrap().StatusCode)
}

func (r *ResponseAdapter) EnsureSuccessStatusCode() error {
	resp := r.Unwrap()
	if IsSuccessStatusCode(resp.StatusCode) {
		return nil
	}
	err := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	if resp.Status == "" {
		err.Status = http.StatusText(resp.StatusCode)
	}
	if req := resp.Request; req != nil {
		err.Method = req.Method
		if req.URL != nil {
			err.URL = req.URL.Redacted()
		}
	}
	return err
}
